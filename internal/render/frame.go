package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zyedidia/generic/mapset"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/internal/systems"
)

// Options - настройки кадра.
type Options struct {
	// Color включает ANSI-цвета через lipgloss. Без него - чистый текст.
	Color bool
	// Observer - если задан, клетки вне его поля зрения не рисуются.
	Observer types.ActorID
	// Radius - радиус обзора наблюдателя.
	Radius int
}

// Renderer - рисует кадры. Стили кешируются по глифу.
type Renderer struct {
	opts   Options
	styles map[types.Glyph]lipgloss.Style
	fog    lipgloss.Style
}

func New(opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		styles: make(map[types.Glyph]lipgloss.Style),
		fog:    lipgloss.NewStyle().Faint(true),
	}
}

// Frame рисует карту с акторами, по строке на ряд клеток.
//
// Если на клетке несколько акторов, побеждает существо, затем блокирующий
// актор, затем остальные; при равенстве - первый в порядке хранилища.
func (r *Renderer) Frame(s state.GameState) string {
	if s.World == nil {
		return ""
	}
	w, h := s.World.Size()

	cells := make([]types.Glyph, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = TerrainGlyph(s.World.Terrain(x, y))
		}
	}

	priority := make([]int, w*h)
	if s.Actors != nil {
		for _, a := range s.Actors.Snapshot() {
			if a.Position == nil {
				continue
			}
			idx, ok := s.World.Index(a.Position.X, a.Position.Y)
			if !ok {
				continue
			}
			if p := drawPriority(a); p > priority[idx] {
				priority[idx] = p
				cells[idx] = actorGlyph(a)
			}
		}
	}

	visible, fogged := r.visibility(s)

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < w; x++ {
			idx := y*w + x
			if fogged && !visible.Has(idx) {
				sb.WriteString(r.paintFog())
				continue
			}
			sb.WriteString(r.paint(cells[idx]))
		}
	}
	return sb.String()
}

// Status - строка с тиком, зерном и числом акторов.
func (r *Renderer) Status(s state.GameState, seed uint32) string {
	n := 0
	if s.Actors != nil {
		n = s.Actors.Len()
	}
	line := fmt.Sprintf("tick %d  seed %d  actors %d", s.Tick, seed, n)
	if !r.opts.Color {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Render(line)
}

// DiffSummary - короткое описание диффа тика: перемещения, спавны,
// удаления и отказы команд.
func DiffSummary(d domain.Diff) string {
	failed := failedResults(d.CommandResults)
	if d.IsEmpty() && len(failed) == 0 {
		return fmt.Sprintf("tick %d: -", d.Tick)
	}

	var parts []string
	for _, m := range d.ActorMoves {
		parts = append(parts, fmt.Sprintf("%s %s->%s", m.ActorID, m.From, m.To))
	}
	for _, a := range d.ActorsAdded {
		parts = append(parts, fmt.Sprintf("+%s", a.ActorID))
	}
	for _, id := range d.ActorsRemoved {
		parts = append(parts, fmt.Sprintf("-%s", id))
	}
	for _, res := range failed {
		parts = append(parts, fmt.Sprintf("%s %s: %s", res.ActorID, res.Kind, res.Reason))
	}
	return fmt.Sprintf("tick %d: %s", d.Tick, strings.Join(parts, ", "))
}

func failedResults(results []domain.CommandResult) []domain.CommandResult {
	var out []domain.CommandResult
	for _, res := range results {
		if !res.IsOK() {
			out = append(out, res)
		}
	}
	return out
}

func (r *Renderer) visibility(s state.GameState) (mapset.Set[int], bool) {
	if r.opts.Observer.IsNil() || s.Actors == nil {
		return mapset.Set[int]{}, false
	}
	pos, ok := s.Actors.Position(r.opts.Observer)
	if !ok {
		// Наблюдатель вне карты ничего не видит
		return mapset.New[int](), true
	}
	return systems.ComputeVisibleTiles(s.World, pos, r.opts.Radius), true
}

func (r *Renderer) paint(g types.Glyph) string {
	ch := string(rune(g.Char()))
	if !r.opts.Color {
		return ch
	}
	style, ok := r.styles[g]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(g.HexColor()))
		r.styles[g] = style
	}
	return style.Render(ch)
}

func (r *Renderer) paintFog() string {
	if !r.opts.Color {
		return " "
	}
	return r.fog.Render(" ")
}

func drawPriority(a actors.Actor) int {
	switch {
	case a.Kind == domain.KindCreature:
		return 3
	case a.Passability == nil || !a.Passability.AllowsPassThrough:
		return 2
	}
	return 1
}

func actorGlyph(a actors.Actor) types.Glyph {
	if a.Renderable == nil {
		return UnknownGlyph
	}
	return ActorGlyph(a.Renderable.Glyph)
}
