package scenario

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/internal/world"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

// Build собирает начальное состояние тика 0.
// Если задан генератор, карта и акторы создаются им из seed.
func (f *File) Build(seed rng.Seed) (state.GameState, error) {
	src := f
	if f.Generator != nil {
		src = Generate(*f.Generator, seed)
	}

	grid, err := src.World.grid()
	if err != nil {
		return state.GameState{}, err
	}

	tx := actors.New().Edit()
	for _, a := range src.Actors {
		if err := tx.Create(types.ActorID(a.ID), a.components()...); err != nil {
			return state.GameState{}, fmt.Errorf("scenario %s: actor %d: %w", f.Name, a.ID, err)
		}
	}

	st := state.New(grid, tx.Commit())
	if err := st.Validate(); err != nil {
		return state.GameState{}, fmt.Errorf("scenario %s: %w", f.Name, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "scenario",
		"scenario":  f.Name,
		"width":     grid.Width(),
		"height":    grid.Height(),
		"actors":    st.Actors.Len(),
		"generated": f.Generator != nil,
	}).Info("Initial state built.")

	return st, nil
}

// Commands возвращает скрипт сценария как записи журнала, по возрастанию тика.
func (f *File) Commands() ([]domain.ReplayAction, error) {
	var out []domain.ReplayAction
	for _, ts := range f.Script {
		for _, cs := range ts.Commands {
			cmd, err := cs.Command()
			if err != nil {
				return nil, fmt.Errorf("scenario %s: tick %d: %w", f.Name, ts.Tick, err)
			}
			out = append(out, domain.ReplayAction{Tick: ts.Tick, Command: cmd})
		}
	}
	return out, nil
}

// SeedOr - зерно из файла, если оно задано, иначе fallback.
func (f *File) SeedOr(fallback rng.Seed) rng.Seed {
	if f.Seed != nil {
		return rng.Seed(*f.Seed)
	}
	return fallback
}

func (w WorldSpec) grid() (*world.Grid, error) {
	fill := world.TerrainFloor
	if w.Fill != "" {
		t, err := world.ParseTerrain(w.Fill)
		if err != nil {
			return nil, err
		}
		fill = t
	}

	rows := make([][]world.TerrainID, w.Height)
	for y := range rows {
		rows[y] = make([]world.TerrainID, w.Width)
		for x := range rows[y] {
			rows[y][x] = fill
		}
	}

	for _, tile := range w.Tiles {
		t, err := world.ParseTerrain(tile.Terrain)
		if err != nil {
			return nil, err
		}
		if tile.X < 0 || tile.Y < 0 || tile.X >= w.Width || tile.Y >= w.Height {
			continue
		}
		rows[tile.Y][tile.X] = t
	}
	return world.FromRows(rows), nil
}

func (a ActorSpec) components() []actors.Component {
	var comps []actors.Component
	if a.Kind != "" {
		comps = append(comps, actors.WithKind(a.Kind))
	}
	if a.Position != nil {
		comps = append(comps, actors.WithPosition(a.Position.X, a.Position.Y))
	}
	if a.Glyph != 0 {
		comps = append(comps, actors.WithGlyph(types.GlyphID(a.Glyph)))
	}
	if a.Vitals != nil {
		comps = append(comps, actors.WithVitals(domain.NewVitals(a.Vitals.HP, a.Vitals.MP, a.Vitals.Stamina)))
	}
	if a.HP != nil {
		comps = append(comps, actors.WithHitPoints(domain.FullHitPoints(*a.HP)))
	}
	if a.Locked != nil {
		comps = append(comps, actors.WithLock(*a.Locked))
	}
	if a.Stack != nil {
		comps = append(comps, actors.WithStack(*a.Stack))
	}
	if a.Contents != nil {
		entries := make([]domain.ContentsEntry, 0, len(a.Contents))
		for _, c := range a.Contents {
			entries = append(entries, domain.ContentsEntry{
				Kind:   domain.ParseContentsKind(c.Kind),
				ItemID: types.ActorID(c.Item),
			})
		}
		comps = append(comps, actors.WithContents(entries...))
	}
	if a.Tags != nil {
		comps = append(comps, actors.WithTags(a.Tags...))
	}
	if a.Selectable {
		comps = append(comps, actors.Selectable())
	}
	if a.Targetable {
		comps = append(comps, actors.Targetable())
	}
	if a.PassThrough != nil {
		comps = append(comps, actors.WithPassThrough(*a.PassThrough))
	}
	if a.Path != nil {
		comps = append(comps, actors.WithPath(a.Path...))
	}
	return comps
}
