package actors

import (
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

// Actor - снимок одного актора: объединение всех его компонентов.
//
// Отсутствующий компонент = nil. Для срезов (Contents, Tags, Path) nil
// означает "компонента нет", а пустой не-nil срез - "компонент есть, но пуст".
type Actor struct {
	ID          types.ActorID
	Kind        string
	Position    *domain.Position
	Renderable  *domain.Renderable
	Vitals      *domain.Vitals
	HitPoints   *domain.HitPoints
	Lock        *domain.LockState
	Stackable   *domain.Stackable
	Contents    []domain.ContentsEntry
	Tags        []string
	Selectable  bool
	Targetable  bool
	Passability *domain.Passability
	Path        []domain.Position
}

// HasTag проверяет наличие тега в снимке.
func (a Actor) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Component - конструктор компонента для Create.
type Component func(*Actor)

func WithKind(kind string) Component {
	return func(a *Actor) { a.Kind = kind }
}

func WithPosition(x, y int) Component {
	return func(a *Actor) { a.Position = &domain.Position{X: x, Y: y} }
}

func WithGlyph(glyph types.GlyphID) Component {
	return func(a *Actor) { a.Renderable = &domain.Renderable{Glyph: glyph} }
}

func WithVitals(v domain.Vitals) Component {
	return func(a *Actor) { a.Vitals = &v }
}

func WithHitPoints(hp domain.HitPoints) Component {
	return func(a *Actor) { a.HitPoints = &hp }
}

func WithLock(locked bool) Component {
	return func(a *Actor) { a.Lock = &domain.LockState{IsLocked: locked} }
}

func WithStack(count int) Component {
	return func(a *Actor) { a.Stackable = &domain.Stackable{Count: count} }
}

// WithContents без аргументов подключает пустое содержимое.
func WithContents(entries ...domain.ContentsEntry) Component {
	return func(a *Actor) {
		a.Contents = append(make([]domain.ContentsEntry, 0, len(entries)), entries...)
	}
}

func WithTags(tags ...string) Component {
	return func(a *Actor) {
		a.Tags = append(make([]string, 0, len(tags)), tags...)
	}
}

func Selectable() Component {
	return func(a *Actor) { a.Selectable = true }
}

func Targetable() Component {
	return func(a *Actor) { a.Targetable = true }
}

func WithPassThrough(allowed bool) Component {
	return func(a *Actor) { a.Passability = &domain.Passability{AllowsPassThrough: allowed} }
}

func WithPath(path ...domain.Position) Component {
	return func(a *Actor) {
		a.Path = append(make([]domain.Position, 0, len(path)), path...)
	}
}

// Stack - запись содержимого для стопки.
func Stack(id types.ActorID) domain.ContentsEntry {
	return domain.ContentsEntry{Kind: domain.ContentsStack, ItemID: id}
}

// Single - запись содержимого для одиночного предмета.
func Single(id types.ActorID) domain.ContentsEntry {
	return domain.ContentsEntry{Kind: domain.ContentsSingle, ItemID: id}
}
