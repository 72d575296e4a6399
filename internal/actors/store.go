// Package actors - хранилище акторов в стиле ECS.
//
// Каждый компонент живёт в своей карте, ключ - ActorID. Порядок обхода
// задаётся отдельным срезом order (порядок создания), поэтому поиск
// "первого подходящего" детерминирован, несмотря на карты.
//
// Store неизменяем: любая правка возвращает новую ревизию, разделяя с
// предыдущей все карты, которые не были затронуты.
package actors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

var (
	// ErrCreatureWithoutVitals - нарушение инварианта данных: существо без Vitals.
	ErrCreatureWithoutVitals = errors.New("creature actors must include vitals")
	// ErrNilActorID - попытка создать актор с нулевым идентификатором.
	ErrNilActorID = errors.New("actor id must not be nil")
)

// Store - одна ревизия хранилища.
type Store struct {
	order   []types.ActorID
	members map[types.ActorID]struct{}

	kinds       map[types.ActorID]string
	positions   map[types.ActorID]domain.Position
	renderables map[types.ActorID]domain.Renderable
	vitals      map[types.ActorID]domain.Vitals
	hitPoints   map[types.ActorID]domain.HitPoints
	locks       map[types.ActorID]domain.LockState
	stackables  map[types.ActorID]domain.Stackable
	contents    map[types.ActorID][]domain.ContentsEntry
	tags        map[types.ActorID]mapset.Set[string]
	selectable  map[types.ActorID]bool
	targetable  map[types.ActorID]bool
	passability map[types.ActorID]domain.Passability
	paths       map[types.ActorID][]domain.Position
}

// New создаёт пустое хранилище.
func New() *Store {
	return &Store{
		order:       nil,
		members:     make(map[types.ActorID]struct{}),
		kinds:       make(map[types.ActorID]string),
		positions:   make(map[types.ActorID]domain.Position),
		renderables: make(map[types.ActorID]domain.Renderable),
		vitals:      make(map[types.ActorID]domain.Vitals),
		hitPoints:   make(map[types.ActorID]domain.HitPoints),
		locks:       make(map[types.ActorID]domain.LockState),
		stackables:  make(map[types.ActorID]domain.Stackable),
		contents:    make(map[types.ActorID][]domain.ContentsEntry),
		tags:        make(map[types.ActorID]mapset.Set[string]),
		selectable:  make(map[types.ActorID]bool),
		targetable:  make(map[types.ActorID]bool),
		passability: make(map[types.ActorID]domain.Passability),
		paths:       make(map[types.ActorID][]domain.Position),
	}
}

// --- Структурные операции ---

// Create добавляет актора. Если ID уже занят - возвращает хранилище без изменений.
// Существо (Kind == "creature") без Vitals - ошибка, хранилище не меняется.
func (s *Store) Create(id types.ActorID, comps ...Component) (*Store, error) {
	tx := s.Edit()
	if err := tx.Create(id, comps...); err != nil {
		return s, err
	}
	return tx.Commit(), nil
}

// MustCreate - как Create, но паникует на нарушении инварианта.
// Предназначен для сценариев и тестов, где некорректные данные - ошибка программиста.
func (s *Store) MustCreate(id types.ActorID, comps ...Component) *Store {
	next, err := s.Create(id, comps...)
	if err != nil {
		panic(err)
	}
	return next
}

// Remove удаляет актора и все его компоненты. Отсутствующий ID - no-op.
func (s *Store) Remove(id types.ActorID) *Store {
	tx := s.Edit()
	tx.Remove(id)
	return tx.Commit()
}

// --- Сеттеры (каждый - отдельная ревизия) ---

// SetPosition двигает актора. No-op, если у актора нет Position.
func (s *Store) SetPosition(id types.ActorID, p domain.Position) *Store {
	tx := s.Edit()
	tx.SetPosition(id, p)
	return tx.Commit()
}

// PlacePosition ставит актора в клетку, даже если Position не было (выкладка предмета).
func (s *Store) PlacePosition(id types.ActorID, p domain.Position) *Store {
	tx := s.Edit()
	tx.PlacePosition(id, p)
	return tx.Commit()
}

// ClearPosition убирает актора с карты (предмет ушёл в инвентарь).
func (s *Store) ClearPosition(id types.ActorID) *Store {
	tx := s.Edit()
	tx.ClearPosition(id)
	return tx.Commit()
}

func (s *Store) SetRenderable(id types.ActorID, r domain.Renderable) *Store {
	tx := s.Edit()
	tx.SetRenderable(id, r)
	return tx.Commit()
}

func (s *Store) SetHitPoints(id types.ActorID, hp domain.HitPoints) *Store {
	tx := s.Edit()
	tx.SetHitPoints(id, hp)
	return tx.Commit()
}

func (s *Store) SetVitals(id types.ActorID, v domain.Vitals) *Store {
	tx := s.Edit()
	tx.SetVitals(id, v)
	return tx.Commit()
}

func (s *Store) SetContents(id types.ActorID, contents []domain.ContentsEntry) *Store {
	tx := s.Edit()
	tx.SetContents(id, contents)
	return tx.Commit()
}

func (s *Store) SetPath(id types.ActorID, path []domain.Position) *Store {
	tx := s.Edit()
	tx.SetPath(id, path)
	return tx.Commit()
}

// --- Чтение. Все функции тотальны: нет актора или компонента - zero value / false. ---

func (s *Store) Exists(id types.ActorID) bool {
	_, ok := s.members[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.order)
}

// IDs возвращает копию идентификаторов в порядке создания.
func (s *Store) IDs() []types.ActorID {
	out := make([]types.ActorID, len(s.order))
	copy(out, s.order)
	return out
}

// Each обходит акторов в порядке создания. fn возвращает false, чтобы остановиться.
func (s *Store) Each(fn func(id types.ActorID) bool) {
	for _, id := range s.order {
		if !fn(id) {
			return
		}
	}
}

func (s *Store) Kind(id types.ActorID) (string, bool) {
	v, ok := s.kinds[id]
	return v, ok
}

// IsKind - удобная проверка вида.
func (s *Store) IsKind(id types.ActorID, kind string) bool {
	v, ok := s.kinds[id]
	return ok && v == kind
}

func (s *Store) Position(id types.ActorID) (domain.Position, bool) {
	v, ok := s.positions[id]
	return v, ok
}

func (s *Store) Renderable(id types.ActorID) (domain.Renderable, bool) {
	v, ok := s.renderables[id]
	return v, ok
}

func (s *Store) Vitals(id types.ActorID) (domain.Vitals, bool) {
	v, ok := s.vitals[id]
	return v, ok
}

func (s *Store) HitPoints(id types.ActorID) (domain.HitPoints, bool) {
	v, ok := s.hitPoints[id]
	return v, ok
}

func (s *Store) Lock(id types.ActorID) (domain.LockState, bool) {
	v, ok := s.locks[id]
	return v, ok
}

func (s *Store) Stackable(id types.ActorID) (domain.Stackable, bool) {
	v, ok := s.stackables[id]
	return v, ok
}

// Contents возвращает копию содержимого.
func (s *Store) Contents(id types.ActorID) ([]domain.ContentsEntry, bool) {
	v, ok := s.contents[id]
	if !ok {
		return nil, false
	}
	out := make([]domain.ContentsEntry, len(v))
	copy(out, v)
	return out, true
}

// Tags возвращает теги в отсортированном виде (порядок в множестве не определён).
func (s *Store) Tags(id types.ActorID) []string {
	set, ok := s.tags[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, set.Size())
	set.Each(func(tag string) {
		out = append(out, tag)
	})
	sort.Strings(out)
	return out
}

func (s *Store) HasTag(id types.ActorID, tag string) bool {
	set, ok := s.tags[id]
	return ok && set.Has(tag)
}

func (s *Store) IsSelectable(id types.ActorID) bool {
	return s.selectable[id]
}

func (s *Store) IsTargetable(id types.ActorID) bool {
	return s.targetable[id]
}

func (s *Store) Passability(id types.ActorID) (domain.Passability, bool) {
	v, ok := s.passability[id]
	return v, ok
}

// Path возвращает копию сохранённого маршрута.
func (s *Store) Path(id types.ActorID) ([]domain.Position, bool) {
	v, ok := s.paths[id]
	if !ok {
		return nil, false
	}
	out := make([]domain.Position, len(v))
	copy(out, v)
	return out, true
}

// HasPendingPath - есть ли непустой маршрут.
func (s *Store) HasPendingPath(id types.ActorID) bool {
	return len(s.paths[id]) > 0
}

// Get собирает снимок актора со всеми компонентами.
func (s *Store) Get(id types.ActorID) (Actor, bool) {
	if !s.Exists(id) {
		return Actor{}, false
	}

	a := Actor{
		ID:         id,
		Kind:       s.kinds[id],
		Tags:       s.Tags(id),
		Selectable: s.selectable[id],
		Targetable: s.targetable[id],
	}
	if v, ok := s.positions[id]; ok {
		a.Position = &v
	}
	if v, ok := s.renderables[id]; ok {
		a.Renderable = &v
	}
	if v, ok := s.vitals[id]; ok {
		a.Vitals = &v
	}
	if v, ok := s.hitPoints[id]; ok {
		a.HitPoints = &v
	}
	if v, ok := s.locks[id]; ok {
		a.Lock = &v
	}
	if v, ok := s.stackables[id]; ok {
		a.Stackable = &v
	}
	if v, ok := s.passability[id]; ok {
		a.Passability = &v
	}
	a.Contents, _ = s.Contents(id)
	a.Path, _ = s.Path(id)
	return a, true
}

// Snapshot возвращает всех акторов в порядке создания.
func (s *Store) Snapshot() []Actor {
	out := make([]Actor, 0, len(s.order))
	for _, id := range s.order {
		a, _ := s.Get(id)
		out = append(out, a)
	}
	return out
}

func (s *Store) String() string {
	return fmt.Sprintf("actors.Store{len=%d}", len(s.order))
}
