package actors

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

// field - битовая метка карты компонента для учёта копирования.
type field uint16

const (
	fieldOrder field = 1 << iota
	fieldKinds
	fieldPositions
	fieldRenderables
	fieldVitals
	fieldHitPoints
	fieldLocks
	fieldStackables
	fieldContents
	fieldTags
	fieldSelectable
	fieldTargetable
	fieldPassability
	fieldPaths
)

// Txn - рабочая копия хранилища для пакетного применения правок.
//
// Каждая карта копируется не более одного раза - при первом касании.
// Нетронутые карты после Commit остаются общими с исходной ревизией.
// Txn не потокобезопасен и после Commit использоваться не должен.
type Txn struct {
	base    *Store
	work    Store
	touched field
}

// Edit открывает рабочую копию поверх текущей ревизии.
func (s *Store) Edit() *Txn {
	return &Txn{base: s, work: *s}
}

// Commit возвращает новую ревизию. Без правок - исходную.
func (t *Txn) Commit() *Store {
	if t.touched == 0 {
		return t.base
	}
	next := t.work
	return &next
}

// Store даёт доступ на чтение к текущему состоянию рабочей копии.
func (t *Txn) Store() *Store {
	return &t.work
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// own копирует карту при первом касании.
func (t *Txn) own(f field) {
	if t.touched&f != 0 {
		return
	}
	t.touched |= f

	w := &t.work
	switch f {
	case fieldOrder:
		order := make([]types.ActorID, len(w.order), len(w.order)+1)
		copy(order, w.order)
		w.order = order
		w.members = cloneMap(w.members)
	case fieldKinds:
		w.kinds = cloneMap(w.kinds)
	case fieldPositions:
		w.positions = cloneMap(w.positions)
	case fieldRenderables:
		w.renderables = cloneMap(w.renderables)
	case fieldVitals:
		w.vitals = cloneMap(w.vitals)
	case fieldHitPoints:
		w.hitPoints = cloneMap(w.hitPoints)
	case fieldLocks:
		w.locks = cloneMap(w.locks)
	case fieldStackables:
		w.stackables = cloneMap(w.stackables)
	case fieldContents:
		w.contents = cloneMap(w.contents)
	case fieldTags:
		w.tags = cloneMap(w.tags)
	case fieldSelectable:
		w.selectable = cloneMap(w.selectable)
	case fieldTargetable:
		w.targetable = cloneMap(w.targetable)
	case fieldPassability:
		w.passability = cloneMap(w.passability)
	case fieldPaths:
		w.paths = cloneMap(w.paths)
	}
}

// Create добавляет актора в рабочую копию. См. Store.Create.
func (t *Txn) Create(id types.ActorID, comps ...Component) error {
	if id.IsNil() {
		return fmt.Errorf("create actor: %w", ErrNilActorID)
	}
	if t.work.Exists(id) {
		return nil
	}

	a := Actor{ID: id}
	for _, c := range comps {
		if c != nil {
			c(&a)
		}
	}
	return t.Insert(a)
}

// Insert добавляет актора из готового снимка.
func (t *Txn) Insert(a Actor) error {
	id := a.ID
	if id.IsNil() {
		return fmt.Errorf("create actor: %w", ErrNilActorID)
	}
	if t.work.Exists(id) {
		return nil
	}
	if a.Kind == domain.KindCreature && a.Vitals == nil {
		return fmt.Errorf("create actor %s: %w", id, ErrCreatureWithoutVitals)
	}

	w := &t.work
	t.own(fieldOrder)
	w.order = append(w.order, id)
	w.members[id] = struct{}{}

	if a.Kind != "" {
		t.own(fieldKinds)
		w.kinds[id] = a.Kind
	}
	if a.Position != nil {
		t.own(fieldPositions)
		w.positions[id] = *a.Position
	}
	if a.Renderable != nil {
		t.own(fieldRenderables)
		w.renderables[id] = *a.Renderable
	}
	if a.Vitals != nil {
		t.own(fieldVitals)
		w.vitals[id] = *a.Vitals
	}
	if a.HitPoints != nil {
		t.own(fieldHitPoints)
		w.hitPoints[id] = *a.HitPoints
	}
	if a.Lock != nil {
		t.own(fieldLocks)
		w.locks[id] = *a.Lock
	}
	if a.Stackable != nil {
		t.own(fieldStackables)
		w.stackables[id] = *a.Stackable
	}
	if a.Contents != nil {
		t.own(fieldContents)
		w.contents[id] = copyContents(a.Contents)
	}
	if a.Tags != nil {
		set := mapset.New[string]()
		for _, tag := range a.Tags {
			set.Put(tag)
		}
		t.own(fieldTags)
		w.tags[id] = set
	}
	if a.Selectable {
		t.own(fieldSelectable)
		w.selectable[id] = true
	}
	if a.Targetable {
		t.own(fieldTargetable)
		w.targetable[id] = true
	}
	if a.Passability != nil {
		t.own(fieldPassability)
		w.passability[id] = *a.Passability
	}
	if a.Path != nil {
		t.own(fieldPaths)
		w.paths[id] = copyPath(a.Path)
	}
	return nil
}

// Remove удаляет актора и все его компоненты. Копируются только карты, где он был.
func (t *Txn) Remove(id types.ActorID) {
	w := &t.work
	if !w.Exists(id) {
		return
	}

	t.own(fieldOrder)
	delete(w.members, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	if _, ok := w.kinds[id]; ok {
		t.own(fieldKinds)
		delete(w.kinds, id)
	}
	if _, ok := w.positions[id]; ok {
		t.own(fieldPositions)
		delete(w.positions, id)
	}
	if _, ok := w.renderables[id]; ok {
		t.own(fieldRenderables)
		delete(w.renderables, id)
	}
	if _, ok := w.vitals[id]; ok {
		t.own(fieldVitals)
		delete(w.vitals, id)
	}
	if _, ok := w.hitPoints[id]; ok {
		t.own(fieldHitPoints)
		delete(w.hitPoints, id)
	}
	if _, ok := w.locks[id]; ok {
		t.own(fieldLocks)
		delete(w.locks, id)
	}
	if _, ok := w.stackables[id]; ok {
		t.own(fieldStackables)
		delete(w.stackables, id)
	}
	if _, ok := w.contents[id]; ok {
		t.own(fieldContents)
		delete(w.contents, id)
	}
	if _, ok := w.tags[id]; ok {
		t.own(fieldTags)
		delete(w.tags, id)
	}
	if _, ok := w.selectable[id]; ok {
		t.own(fieldSelectable)
		delete(w.selectable, id)
	}
	if _, ok := w.targetable[id]; ok {
		t.own(fieldTargetable)
		delete(w.targetable, id)
	}
	if _, ok := w.passability[id]; ok {
		t.own(fieldPassability)
		delete(w.passability, id)
	}
	if _, ok := w.paths[id]; ok {
		t.own(fieldPaths)
		delete(w.paths, id)
	}
}

// SetPosition - только для акторов, у которых Position уже есть.
func (t *Txn) SetPosition(id types.ActorID, p domain.Position) bool {
	if _, ok := t.work.positions[id]; !ok {
		return false
	}
	t.own(fieldPositions)
	t.work.positions[id] = p
	return true
}

// PlacePosition требует только существования актора.
func (t *Txn) PlacePosition(id types.ActorID, p domain.Position) bool {
	if !t.work.Exists(id) {
		return false
	}
	t.own(fieldPositions)
	t.work.positions[id] = p
	return true
}

func (t *Txn) ClearPosition(id types.ActorID) bool {
	if _, ok := t.work.positions[id]; !ok {
		return false
	}
	t.own(fieldPositions)
	delete(t.work.positions, id)
	return true
}

func (t *Txn) SetRenderable(id types.ActorID, r domain.Renderable) bool {
	if _, ok := t.work.renderables[id]; !ok {
		return false
	}
	t.own(fieldRenderables)
	t.work.renderables[id] = r
	return true
}

func (t *Txn) SetHitPoints(id types.ActorID, hp domain.HitPoints) bool {
	if _, ok := t.work.hitPoints[id]; !ok {
		return false
	}
	t.own(fieldHitPoints)
	t.work.hitPoints[id] = hp
	return true
}

func (t *Txn) SetVitals(id types.ActorID, v domain.Vitals) bool {
	if _, ok := t.work.vitals[id]; !ok {
		return false
	}
	t.own(fieldVitals)
	t.work.vitals[id] = v
	return true
}

// SetContents подключает или заменяет содержимое. Нужен только живой актор:
// инвентарь появляется при первом подборе.
func (t *Txn) SetContents(id types.ActorID, contents []domain.ContentsEntry) bool {
	if !t.work.Exists(id) {
		return false
	}
	t.own(fieldContents)
	t.work.contents[id] = copyContents(contents)
	return true
}

// SetPath подключает или заменяет маршрут. Нужен только живой актор.
func (t *Txn) SetPath(id types.ActorID, path []domain.Position) bool {
	if !t.work.Exists(id) {
		return false
	}
	t.own(fieldPaths)
	t.work.paths[id] = copyPath(path)
	return true
}

func copyContents(in []domain.ContentsEntry) []domain.ContentsEntry {
	out := make([]domain.ContentsEntry, len(in))
	copy(out, in)
	return out
}

func copyPath(in []domain.Position) []domain.Position {
	out := make([]domain.Position, len(in))
	copy(out, in)
	return out
}
