package systems

import (
	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

// Target - найденная цель взаимодействия и её клетка.
type Target struct {
	ID       types.ActorID
	Position domain.Position
}

// Predicate - фильтр кандидатов поверх проверки соседства.
type Predicate func(store *actors.Store, id types.ActorID) bool

// findNear обходит акторов в порядке создания и возвращает первого подходящего.
// sameTile разрешает цели в собственной клетке; self всегда исключается.
func findNear(store *actors.Store, origin domain.Position, self types.ActorID, sameTile bool, pred Predicate) (Target, bool) {
	var found Target
	ok := false
	store.Each(func(id types.ActorID) bool {
		if id == self {
			return true
		}
		pos, has := store.Position(id)
		if !has {
			return true
		}
		near := origin.IsAdjacent(pos) || (sameTile && pos == origin)
		if near && pred(store, id) {
			found = Target{ID: id, Position: pos}
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// --- Предикаты ---

func IsTargetable(store *actors.Store, id types.ActorID) bool {
	return store.IsTargetable(id)
}

// IsAttackable - есть HitPoints напрямую или через Vitals.
func IsAttackable(store *actors.Store, id types.ActorID) bool {
	if _, ok := store.HitPoints(id); ok {
		return true
	}
	_, ok := store.Vitals(id)
	return ok
}

func IsChest(store *actors.Store, id types.ActorID) bool {
	return store.IsKind(id, domain.KindChest)
}

// IsPickable - стопка или предмет с тегом "item".
func IsPickable(store *actors.Store, id types.ActorID) bool {
	if _, ok := store.Stackable(id); ok {
		return true
	}
	return store.HasTag(id, domain.TagItem)
}

// --- Поиск целей (соседство по Чебышёву, своя клетка исключена) ---

func FindAdjacentTargetable(store *actors.Store, origin domain.Position, self types.ActorID) (Target, bool) {
	return findNear(store, origin, self, false, IsTargetable)
}

func FindAdjacentAttackable(store *actors.Store, origin domain.Position, self types.ActorID) (Target, bool) {
	return findNear(store, origin, self, false, IsAttackable)
}

func FindAdjacentChest(store *actors.Store, origin domain.Position, self types.ActorID) (Target, bool) {
	return findNear(store, origin, self, false, IsChest)
}

// FindAdjacentPickable дополнительно смотрит собственную клетку актора.
func FindAdjacentPickable(store *actors.Store, origin domain.Position, self types.ActorID) (Target, bool) {
	return findNear(store, origin, self, true, IsPickable)
}
