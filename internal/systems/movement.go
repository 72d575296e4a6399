package systems

import (
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/pathfinding"
	"github.com/aravasio/simworld/internal/state"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	From, To  domain.Position
	HasMoved  bool
	Reason    domain.Reason // Почему не сдвинулись (ReasonNone при успехе)
	BlockedBy types.ActorID // Если врезались в кого-то
}

// Mutation возвращает мутацию перемещения. Вызывать только при HasMoved.
func (r MovementResult) Mutation(id types.ActorID) domain.Mutation {
	return domain.MoveMutation(id, r.From, r.To)
}

// CalculateMove вычисляет шаг в направлении dir. Не меняет состояние мира!
func CalculateMove(s state.GameState, id types.ActorID, dir enums.Direction) MovementResult {
	from, ok := s.Actors.Position(id)
	if !ok {
		return MovementResult{Reason: domain.ReasonMissingPosition}
	}
	return CalculateMoveTo(s, id, from, from.Step(dir))
}

// CalculateMoveTo проверяет переход from -> to по тем же правилам, что и обычный шаг.
func CalculateMoveTo(s state.GameState, id types.ActorID, from, to domain.Position) MovementResult {
	res := MovementResult{From: from, To: to}

	// 1. Проверка границ
	if !s.World.InBounds(to.X, to.Y) {
		res.Reason = domain.ReasonOutOfBounds
		return res
	}

	// 2. Проверка проходимости клетки
	if !s.World.IsWalkable(to.X, to.Y) {
		res.Reason = domain.ReasonNotWalkable
		return res
	}

	// 3. Проверка акторов
	if blocker := BlockerAt(s, id, to.X, to.Y); !blocker.IsNil() {
		res.Reason = domain.ReasonBlocked
		res.BlockedBy = blocker
		return res
	}

	res.HasMoved = true
	return res
}

// MoveFailure - причина, по которой актор не может встать в (x,y). ReasonNone - может.
func MoveFailure(s state.GameState, id types.ActorID, x, y int) domain.Reason {
	from, _ := s.Actors.Position(id)
	return CalculateMoveTo(s, id, from, domain.Pos(x, y)).Reason
}

// CanMoveTo - границы, проходимость клетки и отсутствие блокирующих акторов.
func CanMoveTo(s state.GameState, id types.ActorID, x, y int) bool {
	return MoveFailure(s, id, x, y) == domain.ReasonNone
}

// BlockerAt возвращает первого актора в клетке, который не пропускает сквозь себя.
// Сам актор id себя не блокирует. Актор без Passability считается блокирующим.
func BlockerAt(s state.GameState, self types.ActorID, x, y int) types.ActorID {
	blocker := types.NilActorID
	s.Actors.Each(func(other types.ActorID) bool {
		if other == self {
			return true
		}
		pos, ok := s.Actors.Position(other)
		if !ok || pos.X != x || pos.Y != y {
			return true
		}
		if pass, ok := s.Actors.Passability(other); !ok || !pass.AllowsPassThrough {
			blocker = other
			return false
		}
		return true
	})
	return blocker
}

// IsBlockedAt - есть ли в клетке блокирующий актор (кроме self).
func IsBlockedAt(s state.GameState, self types.ActorID, x, y int) bool {
	return !BlockerAt(s, self, x, y).IsNil()
}

// GridQuery связывает карту и живой предикат блокировки для поиска пути.
func GridQuery(s state.GameState, self types.ActorID) pathfinding.Query {
	return pathfinding.QueryFuncs{
		Bounds:   s.World.InBounds,
		Walkable: s.World.IsWalkable,
		Blocked: func(x, y int) bool {
			return IsBlockedAt(s, self, x, y)
		},
	}
}

// PlanMoveTo строит маршрут к цели. Возвращает шаги без стартовой клетки.
//
// Порядок проверок: нет позиции, цель вне карты, цель непроходима, цель занята,
// старт совпадает с целью (пустой маршрут), пути нет.
func PlanMoveTo(s state.GameState, id types.ActorID, goal domain.Position, find pathfinding.Func) ([]domain.Position, domain.Reason) {
	start, ok := s.Actors.Position(id)
	if !ok {
		return nil, domain.ReasonMissingPosition
	}
	if !s.World.InBounds(goal.X, goal.Y) {
		return nil, domain.ReasonOutOfBounds
	}
	if !s.World.IsWalkable(goal.X, goal.Y) {
		return nil, domain.ReasonNotWalkable
	}
	if IsBlockedAt(s, id, goal.X, goal.Y) {
		return nil, domain.ReasonBlocked
	}
	if start == goal {
		return []domain.Position{}, domain.ReasonNone
	}

	if find == nil {
		find = pathfinding.Default
	}
	path, found := find(start, goal, GridQuery(s, id))
	if !found || len(path) == 0 {
		return nil, domain.ReasonNoPath
	}
	return path[1:], domain.ReasonNone
}
