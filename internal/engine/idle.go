package engine

import (
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/systems"
	"github.com/aravasio/simworld/pkg/rng"
)

// idle - случайный шаг для каждого актора с позицией, у которого в этом тике
// нет ни команды, ни маршрута. Одно значение зерна на актора, в порядке хранилища.
// Неудачные шаги молча отбрасываются: у блуждания нет CommandResult.
func (p *planner) idle() {
	store := p.state.Actors
	store.Each(func(id types.ActorID) bool {
		if p.commanded.Has(id) || store.HasPendingPath(id) {
			return true
		}
		if _, ok := store.Position(id); !ok {
			return true
		}

		roll, next := rng.Int(p.seed, len(enums.Cardinals))
		p.seed = next

		res := systems.CalculateMove(p.state, id, enums.Cardinals[roll])
		if res.HasMoved {
			p.mutations = append(p.mutations, res.Mutation(id))
		}
		return true
	})
}
