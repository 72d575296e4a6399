package engine

import (
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/systems"
)

// paths продвигает акторов по сохранённым маршрутам на одну клетку.
//
// Маршрут берётся из состояния на начало тика. Актор, которому в этом тике
// уже задали движение командой, пропускается. Если первая точка занята,
// маршрут остаётся как есть и будет повторён в следующем тике (без перепланирования).
func (p *planner) paths() {
	store := p.state.Actors
	store.Each(func(id types.ActorID) bool {
		if p.steered.Has(id) {
			return true
		}
		path, ok := store.Path(id)
		if !ok || len(path) == 0 {
			return true
		}
		from, ok := store.Position(id)
		if !ok {
			return true
		}

		next := path[0]
		if !systems.CanMoveTo(p.state, id, next.X, next.Y) {
			p.cfg.Logger.WithField("actor_id", id).WithField("waypoint", next).Debug("Path stalled.")
			return true
		}

		p.mutations = append(p.mutations,
			domain.MoveMutation(id, from, next),
			domain.PathMutation(id, path[1:]),
		)
		return true
	})
}
