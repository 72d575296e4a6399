package actions

import (
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

// HandleMoveTo строит маршрут и сохраняет его в компонент Path.
// Сам шаг в этом тике не делается: путь расходуется по клетке за тик.
func HandleMoveTo(ctx handlers.Context, p handlers.GoalPayload) (handlers.Result, error) {
	id := ctx.Command.ActorID
	path, reason := systems.PlanMoveTo(ctx.State, id, p.Goal, ctx.Rules.Pathfinder)
	if reason != domain.ReasonNone {
		ctx.Logger().WithField("actor_id", id).WithField("reason", reason).Debug("Path planning failed.")
		return handlers.Rejected(ctx, reason), nil
	}

	ctx.Logger().WithField("actor_id", id).WithField("steps", len(path)).Debug("Path stored.")
	return handlers.Done(ctx, domain.PathMutation(id, path)), nil
}
