package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

// HandleMove - шаг на одну клетку. Проверка идёт по состоянию на начало тика.
func HandleMove(ctx handlers.Context, p handlers.DirectionPayload) (handlers.Result, error) {
	id := ctx.Command.ActorID
	res := systems.CalculateMove(ctx.State, id, p.Dir)

	if !res.HasMoved {
		entry := ctx.Logger().WithField("actor_id", id).WithField("reason", res.Reason)
		if !res.BlockedBy.IsNil() {
			entry = entry.WithField("blocked_by", res.BlockedBy)
		}
		entry.Debug("Move rejected.")
		return handlers.Rejected(ctx, res.Reason), nil
	}

	return handlers.Done(ctx, res.Mutation(id)), nil
}
