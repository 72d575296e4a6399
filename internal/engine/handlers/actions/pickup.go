package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

// HandlePickup обрабатывает команду pickup - подбор предмета рядом или под собой
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	out := systems.Pickup(ctx.Logger(), ctx.State, ctx.Command.ActorID)
	return handlers.FromOutcome(ctx, out), nil
}
