package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

func HandleOpen(ctx handlers.Context) (handlers.Result, error) {
	out := systems.Open(ctx.Logger(), ctx.State, ctx.Command.ActorID, ctx.Rules.OpenChestGlyph)
	return handlers.FromOutcome(ctx, out), nil
}
