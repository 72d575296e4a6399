package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

// HandleMine - единственная команда, которая тратит зерно и ID.
func HandleMine(ctx handlers.Context) (handlers.Result, error) {
	res := systems.Mine(ctx.Logger(), ctx.State, ctx.Command.ActorID, ctx.Seed, ctx.NextActorID, ctx.Rules.MineDropMax)

	out := handlers.FromOutcome(ctx, res.Outcome)
	out.Seed = res.Seed
	out.NextActorID = res.NextActorID
	return out, nil
}
