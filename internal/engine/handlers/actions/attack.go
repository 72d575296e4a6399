package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/systems"
)

// HandleAttack - ближний удар по первой соседней цели со здоровьем.
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	out := systems.Attack(ctx.Logger(), ctx.State, ctx.Command.ActorID, ctx.Rules.AttackDamage)
	return handlers.FromOutcome(ctx, out), nil
}
