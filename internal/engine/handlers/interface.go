package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/pathfinding"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/internal/systems"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

// Rules - настраиваемые параметры правил, общие для всех команд тика.
type Rules struct {
	Pathfinder     pathfinding.Func
	AttackDamage   int
	OpenChestGlyph types.GlyphID
	MineDropMax    int
}

// Context передает хендлеру снимок мира на начало тика.
// Хендлер НЕ меняет состояние, он только планирует мутации.
type Context struct {
	State       state.GameState
	Command     domain.Command
	Seed        rng.Seed      // Текущее зерно тика
	NextActorID types.ActorID // Следующий свободный ID для спавна
	Rules       Rules
	Log         logrus.FieldLogger
}

// Logger никогда не возвращает nil.
func (c Context) Logger() logrus.FieldLogger {
	if c.Log == nil {
		return logger.Log.WithField("component", "handlers")
	}
	return c.Log
}

// Result - то, что хендлер вернул движку.
// Seed и NextActorID - продвинутые значения, которые движок передаёт дальше.
type Result struct {
	Reason      domain.Reason
	Mutations   []domain.Mutation
	Seed        rng.Seed
	NextActorID types.ActorID
}

func (r Result) OK() bool {
	return r.Reason == domain.ReasonNone
}

// HandlerFunc - это контракт для любой команды (move, mine, attack, ...).
// error зарезервирован под нарушения инвариантов; отказ команды - это Reason.
type HandlerFunc func(ctx Context) (Result, error)

// Registry - таблица диспетчеризации команд.
type Registry map[domain.CommandKind]HandlerFunc

// Lookup возвращает хендлер для вида команды.
func (r Registry) Lookup(kind domain.CommandKind) (HandlerFunc, bool) {
	h, ok := r[kind]
	return h, ok && h != nil
}

// EmptyResult - успешный ответ без мутаций, зерно и счётчик не тронуты.
func EmptyResult(ctx Context) Result {
	return Result{Seed: ctx.Seed, NextActorID: ctx.NextActorID}
}

// Done - успешный ответ с мутациями.
func Done(ctx Context, muts ...domain.Mutation) Result {
	res := EmptyResult(ctx)
	res.Mutations = muts
	return res
}

// Rejected - отказ команды без мутаций.
func Rejected(ctx Context, reason domain.Reason) Result {
	res := EmptyResult(ctx)
	res.Reason = reason
	return res
}

// FromOutcome переводит результат системы в ответ хендлера.
func FromOutcome(ctx Context, out systems.Outcome) Result {
	if !out.OK() {
		return Rejected(ctx, out.Reason)
	}
	return Done(ctx, out.Mutations...)
}
