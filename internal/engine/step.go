package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/pkg/rng"
)

// StepResult - новое состояние, продвинутое зерно и дифф тика.
type StepResult struct {
	State state.GameState
	Seed  rng.Seed
	Diff  domain.Diff
}

// Step продвигает симуляцию на один тик.
//
// Фазы: план команд (по снимку на начало тика), случайные шаги бездельников,
// расход сохранённых маршрутов, применение всех мутаций к одной рабочей копии.
// Ошибка означает нарушение инварианта; в этом случае состояние не выдаётся.
func Step(s state.GameState, cmds []domain.Command, seed rng.Seed, cfg Config) (StepResult, error) {
	if err := s.Validate(); err != nil {
		return StepResult{}, fmt.Errorf("step tick %d: %w", s.Tick, err)
	}
	cfg = cfg.withDefaults()

	p := &planner{
		state:     s,
		seed:      seed,
		nextID:    s.NextActorID,
		cfg:       cfg,
		commanded: mapset.New[types.ActorID](),
		steered:   mapset.New[types.ActorID](),
	}

	// 1. Команды
	results := make([]domain.CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		res, err := p.command(cmd)
		if err != nil {
			return StepResult{}, fmt.Errorf("step tick %d: %w", s.Tick, err)
		}
		results = append(results, res)
	}

	// 2. Бездельники
	if cfg.RandomWalkOnIdle {
		p.idle()
	}

	// 3. Маршруты
	p.paths()

	// 4. Применение
	diff := domain.NewDiff(s.Tick + 1)
	diff.CommandResults = results
	store, err := apply(s.Actors, p.mutations, &diff)
	if err != nil {
		return StepResult{}, fmt.Errorf("step tick %d: %w", s.Tick, err)
	}

	next := state.GameState{
		World:       s.World,
		Actors:      store,
		Tick:        s.Tick + 1,
		NextActorID: p.nextID,
	}

	cfg.Logger.WithFields(logrus.Fields{
		"tick":      next.Tick,
		"commands":  len(cmds),
		"mutations": len(p.mutations),
		"moves":     len(diff.ActorMoves),
		"added":     len(diff.ActorsAdded),
		"removed":   len(diff.ActorsRemoved),
	}).Debug("Tick complete.")

	return StepResult{State: next, Seed: p.seed, Diff: diff}, nil
}

// planner копит мутации тика и протягивает зерно и счётчик ID.
type planner struct {
	state     state.GameState
	seed      rng.Seed
	nextID    types.ActorID
	cfg       Config
	mutations []domain.Mutation

	// commanded - акторы, получившие любую команду в этом тике
	commanded mapset.Set[types.ActorID]
	// steered - акторы, чьё движение уже определено командой (move или moveTo)
	steered mapset.Set[types.ActorID]
}

// command планирует одну команду и всегда возвращает ровно один CommandResult.
func (p *planner) command(cmd domain.Command) (domain.CommandResult, error) {
	p.commanded.Put(cmd.ActorID)

	log := p.cfg.Logger.WithFields(logrus.Fields{
		"tick":     p.state.Tick,
		"kind":     cmd.Kind,
		"actor_id": cmd.ActorID,
	})

	if err := cmd.Validate(); err != nil {
		log.WithError(err).Debug("Invalid command.")
		return domain.Fail(cmd, domain.ReasonInvalidCommand), nil
	}

	handler, ok := p.cfg.Handlers.Lookup(cmd.Kind)
	if !ok {
		log.Debug("No handler for command.")
		return domain.Fail(cmd, domain.ReasonInvalidCommand), nil
	}

	ctx := handlers.Context{
		State:       p.state,
		Command:     cmd,
		Seed:        p.seed,
		NextActorID: p.nextID,
		Rules:       p.cfg.rules(),
		Log:         log,
	}

	res, err := handler(ctx)
	if err != nil {
		return domain.CommandResult{}, fmt.Errorf("%s by %s: %w", cmd.Kind, cmd.ActorID, err)
	}
	if !res.OK() {
		return domain.Fail(cmd, res.Reason), nil
	}

	p.seed = res.Seed
	p.nextID = res.NextActorID
	p.mutations = append(p.mutations, res.Mutations...)
	for _, m := range res.Mutations {
		if m.ActorID == cmd.ActorID && (m.Kind == domain.MutationActorMoved || m.Kind == domain.MutationPathSet) {
			p.steered.Put(cmd.ActorID)
		}
	}
	return domain.OK(cmd), nil
}
