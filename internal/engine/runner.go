package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

// CommandSource отдаёт команды для тика.
type CommandSource interface {
	CommandsFor(tick int) []domain.Command
}

// CommandSourceFunc - адаптер функции к CommandSource.
type CommandSourceFunc func(tick int) []domain.Command

func (f CommandSourceFunc) CommandsFor(tick int) []domain.Command {
	return f(tick)
}

// Runner - однопоточный держатель последней пары (state, seed).
// Сам шедулер (частота тиков) остаётся снаружи: Runner только шагает.
type Runner struct {
	state  state.GameState
	seed   rng.Seed
	cfg    Config
	source CommandSource

	// Журнал поданных команд. nil - запись выключена.
	journal *domain.ReplaySession
	log     *logrus.Entry
}

// NewRunner создает Runner. source может быть nil - тогда тики идут без команд.
func NewRunner(s state.GameState, seed rng.Seed, cfg Config, source CommandSource) *Runner {
	return &Runner{
		state:  s,
		seed:   seed,
		cfg:    cfg,
		source: source,
		log:    logger.Log.WithField("component", "runner"),
	}
}

// Record включает журнал команд. В заголовок журнала идут scenario, текущее
// зерно и действующие правила; число тиков растёт с каждым шагом.
func (r *Runner) Record(scenario string, timestamp int64) {
	r.journal = &domain.ReplaySession{
		Scenario:  scenario,
		Seed:      uint32(r.seed),
		Timestamp: timestamp,
		Rules:     r.cfg.replayRules(),
		Actions:   make([]domain.ReplayAction, 0),
	}
}

// Journal возвращает журнал или nil, если запись не включена.
func (r *Runner) Journal() *domain.ReplaySession {
	return r.journal
}

func (r *Runner) State() state.GameState { return r.state }
func (r *Runner) Seed() rng.Seed         { return r.seed }

// Step выполняет один тик с явными командами.
func (r *Runner) Step(cmds []domain.Command) (domain.Diff, error) {
	tick := r.state.Tick
	res, err := Step(r.state, cmds, r.seed, r.cfg)
	if err != nil {
		r.log.WithError(err).WithField("tick", tick).Error("Tick failed.")
		return domain.Diff{}, err
	}

	if r.journal != nil {
		r.journal.Ticks++
		for _, cmd := range cmds {
			r.journal.Actions = append(r.journal.Actions, domain.ReplayAction{Tick: tick, Command: cmd})
		}
	}

	r.state = res.State
	r.seed = res.Seed

	failed := 0
	for _, cr := range res.Diff.CommandResults {
		if !cr.IsOK() {
			failed++
		}
	}
	r.log.WithFields(logrus.Fields{
		"tick":     res.Diff.Tick,
		"commands": len(cmds),
		"failed":   failed,
		"moves":    len(res.Diff.ActorMoves),
	}).Debug("Tick advanced.")

	return res.Diff, nil
}

// StepOnce берёт команды из источника для текущего тика.
func (r *Runner) StepOnce() (domain.Diff, error) {
	var cmds []domain.Command
	if r.source != nil {
		cmds = r.source.CommandsFor(r.state.Tick)
	}
	return r.Step(cmds)
}

// RunTicks делает n тиков подряд. onDiff вызывается после каждого тика;
// ошибка из onDiff останавливает прогон. Отмена ctx проверяется между тиками.
func (r *Runner) RunTicks(ctx context.Context, n int, onDiff func(domain.Diff) error) error {
	r.log.WithFields(logrus.Fields{
		"from_tick": r.state.Tick,
		"ticks":     n,
		"seed":      uint32(r.seed),
	}).Info("Run started.")

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		diff, err := r.StepOnce()
		if err != nil {
			return fmt.Errorf("run tick %d: %w", r.state.Tick, err)
		}
		if onDiff != nil {
			if err := onDiff(diff); err != nil {
				return err
			}
		}
	}

	r.log.WithFields(logrus.Fields{
		"tick":   r.state.Tick,
		"seed":   uint32(r.seed),
		"actors": r.state.Actors.Len(),
	}).Info("Run finished.")
	return nil
}
