package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/internal/engine"
	"github.com/aravasio/simworld/internal/infrastructure/storage"
	"github.com/aravasio/simworld/internal/scenario"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

var (
	flagReplayScenario string
	flagReplayTicks    int
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded command journal",
	Long: `Rebuild the initial state and feed the recorded commands back tick by tick.

The journal stores the scenario name, the starting seed, the rule settings
and the number of ticks run. Journals of the built-in scenario replay as is;
any other scenario needs --scenario.

Examples:
  simworld replay ./replays/replay_default_1_1767225600.swrp
  simworld replay ./cave.swrp --scenario ./cave.yaml --render`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayScenario, "scenario", "", "Scenario YAML the journal was recorded against")
	replayCmd.Flags().IntVar(&flagReplayTicks, "ticks", 0, "Number of ticks (0 = as many as were recorded)")
	addOutputFlags(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	session, err := storage.NewReplayService("").Load(args[0])
	if err != nil {
		return err
	}

	var f *scenario.File
	switch {
	case flagReplayScenario != "":
		f, err = scenario.Load(flagReplayScenario)
	case session.Scenario == scenario.DefaultName:
		f, err = scenario.Default()
	default:
		return fmt.Errorf("journal was recorded against scenario %q, pass it with --scenario", session.Scenario)
	}
	if err != nil {
		return err
	}
	if f.Name != session.Scenario {
		logger.Log.WithFields(logrus.Fields{
			"journal":  session.Scenario,
			"scenario": f.Name,
		}).Warn("Scenario name does not match the journal.")
	}

	seed := rng.Seed(session.Seed)
	st, err := f.Build(seed)
	if err != nil {
		return err
	}

	ticks := flagReplayTicks
	if ticks <= 0 {
		ticks = session.TickCount()
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario": session.Scenario,
		"seed":     session.Seed,
		"actions":  len(session.Actions),
		"ticks":    ticks,
		"rules":    session.Rules,
	}).Info("Replaying journal.")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := engine.NewRunner(st, seed, engine.ConfigFromReplay(session.Rules), engine.ScheduleFromReplay(session))
	return simulate(ctx, cmd.OutOrStdout(), runner, ticks, flagOutput)
}
