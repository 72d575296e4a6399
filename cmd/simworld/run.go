package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/internal/engine"
	"github.com/aravasio/simworld/internal/infrastructure/storage"
	"github.com/aravasio/simworld/internal/scenario"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

// defaultTicks - если ни флаг, ни сценарий не задали длину прогона.
const defaultTicks = 10

var (
	flagScenario   string
	flagTicks      int
	flagSeed       uint32
	flagSeedName   string
	flagRandomWalk bool
	flagRecord     string
	flagOutput     outputOptions
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario for a number of ticks",
	Long: `Build the initial state from a scenario and advance it tick by tick.

Scenario search order: --scenario FILE, ~/.simworld/scenarios/default.yaml,
./configs/scenarios/default.yaml, then the built-in default scenario.

Seed priority: --seed-name, --seed, the scenario seed, then a time-based seed.

Examples:
  simworld run --render --color
  simworld run --ticks 100 --random-walk --json
  simworld run --render --observer 1 --radius 4`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScenario, "scenario", "", "Path to scenario YAML")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks (0 = scenario default)")
	runCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "RNG seed")
	runCmd.Flags().StringVar(&flagSeedName, "seed-name", "", "Derive the RNG seed from a label")
	runCmd.Flags().BoolVar(&flagRandomWalk, "random-walk", false, "Idle actors take a random step (overrides scenario)")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Directory to save the command journal to")
	addOutputFlags(runCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagOutput.Render, "render", false, "Draw the map after every tick")
	cmd.Flags().BoolVar(&flagOutput.Color, "color", false, "Colour the map")
	cmd.Flags().BoolVar(&flagOutput.JSON, "json", false, "Print every diff as a JSON line")
	cmd.Flags().Uint32Var(&flagOutput.Observer, "observer", 0, "Only draw what this actor sees")
	cmd.Flags().IntVar(&flagOutput.Radius, "radius", 6, "Observer sight radius")
}

func runRun(cmd *cobra.Command, args []string) error {
	f, err := scenario.Load(flagScenario)
	if err != nil {
		return err
	}

	seed := resolveSeed(cmd, f)
	st, err := f.Build(seed)
	if err != nil {
		return err
	}

	script, err := f.Commands()
	if err != nil {
		return err
	}
	schedule := engine.NewSchedule()
	for _, a := range script {
		schedule.Add(a.Tick, a.Command)
	}

	cfg := simConfig(f)
	if cmd.Flags().Changed("random-walk") {
		cfg.RandomWalkOnIdle = flagRandomWalk
	}

	runner := engine.NewRunner(st, seed, cfg, schedule)
	if flagRecord != "" {
		runner.Record(f.Name, time.Now().Unix())
	}

	ticks := flagTicks
	if ticks <= 0 {
		ticks = f.Sim.Ticks
	}
	if ticks <= 0 {
		ticks = defaultTicks
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := simulate(ctx, cmd.OutOrStdout(), runner, ticks, flagOutput)

	// Журнал сохраняем и после прерывания: он пригодится для разбора.
	if flagRecord != "" {
		path, err := storage.NewReplayService(flagRecord).Save(runner.Journal())
		if err != nil {
			return fmt.Errorf("save journal: %w", err)
		}
		logger.Log.WithField("path", path).Info("Journal saved.")
	}
	return runErr
}

func resolveSeed(cmd *cobra.Command, f *scenario.File) rng.Seed {
	switch {
	case flagSeedName != "":
		seed := rng.FromString(flagSeedName)
		logger.Log.Infof("Seed %d derived from %q", seed, flagSeedName)
		return seed
	case cmd.Flags().Changed("seed"):
		logger.Log.Infof("Using explicit seed: %d", flagSeed)
		return rng.Seed(flagSeed)
	case f.Seed != nil:
		return f.SeedOr(0)
	}
	seed := rng.Seed(uint32(time.Now().UnixNano()))
	logger.Log.Infof("Using random seed: %d", seed)
	return seed
}

// simConfig - параметры правил из сценария. Нули заполнит движок.
func simConfig(f *scenario.File) engine.Config {
	return engine.Config{
		RandomWalkOnIdle: f.Sim.RandomWalkOnIdle,
		AttackDamage:     f.Sim.AttackDamage,
		MineDropMax:      f.Sim.MineDropMax,
	}
}
