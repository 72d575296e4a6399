// simworld - консольный прогон детерминированной симуляции клеточного мира.
//
// Usage:
//
//	simworld run [--scenario FILE] [--ticks N]   - Прогнать сценарий
//	simworld replay FILE                          - Воспроизвести журнал команд
//	simworld generate --seed N                    - Сгенерировать пещеру в YAML
//	simworld schema --out FILE                    - JSON Schema файла сценария
//	simworld version                              - Сведения о сборке
//
// Global flags:
//
//	--log-level <level>   - debug, info, warn, error (default: LOG_LEVEL or info)
//	--log-format <format> - text or json (default: LOG_FORMAT or text)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/pkg/logger"
)

var (
	// Global flags
	flagLogLevel  string
	flagLogFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simworld",
	Short: "Deterministic tile-world simulation",
	Long: `simworld runs a deterministic tick-based simulation of a tile world:
dwarves walk, mine rocks, break chests and pick up loot.

The same scenario, seed and commands always produce the same ticks.

Examples:
  simworld run --render
  simworld run --scenario ./cave.yaml --seed 7 --ticks 50 --json
  simworld run --record ./replays
  simworld replay ./replays/replay_default_1_1767225600.swrp --render
  simworld generate --seed-name cave-1 > cave.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Логи идут в stderr, stdout остаётся за кадрами и диффами.
		logger.Configure(logger.Options{
			Level:  flagLogLevel,
			Format: flagLogFormat,
			Output: os.Stderr,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
