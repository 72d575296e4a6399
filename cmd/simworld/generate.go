package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/internal/scenario"
	"github.com/aravasio/simworld/pkg/rng"
)

var (
	flagGenSeed     uint32
	flagGenSeedName string
	flagGen         scenario.GeneratorSpec
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cave scenario as YAML",
	Long: `Generate rooms and corridors with dwarves, rocks, gold and a chest,
and print the result as a scenario file. The same seed gives the same cave.

Examples:
  simworld generate --seed 7 > cave.yaml
  simworld generate --seed-name cave-1 --width 60 --height 30 --rocks 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := rng.Seed(flagGenSeed)
		if flagGenSeedName != "" {
			seed = rng.FromString(flagGenSeedName)
		}

		data, err := scenario.Marshal(scenario.Generate(flagGen, seed))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	generateCmd.Flags().Uint32Var(&flagGenSeed, "seed", 1, "RNG seed")
	generateCmd.Flags().StringVar(&flagGenSeedName, "seed-name", "", "Derive the RNG seed from a label")
	generateCmd.Flags().IntVar(&flagGen.Width, "width", 40, "Map width")
	generateCmd.Flags().IntVar(&flagGen.Height, "height", 25, "Map height")
	generateCmd.Flags().IntVar(&flagGen.MaxRooms, "rooms", 8, "Room placement attempts")
	generateCmd.Flags().IntVar(&flagGen.Dwarves, "dwarves", 2, "Dwarves in the first room")
	generateCmd.Flags().IntVar(&flagGen.Rocks, "rocks", 2, "Rocks per room")
}
