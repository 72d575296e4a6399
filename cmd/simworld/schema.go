package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/internal/scenario"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON Schema of scenario files",
	Long: `Reflect the scenario file model into a JSON Schema for editor validation.
Without --out the schema is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := buildSchema()
		if flagSchemaOut == "" {
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		return writeSchema(flagSchemaOut, schema)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Path to write the JSON schema")
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(scenario.File))
	schema.Title = "simworld scenario"
	schema.Description = "Validates scenario files: world grid, actors, scripted commands and rule tunables"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
