package scenario

import (
	_ "embed"
)

//go:embed defaults/default.yaml
var defaultScenarioYAML []byte

// DefaultName - имя встроенного сценария.
const DefaultName = "default"
