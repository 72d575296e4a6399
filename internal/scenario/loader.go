package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario - содержимое файла нарушает правила сценария.
var ErrInvalidScenario = errors.New("invalid scenario")

const fileName = "default.yaml"

// Load загружает сценарий.
// Search order: customPath -> ~/.simworld/scenarios/default.yaml -> ./configs/scenarios/default.yaml -> embedded default
func Load(customPath string) (*File, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory
	if userPath := userScenarioPath(fileName); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if f, err := Parse(data, userPath); err == nil {
				return f, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "scenarios", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if f, err := Parse(data, localPath); err == nil {
			return f, nil
		}
	}

	// Use embedded default YAML
	return Default()
}

// Default - встроенный сценарий.
func Default() (*File, error) {
	return Parse(defaultScenarioYAML, "embedded:"+DefaultName)
}

// Parse разбирает YAML строго: неизвестные поля - ошибка.
func Parse(data []byte, source string) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", source, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", source, err)
	}
	return &f, nil
}

// Marshal отдаёт сценарий обратно в YAML (для `simworld generate`).
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("marshal scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal scenario: %w", err)
	}
	return buf.Bytes(), nil
}

// userScenarioPath returns the path to user scenario file, or empty if home is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simworld", "scenarios", filename)
}
