package scenario

import (
	"fmt"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/world"
)

// Validate проверяет то, что можно проверить без сборки состояния.
// Инвариант creature/Vitals проверяет само хранилище при сборке.
func (f *File) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}

	if f.Generator != nil {
		if f.Generator.Width < minGeneratedSize || f.Generator.Height < minGeneratedSize {
			return fmt.Errorf("%w: generator size must be at least %dx%d", ErrInvalidScenario, minGeneratedSize, minGeneratedSize)
		}
	} else if err := f.validateContent(); err != nil {
		return err
	}

	for _, ts := range f.Script {
		if ts.Tick < 0 {
			return fmt.Errorf("%w: negative tick %d", ErrInvalidScenario, ts.Tick)
		}
		for _, cs := range ts.Commands {
			if _, err := cs.Command(); err != nil {
				return fmt.Errorf("%w: tick %d: %v", ErrInvalidScenario, ts.Tick, err)
			}
		}
	}
	return nil
}

func (f *File) validateContent() error {
	if f.World.Width <= 0 || f.World.Height <= 0 {
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidScenario, f.World.Width, f.World.Height)
	}
	if f.World.Fill != "" {
		if _, err := world.ParseTerrain(f.World.Fill); err != nil {
			return fmt.Errorf("%w: fill: %v", ErrInvalidScenario, err)
		}
	}
	for _, t := range f.World.Tiles {
		if _, err := world.ParseTerrain(t.Terrain); err != nil {
			return fmt.Errorf("%w: tile (%d,%d): %v", ErrInvalidScenario, t.X, t.Y, err)
		}
	}

	seen := make(map[uint32]bool, len(f.Actors))
	for _, a := range f.Actors {
		if a.ID == 0 {
			return fmt.Errorf("%w: actor id 0 is reserved", ErrInvalidScenario)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate actor id %d", ErrInvalidScenario, a.ID)
		}
		seen[a.ID] = true

		for _, c := range a.Contents {
			if domain.ParseContentsKind(c.Kind) == domain.ContentsUnknown {
				return fmt.Errorf("%w: actor %d: contents kind %q", ErrInvalidScenario, a.ID, c.Kind)
			}
		}
	}
	return nil
}

// Command переводит запись сценария в команду симуляции.
func (c CommandSpec) Command() (domain.Command, error) {
	kind := domain.ParseCommandKind(c.Kind)
	cmd := domain.Command{
		Kind:    kind,
		ActorID: types.ActorID(c.Actor),
		X:       c.X,
		Y:       c.Y,
	}
	if kind == domain.CommandMove {
		cmd.Dir = enums.ParseDirection(c.Dir)
	}
	if err := cmd.Validate(); err != nil {
		return domain.Command{}, fmt.Errorf("command %q for actor %d: %w", c.Kind, c.Actor, err)
	}
	return cmd, nil
}
