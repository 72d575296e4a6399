package actions

import (
	"testing"

	"github.com/aravasio/simworld/internal/domain"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	kinds := []domain.CommandKind{
		domain.CommandMove,
		domain.CommandMoveTo,
		domain.CommandMine,
		domain.CommandOpen,
		domain.CommandAttack,
		domain.CommandPickup,
		domain.CommandWait,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			if _, ok := reg.Lookup(k); !ok {
				t.Errorf("no handler for %s", k)
			}
		})
	}
	if _, ok := reg.Lookup(domain.CommandUnknown); ok {
		t.Error("unknown kind must not have a handler")
	}

	// Каждый вызов - своя таблица
	delete(reg, domain.CommandWait)
	if _, ok := Default().Lookup(domain.CommandWait); !ok {
		t.Error("Default must return a fresh registry")
	}
}
