package actions

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/internal/world"
)

// Системы пишут в логгер контекста, а не в глобальный.
func TestHandlersLogThroughContext(t *testing.T) {
	tests := []struct {
		name   string
		cmd    domain.Command
		target []actors.Component
		want   string
	}{
		{
			name: "Mine",
			cmd:  domain.MineCommand(1),
			target: []actors.Component{
				actors.WithKind(domain.KindRock),
				actors.WithPosition(2, 1),
				actors.Targetable(),
			},
			want: "Mining planned.",
		},
		{
			name: "Attack",
			cmd:  domain.AttackCommand(1),
			target: []actors.Component{
				actors.WithKind(domain.KindChest),
				actors.WithPosition(2, 1),
				actors.WithHitPoints(domain.FullHitPoints(12)),
				actors.Targetable(),
			},
			want: "Attack planned.",
		},
		{
			name: "Open",
			cmd:  domain.OpenCommand(1),
			target: []actors.Component{
				actors.WithKind(domain.KindChest),
				actors.WithPosition(2, 1),
				actors.WithLock(false),
				actors.WithContents(),
				actors.Targetable(),
			},
			want: "Chest open planned.",
		},
		{
			name: "Pickup",
			cmd:  domain.PickupCommand(1),
			target: []actors.Component{
				actors.WithKind(domain.KindRockMaterial),
				actors.WithPosition(1, 1),
				actors.WithTags(domain.TagItem),
			},
			want: "Pickup planned.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			log.SetLevel(logrus.DebugLevel)

			store := actors.New().
				MustCreate(1, actors.WithKind(domain.KindCreature), actors.WithPosition(1, 1), actors.WithVitals(domain.NewVitals(10, 5, 8))).
				MustCreate(7, tt.target...)
			ctx := handlers.Context{
				State:       state.New(world.NewWalkable(4, 4), store),
				Command:     tt.cmd,
				Seed:        42,
				NextActorID: 100,
				Rules: handlers.Rules{
					AttackDamage:   1,
					OpenChestGlyph: types.GlyphOpenChest,
					MineDropMax:    domain.MineDropMax,
				},
				Log: log.WithField("component", "handlers_test"),
			}

			handle, ok := Default().Lookup(tt.cmd.Kind)
			if !ok {
				t.Fatalf("no handler for %s", tt.cmd.Kind)
			}
			res, err := handle(ctx)
			if err != nil || !res.OK() {
				t.Fatalf("result = %+v, err = %v", res, err)
			}

			entry := hook.LastEntry()
			if entry == nil || entry.Message != tt.want {
				t.Fatalf("last entry = %+v, want %q", entry, tt.want)
			}
			if entry.Data["component"] != "handlers_test" {
				t.Errorf("entry fields = %v", entry.Data)
			}
		})
	}
}
