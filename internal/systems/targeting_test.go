package systems

import (
	"testing"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

func TestFindAdjacent(t *testing.T) {
	store := actors.New().
		MustCreate(1, append(dwarfAt(2, 2), actors.Targetable())...).
		MustCreate(2, rockAt(4, 4)...). // далеко
		MustCreate(3, rockAt(3, 3)...).
		MustCreate(4, chestAt(1, 2, false)...).
		MustCreate(5, actors.WithKind(domain.KindGoldCoin), actors.WithPosition(2, 2), actors.WithStack(1))
	origin := domain.Pos(2, 2)

	tests := []struct {
		name   string
		find   func(*actors.Store, domain.Position, types.ActorID) (Target, bool)
		wantID types.ActorID
	}{
		{"Targetable takes first in order", FindAdjacentTargetable, 3},
		{"Attackable skips rocks", FindAdjacentAttackable, 4},
		{"Chest", FindAdjacentChest, 4},
		{"Pickable on own tile", FindAdjacentPickable, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.find(store, origin, 1)
			if !ok || got.ID != tt.wantID {
				t.Fatalf("got %v (%v), want %v", got.ID, ok, tt.wantID)
			}
			if want, _ := store.Position(tt.wantID); got.Position != want {
				t.Errorf("position = %v, want %v", got.Position, want)
			}
		})
	}

	t.Run("Self is never a target", func(t *testing.T) {
		lonely := actors.New().MustCreate(1, append(dwarfAt(0, 0), actors.Targetable())...)
		if _, ok := FindAdjacentTargetable(lonely, domain.Pos(0, 0), 1); ok {
			t.Error("actor found itself")
		}
		if _, ok := FindAdjacentPickable(lonely, domain.Pos(0, 0), 1); ok {
			t.Error("actor picked itself")
		}
	})

	t.Run("Targetable excludes own tile", func(t *testing.T) {
		s := actors.New().
			MustCreate(1, dwarfAt(0, 0)...).
			MustCreate(2, rockAt(0, 0)...)
		if _, ok := FindAdjacentTargetable(s, domain.Pos(0, 0), 1); ok {
			t.Error("own tile must not count as adjacent")
		}
	})
}
