package actors

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

func dwarf(x, y int) []Component {
	return []Component{
		WithKind(domain.KindCreature),
		WithPosition(x, y),
		WithGlyph(types.GlyphDwarf),
		WithVitals(domain.NewVitals(10, 5, 8)),
		WithTags(domain.TagDwarf),
		Selectable(),
		WithPassThrough(true),
	}
}

// mapPtr возвращает адрес заголовка карты, чтобы сравнивать разделение ревизий.
func mapPtr(m any) uintptr {
	return reflect.ValueOf(m).Pointer()
}

func TestCreate(t *testing.T) {
	t.Run("creature with vitals", func(t *testing.T) {
		s, err := New().Create(1, dwarf(2, 3)...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Exists(1) || s.Len() != 1 {
			t.Fatal("actor was not created")
		}
		pos, ok := s.Position(1)
		if !ok || pos != domain.Pos(2, 3) {
			t.Errorf("Position = %v, %v", pos, ok)
		}
		if !s.HasTag(1, domain.TagDwarf) || !s.IsSelectable(1) {
			t.Error("tags/selectable not stored")
		}
	})

	t.Run("creature without vitals fails", func(t *testing.T) {
		base := New()
		s, err := base.Create(1, WithKind(domain.KindCreature), WithPosition(0, 0))
		if !errors.Is(err, ErrCreatureWithoutVitals) {
			t.Fatalf("err = %v, want ErrCreatureWithoutVitals", err)
		}
		if s != base || s.Exists(1) {
			t.Error("store must be unchanged on invariant violation")
		}
	})

	t.Run("non-creature without vitals is fine", func(t *testing.T) {
		if _, err := New().Create(1, WithKind(domain.KindRock)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("existing id is a no-op", func(t *testing.T) {
		s := New().MustCreate(1, WithKind(domain.KindRock), WithPosition(1, 1))
		next, err := s.Create(1, WithKind(domain.KindChest), WithPosition(5, 5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != s {
			t.Error("expected the same revision")
		}
		if kind, _ := next.Kind(1); kind != domain.KindRock {
			t.Errorf("kind = %q, want rock", kind)
		}
	})

	t.Run("nil id fails", func(t *testing.T) {
		if _, err := New().Create(types.NilActorID); !errors.Is(err, ErrNilActorID) {
			t.Errorf("err = %v, want ErrNilActorID", err)
		}
	})

	t.Run("MustCreate panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		New().MustCreate(1, WithKind(domain.KindCreature))
	})
}

func TestRemove(t *testing.T) {
	s := New().
		MustCreate(1, dwarf(0, 0)...).
		MustCreate(2, WithKind(domain.KindRock), WithPosition(1, 0), WithHitPoints(domain.FullHitPoints(3)), Targetable()).
		MustCreate(3, dwarf(2, 0)...)

	next := s.Remove(2)

	if next.Exists(2) {
		t.Fatal("actor 2 still exists")
	}
	if _, ok := next.HitPoints(2); ok {
		t.Error("hit points not removed")
	}
	if next.IsTargetable(2) {
		t.Error("targetable flag not removed")
	}
	if got := next.IDs(); !reflect.DeepEqual(got, []types.ActorID{1, 3}) {
		t.Errorf("IDs = %v, want [1 3]", got)
	}
	if !s.Exists(2) {
		t.Error("previous revision was mutated")
	}
	if next.Remove(42) != next {
		t.Error("removing a missing actor should return the same revision")
	}
}

func TestGuardedSetters(t *testing.T) {
	s := New().
		MustCreate(1, dwarf(0, 0)...).
		MustCreate(2, WithKind(domain.KindGoldCoin), WithStack(5), WithTags(domain.TagItem))

	t.Run("SetPosition needs existing position", func(t *testing.T) {
		next := s.SetPosition(2, domain.Pos(3, 3))
		if _, ok := next.Position(2); ok {
			t.Error("SetPosition must not attach a position")
		}
		next = s.SetPosition(1, domain.Pos(1, 0))
		if pos, _ := next.Position(1); pos != domain.Pos(1, 0) {
			t.Errorf("Position = %v", pos)
		}
	})

	t.Run("PlacePosition attaches", func(t *testing.T) {
		next := s.PlacePosition(2, domain.Pos(3, 3))
		if pos, ok := next.Position(2); !ok || pos != domain.Pos(3, 3) {
			t.Errorf("Position = %v, %v", pos, ok)
		}
		if next.PlacePosition(99, domain.Pos(0, 0)) != next {
			t.Error("PlacePosition on missing actor should be a no-op")
		}
	})

	t.Run("ClearPosition", func(t *testing.T) {
		next := s.ClearPosition(1)
		if _, ok := next.Position(1); ok {
			t.Error("position not cleared")
		}
	})

	t.Run("SetRenderable and SetHitPoints need component", func(t *testing.T) {
		next := s.SetRenderable(2, domain.Renderable{Glyph: types.GlyphGold})
		if _, ok := next.Renderable(2); ok {
			t.Error("SetRenderable must not attach")
		}
		next = s.SetHitPoints(1, domain.FullHitPoints(1))
		if _, ok := next.HitPoints(1); ok {
			t.Error("SetHitPoints must not attach")
		}
		if next != s {
			t.Error("no-op setters should return the same revision")
		}
	})

	t.Run("SetVitals", func(t *testing.T) {
		v := domain.NewVitals(10, 5, 8).TakeDamage(4)
		next := s.SetVitals(1, v)
		if got, _ := next.Vitals(1); got.HitPoints.HP != 6 {
			t.Errorf("HP = %d, want 6", got.HitPoints.HP)
		}
	})

	t.Run("SetContents and SetPath attach on live actors", func(t *testing.T) {
		next := s.SetContents(1, []domain.ContentsEntry{Stack(2)}).
			SetPath(1, []domain.Position{domain.Pos(0, 1)})
		contents, ok := next.Contents(1)
		if !ok || len(contents) != 1 || contents[0].ItemID != 2 {
			t.Errorf("Contents = %v, %v", contents, ok)
		}
		if !next.HasPendingPath(1) {
			t.Error("path not stored")
		}
		if next.SetPath(99, nil) != next {
			t.Error("SetPath on a missing actor should be a no-op")
		}
	})
}

func TestReadsAreTotalAndCopied(t *testing.T) {
	s := New().MustCreate(1, append(dwarf(0, 0), WithPath(domain.Pos(1, 0), domain.Pos(2, 0)))...)

	if _, ok := s.Position(42); ok {
		t.Error("missing actor should have no position")
	}
	if s.Tags(42) != nil {
		t.Error("missing actor should have nil tags")
	}
	if _, ok := s.Get(42); ok {
		t.Error("Get of missing actor should fail")
	}

	path, _ := s.Path(1)
	path[0] = domain.Pos(9, 9)
	if again, _ := s.Path(1); again[0] != domain.Pos(1, 0) {
		t.Error("Path must return a copy")
	}

	ids := s.IDs()
	ids[0] = 77
	if s.IDs()[0] != 1 {
		t.Error("IDs must return a copy")
	}
}

func TestEmptyContentsIsPresent(t *testing.T) {
	s := New().MustCreate(1, WithKind(domain.KindChest), WithContents())
	contents, ok := s.Contents(1)
	if !ok || contents == nil || len(contents) != 0 {
		t.Errorf("Contents = %#v, %v; want empty present component", contents, ok)
	}

	a, _ := s.Get(1)
	if a.Contents == nil {
		t.Error("snapshot should keep empty contents as non-nil")
	}
}

func TestIterationOrderIsCreationOrder(t *testing.T) {
	s := New()
	want := []types.ActorID{5, 3, 9, 1, 7}
	for _, id := range want {
		s = s.MustCreate(id, WithKind(domain.KindRock))
	}

	var got []types.ActorID
	s.Each(func(id types.ActorID) bool {
		got = append(got, id)
		return true
	})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Each order = %v, want %v", got, want)
	}

	var first []types.ActorID
	s.Each(func(id types.ActorID) bool {
		first = append(first, id)
		return len(first) < 2
	})
	if len(first) != 2 {
		t.Errorf("Each should stop early, got %v", first)
	}
}

func TestCopyOnWriteSharing(t *testing.T) {
	base := New().
		MustCreate(1, dwarf(0, 0)...).
		MustCreate(2, WithKind(domain.KindChest), WithPosition(3, 3), WithLock(false), WithContents())

	next := base.SetPosition(1, domain.Pos(0, 1))

	if mapPtr(next.positions) == mapPtr(base.positions) {
		t.Error("touched positions map must be copied")
	}
	shared := []struct {
		name string
		a, b any
	}{
		{"kinds", base.kinds, next.kinds},
		{"vitals", base.vitals, next.vitals},
		{"locks", base.locks, next.locks},
		{"contents", base.contents, next.contents},
		{"tags", base.tags, next.tags},
		{"members", base.members, next.members},
	}
	for _, sh := range shared {
		if mapPtr(sh.a) != mapPtr(sh.b) {
			t.Errorf("untouched %s map should be shared", sh.name)
		}
	}

	if pos, _ := base.Position(1); pos != domain.Pos(0, 0) {
		t.Error("previous revision was mutated")
	}
}

func TestTxn_CopiesEachMapOnce(t *testing.T) {
	base := New().
		MustCreate(1, dwarf(0, 0)...).
		MustCreate(2, dwarf(1, 1)...)

	tx := base.Edit()
	tx.SetPosition(1, domain.Pos(0, 1))
	afterFirst := mapPtr(tx.work.positions)
	tx.SetPosition(2, domain.Pos(1, 2))
	if mapPtr(tx.work.positions) != afterFirst {
		t.Error("positions map copied twice in one transaction")
	}

	if err := tx.Create(3, WithKind(domain.KindRock), WithPosition(4, 4)); err != nil {
		t.Fatalf("create: %v", err)
	}
	tx.Remove(2)

	next := tx.Commit()
	if got := next.IDs(); !reflect.DeepEqual(got, []types.ActorID{1, 3}) {
		t.Errorf("IDs = %v", got)
	}
	if base.Len() != 2 || !base.Exists(2) {
		t.Error("base revision was mutated")
	}
	if pos, _ := base.Position(1); pos != domain.Pos(0, 0) {
		t.Error("base position was mutated")
	}
}

func TestTxn_CommitWithoutChanges(t *testing.T) {
	base := New().MustCreate(1, dwarf(0, 0)...)
	tx := base.Edit()
	tx.SetHitPoints(1, domain.FullHitPoints(1))
	if tx.Commit() != base {
		t.Error("commit without effective changes should return the base revision")
	}
}

func TestSnapshot(t *testing.T) {
	s := New().
		MustCreate(1, dwarf(0, 0)...).
		MustCreate(2, WithKind(domain.KindChest), WithPosition(3, 3), WithLock(true), WithHitPoints(domain.FullHitPoints(12)))

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("len = %d", len(snap))
	}
	chest := snap[1]
	if chest.Lock == nil || !chest.Lock.IsLocked {
		t.Error("lock missing from snapshot")
	}
	if chest.Vitals != nil {
		t.Error("chest must not have vitals")
	}
	if !snap[0].HasTag(domain.TagDwarf) {
		t.Error("dwarf tag missing from snapshot")
	}
}
