package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/pkg/logger"
	"github.com/aravasio/simworld/pkg/rng"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const minimal = `
name: tiny
world:
  width: 3
  height: 2
`

func TestDefault_Build(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if f.Name != DefaultName {
		t.Errorf("Name = %q, want %q", f.Name, DefaultName)
	}

	st, err := f.Build(f.SeedOr(0))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if w, h := st.World.Size(); w != 7 || h != 7 {
		t.Errorf("world = %dx%d, want 7x7", w, h)
	}
	if st.Actors.Len() != 8 {
		t.Errorf("actors = %d, want 8", st.Actors.Len())
	}
	if st.NextActorID != 106 {
		t.Errorf("NextActorID = %d, want 106", st.NextActorID)
	}
	if st.Tick != 0 {
		t.Errorf("Tick = %d, want 0", st.Tick)
	}

	// Порядок создания сохраняется
	wantOrder := []types.ActorID{1, 2, 100, 101, 102, 103, 104, 105}
	if got := st.Actors.IDs(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("IDs = %v, want %v", got, wantOrder)
	}

	if lock, ok := st.Actors.Lock(104); !ok || !lock.IsLocked {
		t.Error("chest 104 must be locked")
	}
	contents, _ := st.Actors.Contents(104)
	wantContents := []domain.ContentsEntry{actors.Stack(102), actors.Stack(103)}
	if !reflect.DeepEqual(contents, wantContents) {
		t.Errorf("chest contents = %v, want %v", contents, wantContents)
	}
	if _, ok := st.Actors.Position(102); ok {
		t.Error("chest loot must not be positioned")
	}
	if v, ok := st.Actors.Vitals(1); !ok || v.HitPoints.HP != 10 {
		t.Errorf("dwarf vitals = %+v, %v", v, ok)
	}
}

func TestFile_Commands(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	cmds, err := f.Commands()
	if err != nil {
		t.Fatalf("Commands() error: %v", err)
	}
	if len(cmds) != 6 {
		t.Fatalf("len = %d, want 6", len(cmds))
	}

	first := cmds[0]
	if first.Tick != 0 || first.Command != domain.MoveToCommand(1, 2, 1) {
		t.Errorf("first = %+v", first)
	}
	last := cmds[5]
	if last.Tick != 7 || last.Command != domain.OpenCommand(2) {
		t.Errorf("last = %+v", last)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown field", minimal + "colour: red\n", "field colour not found"},
		{"missing name", "world: { width: 2, height: 2 }\n", "name is required"},
		{"zero size", "name: x\nworld: { width: 0, height: 2 }\n", "world size"},
		{"unknown fill", "name: x\nworld: { width: 2, height: 2, fill: lava }\n", "unknown terrain"},
		{
			"unknown tile terrain",
			minimal + "  tiles: [{ x: 0, y: 0, terrain: magma }]\n",
			"unknown terrain",
		},
		{
			"duplicate id",
			minimal + "actors:\n  - { id: 3, kind: rock }\n  - { id: 3, kind: rock }\n",
			"duplicate actor id 3",
		},
		{"reserved id", minimal + "actors:\n  - { id: 0, kind: rock }\n", "reserved"},
		{
			"bad contents kind",
			minimal + "actors:\n  - { id: 1, kind: chest, contents: [{ kind: bag, item: 2 }] }\n",
			"contents kind",
		},
		{
			"unknown command",
			minimal + "script:\n  - { tick: 0, commands: [{ kind: dance, actor: 1 }] }\n",
			"unknown command kind",
		},
		{
			"move without direction",
			minimal + "script:\n  - { tick: 0, commands: [{ kind: move, actor: 1 }] }\n",
			"invalid direction",
		},
		{
			"nil actor",
			minimal + "script:\n  - { tick: 0, commands: [{ kind: wait }] }\n",
			"actorId is required",
		},
		{
			"negative tick",
			minimal + "script:\n  - { tick: -1, commands: [] }\n",
			"negative tick",
		},
		{"small generator", "name: x\ngenerator: { width: 4, height: 20 }\n", "generator size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_InvalidScenarioSentinel(t *testing.T) {
	_, err := Parse([]byte("world: { width: 2, height: 2 }\n"), "test")
	if !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("errors.Is(err, ErrInvalidScenario) = false, err = %v", err)
	}
}

func TestBuild_Tiles(t *testing.T) {
	f, err := Parse([]byte(minimal+"  fill: wall\n  tiles:\n    - { x: 1, y: 1, terrain: floor }\n    - { x: 9, y: 9, terrain: floor }\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	st, err := f.Build(1)
	if err != nil {
		t.Fatal(err)
	}

	if !st.World.IsWalkable(1, 1) {
		t.Error("(1,1) must be floor")
	}
	if st.World.IsWalkable(0, 0) || !st.World.IsOpaque(0, 0) {
		t.Error("(0,0) must stay wall")
	}
	if st.NextActorID != 1 {
		t.Errorf("empty scenario NextActorID = %d, want 1", st.NextActorID)
	}
}

func TestBuild_CreatureWithoutVitals(t *testing.T) {
	f, err := Parse([]byte(minimal+"actors:\n  - { id: 1, kind: creature, position: { x: 0, y: 0 } }\n"), "test")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	_, err = f.Build(1)
	if !errors.Is(err, actors.ErrCreatureWithoutVitals) {
		t.Errorf("Build() error = %v, want ErrCreatureWithoutVitals", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("custom path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiny.yaml")
		if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
			t.Fatal(err)
		}
		f, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if f.Name != "tiny" {
			t.Errorf("Name = %q, want tiny", f.Name)
		}
	})

	t.Run("missing custom path", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := GeneratorSpec{Width: 40, Height: 25}

	a := Generate(spec, 42)
	b := Generate(spec, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different caves")
	}

	st, err := a.Build(42)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	dwarves := 0
	seen := make(map[domain.Position]types.ActorID)
	for _, actor := range st.Actors.Snapshot() {
		if actor.Kind == domain.KindCreature {
			dwarves++
		}
		if actor.Position == nil {
			continue
		}
		pos := *actor.Position
		if !st.World.IsWalkable(pos.X, pos.Y) {
			t.Errorf("actor %s placed on non-walkable %v", actor.ID, pos)
		}
		if other, dup := seen[pos]; dup {
			t.Errorf("actors %s and %s share %v", other, actor.ID, pos)
		}
		seen[pos] = actor.ID
	}
	if dwarves != defaultDwarves {
		t.Errorf("dwarves = %d, want %d", dwarves, defaultDwarves)
	}
}

func TestGenerate_ThroughFile(t *testing.T) {
	f, err := Parse([]byte("name: cave\ngenerator: { width: 30, height: 20, rocks: 1 }\n"), "test")
	if err != nil {
		t.Fatal(err)
	}

	seed := rng.FromString("cave-1")
	st, err := f.Build(seed)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want, err := Generate(*f.Generator, seed).Build(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(st.Actors.Snapshot(), want.Actors.Snapshot()) {
		t.Error("generator section must build the same cave as Generate")
	}

	// Сгенерированный файл переживает YAML и строгий разбор
	data, err := Marshal(Generate(*f.Generator, seed))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(data, "generated"); err != nil {
		t.Errorf("generated YAML does not parse: %v", err)
	}
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}
	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}
