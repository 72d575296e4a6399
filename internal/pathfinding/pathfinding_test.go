package pathfinding

import (
	"reflect"
	"testing"

	"github.com/aravasio/simworld/internal/domain"
)

func openGrid(w, h int) QueryFuncs {
	return QueryFuncs{
		Bounds:   func(x, y int) bool { return x >= 0 && y >= 0 && x < w && y < h },
		Walkable: func(x, y int) bool { return true },
	}
}

func TestBFS(t *testing.T) {
	blockedAt := func(bx, by int) func(x, y int) bool {
		return func(x, y int) bool { return x == bx && y == by }
	}

	tests := []struct {
		name    string
		start   domain.Position
		goal    domain.Position
		query   Query
		wantLen int
		wantOK  bool
	}{
		{
			name:    "shortest path on open grid",
			start:   domain.Pos(0, 0),
			goal:    domain.Pos(2, 0),
			query:   openGrid(3, 3),
			wantLen: 3,
			wantOK:  true,
		},
		{
			name:  "detour around blocker",
			start: domain.Pos(0, 0),
			goal:  domain.Pos(2, 0),
			query: QueryFuncs{
				Bounds:   openGrid(3, 3).Bounds,
				Walkable: openGrid(3, 3).Walkable,
				Blocked:  blockedAt(1, 0),
			},
			wantLen: 5,
			wantOK:  true,
		},
		{
			name:  "unreachable goal",
			start: domain.Pos(0, 0),
			goal:  domain.Pos(1, 0),
			query: QueryFuncs{
				Bounds:   func(x, y int) bool { return x >= 0 && y >= 0 && x < 2 && y < 1 },
				Walkable: func(x, y int) bool { return false },
			},
			wantOK: false,
		},
		{
			name:    "start equals goal",
			start:   domain.Pos(1, 1),
			goal:    domain.Pos(1, 1),
			query:   openGrid(3, 3),
			wantLen: 0,
			wantOK:  true,
		},
		{
			name:   "goal out of bounds",
			start:  domain.Pos(0, 0),
			goal:   domain.Pos(5, 0),
			query:  openGrid(3, 3),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := BFS(tt.start, tt.goal, tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (path %v)", ok, tt.wantOK, path)
			}
			if !ok {
				if path != nil {
					t.Errorf("unreachable must return nil path, got %v", path)
				}
				return
			}
			if path == nil {
				t.Fatal("found path must not be nil")
			}
			if len(path) != tt.wantLen {
				t.Fatalf("len = %d, want %d (%v)", len(path), tt.wantLen, path)
			}
			if tt.wantLen == 0 {
				return
			}
			if path[0] != tt.start || path[len(path)-1] != tt.goal {
				t.Errorf("endpoints = %v..%v", path[0], path[len(path)-1])
			}
			for i := 1; i < len(path); i++ {
				if path[i-1].ChebyshevTo(path[i]) != 1 || path[i-1].X != path[i].X && path[i-1].Y != path[i].Y {
					t.Errorf("step %d is not a 4-connected move: %v -> %v", i, path[i-1], path[i])
				}
			}
		})
	}
}

// Порядок N, S, E, W определяет выбор среди равных по длине путей.
func TestBFS_TieBreakOrder(t *testing.T) {
	path, ok := BFS(domain.Pos(0, 0), domain.Pos(1, 1), openGrid(2, 2))
	if !ok {
		t.Fatal("expected a path")
	}
	// Из (0,0): N и вне карты, S=(0,1) раньше E=(1,0), значит путь идёт через (0,1).
	want := []domain.Position{domain.Pos(0, 0), domain.Pos(0, 1), domain.Pos(1, 1)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}
}

func TestBFS_StraightLineOnSevenBySeven(t *testing.T) {
	path, ok := BFS(domain.Pos(0, 4), domain.Pos(6, 4), openGrid(7, 7))
	if !ok || len(path) != 7 {
		t.Fatalf("path = %v, ok = %v", path, ok)
	}
	for i, p := range path {
		if p != domain.Pos(i, 4) {
			t.Errorf("path[%d] = %v, want (%d,4)", i, p, i)
		}
	}
}

func TestBFS_Deterministic(t *testing.T) {
	q := openGrid(10, 10)
	first, _ := BFS(domain.Pos(0, 0), domain.Pos(9, 9), q)
	for i := 0; i < 5; i++ {
		again, _ := BFS(domain.Pos(0, 0), domain.Pos(9, 9), q)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("BFS is not deterministic")
		}
	}
}

func TestQueryFuncs_NilSafe(t *testing.T) {
	var q QueryFuncs
	if q.InBounds(0, 0) || q.IsWalkable(0, 0) || q.IsBlocked(0, 0) {
		t.Error("empty QueryFuncs must answer false")
	}
}
