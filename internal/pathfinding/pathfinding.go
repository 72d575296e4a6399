// Package pathfinding ищет путь по сетке за абстрактным интерфейсом запросов,
// чтобы алгоритм можно было заменить, не трогая правила симуляции.
package pathfinding

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
)

// Query - то, что алгоритм знает о мире.
type Query interface {
	InBounds(x, y int) bool
	IsWalkable(x, y int) bool
	// IsBlocked - динамические препятствия (акторы). Может всегда отвечать false.
	IsBlocked(x, y int) bool
}

// QueryFuncs - адаптер из замыканий. Blocked может быть nil.
type QueryFuncs struct {
	Bounds   func(x, y int) bool
	Walkable func(x, y int) bool
	Blocked  func(x, y int) bool
}

func (q QueryFuncs) InBounds(x, y int) bool {
	return q.Bounds != nil && q.Bounds(x, y)
}

func (q QueryFuncs) IsWalkable(x, y int) bool {
	return q.Walkable != nil && q.Walkable(x, y)
}

func (q QueryFuncs) IsBlocked(x, y int) bool {
	return q.Blocked != nil && q.Blocked(x, y)
}

// Func - контракт алгоритма поиска пути.
//
// start == goal: пустой путь и true.
// Путь найден: полный путь, включая обе конечные точки, и true.
// Пути нет: nil и false.
type Func func(start, goal domain.Position, q Query) ([]domain.Position, bool)

// Default - алгоритм по умолчанию.
var Default Func = BFS

// BFS - поиск в ширину по 4 соседям в фиксированном порядке N, S, E, W.
// Даёт кратчайший путь на сетке с единичной стоимостью шага.
func BFS(start, goal domain.Position, q Query) ([]domain.Position, bool) {
	if start == goal {
		return []domain.Position{}, true
	}

	cameFrom := make(map[domain.Position]domain.Position)
	visited := mapset.New[domain.Position]()
	visited.Put(start)

	frontier := queue.New[domain.Position]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()

		for _, dir := range enums.Cardinals {
			next := current.Step(dir)
			if visited.Has(next) {
				continue
			}
			if !q.InBounds(next.X, next.Y) || !q.IsWalkable(next.X, next.Y) || q.IsBlocked(next.X, next.Y) {
				continue
			}

			visited.Put(next)
			cameFrom[next] = current

			if next == goal {
				return reconstruct(cameFrom, start, goal), true
			}
			frontier.Enqueue(next)
		}
	}

	return nil, false
}

func reconstruct(cameFrom map[domain.Position]domain.Position, start, goal domain.Position) []domain.Position {
	path := []domain.Position{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
