package domain

import (
	"fmt"

	"github.com/aravasio/simworld/internal/core/types/enums"
)

// Position - целочисленные координаты клетки.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pos - короткий конструктор для тестов и сценариев.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// ChebyshevTo возвращает расстояние Чебышёва (диагональ = 1 шаг).
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ).
// Собственная клетка соседней не считается.
func (p Position) IsAdjacent(other Position) bool {
	return p.ChebyshevTo(other) == 1
}

// IsAdjacentOrSame - как IsAdjacent, но своя клетка тоже подходит.
func (p Position) IsAdjacentOrSame(other Position) bool {
	return p.ChebyshevTo(other) <= 1
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает соседнюю клетку в заданном направлении.
func (p Position) Step(dir enums.Direction) Position {
	dx, dy := dir.Offset()
	return p.Shift(dx, dy)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
