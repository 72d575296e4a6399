// Package world хранит плотную карту местности: тип клетки и битовые флаги.
//
// Grid неизменяем снаружи: правки идут через WithTile, который возвращает
// новую ревизию и не трогает исходную.
package world

import (
	"fmt"
	"strings"
)

// TerrainID - тип местности клетки.
type TerrainID uint16

const (
	TerrainVoid TerrainID = iota
	TerrainFloor
	TerrainWall
	TerrainWater
)

var terrainToString = map[TerrainID]string{
	TerrainVoid:  "void",
	TerrainFloor: "floor",
	TerrainWall:  "wall",
	TerrainWater: "water",
}

var terrainStringToType = map[string]TerrainID{
	"void":  TerrainVoid,
	"floor": TerrainFloor,
	"wall":  TerrainWall,
	"water": TerrainWater,
}

func (t TerrainID) String() string {
	if val, ok := terrainToString[t]; ok {
		return val
	}
	return fmt.Sprintf("terrain(%d)", uint16(t))
}

// ParseTerrain разбирает имя местности. Неизвестное имя - ошибка.
func ParseTerrain(s string) (TerrainID, error) {
	if val, ok := terrainStringToType[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val, nil
	}
	return TerrainVoid, fmt.Errorf("unknown terrain %q", s)
}

// TileFlag - битовая маска свойств клетки.
type TileFlag uint8

const (
	FlagWalkable TileFlag = 1 << iota
	FlagOpaque
)

// DefaultFlags - флаги, которые получает клетка данного типа по умолчанию.
func DefaultFlags(t TerrainID) TileFlag {
	switch t {
	case TerrainFloor:
		return FlagWalkable
	case TerrainWall:
		return FlagOpaque
	}
	return 0
}

// Grid - карта w*h. Срезы всегда ровно w*h длины.
type Grid struct {
	width   int
	height  int
	terrain []TerrainID
	flags   []TileFlag
}

// New создаёт карту, заполненную одним типом местности с заданными флагами.
// Отрицательные размеры приводятся к нулю.
func New(width, height int, fill TerrainID, flags TileFlag) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	n := width * height
	g := &Grid{
		width:   width,
		height:  height,
		terrain: make([]TerrainID, n),
		flags:   make([]TileFlag, n),
	}
	for i := 0; i < n; i++ {
		g.terrain[i] = fill
		g.flags[i] = flags
	}
	return g
}

// NewWalkable - открытая карта из пола.
func NewWalkable(width, height int) *Grid {
	return New(width, height, TerrainFloor, FlagWalkable)
}

// FromRows строит карту из готовой разметки, флаги берутся по DefaultFlags.
// Ширина - по первой строке, короткие строки добиваются TerrainVoid.
func FromRows(rows [][]TerrainID) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	g := New(width, height, TerrainVoid, 0)
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			i := y*width + x
			g.terrain[i] = row[x]
			g.flags[i] = DefaultFlags(row[x])
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Size возвращает (w, h).
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

func (g *Grid) InBounds(x, y int) bool {
	return g != nil && x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Index возвращает линейный индекс y*w+x и false за пределами карты.
func (g *Grid) Index(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return -1, false
	}
	return y*g.width + x, true
}

// Terrain возвращает тип клетки; за пределами карты - TerrainVoid.
func (g *Grid) Terrain(x, y int) TerrainID {
	idx, ok := g.Index(x, y)
	if !ok {
		return TerrainVoid
	}
	return g.terrain[idx]
}

// Flags возвращает флаги клетки; за пределами карты - 0.
func (g *Grid) Flags(x, y int) TileFlag {
	idx, ok := g.Index(x, y)
	if !ok {
		return 0
	}
	return g.flags[idx]
}

func (g *Grid) HasFlag(x, y int, flag TileFlag) bool {
	return g.Flags(x, y)&flag != 0
}

func (g *Grid) IsWalkable(x, y int) bool {
	return g.HasFlag(x, y, FlagWalkable)
}

func (g *Grid) IsOpaque(x, y int) bool {
	return g.HasFlag(x, y, FlagOpaque)
}

// TileEdit - правка клетки. nil Terrain оставляет тип как есть.
// Сначала снимаются Clear, затем ставятся Set.
type TileEdit struct {
	Terrain *TerrainID
	Set     TileFlag
	Clear   TileFlag
}

// SetTerrain - удобный конструктор правки типа местности.
func SetTerrain(t TerrainID) TileEdit {
	return TileEdit{Terrain: &t}
}

// WithTile возвращает новую ревизию карты с изменённой клеткой.
// Изменённый срез копируется, нетронутый переиспользуется.
// За пределами карты возвращается сама карта.
func (g *Grid) WithTile(x, y int, edit TileEdit) *Grid {
	idx, ok := g.Index(x, y)
	if !ok {
		return g
	}

	next := &Grid{
		width:   g.width,
		height:  g.height,
		terrain: g.terrain,
		flags:   g.flags,
	}

	if edit.Terrain != nil && *edit.Terrain != g.terrain[idx] {
		next.terrain = make([]TerrainID, len(g.terrain))
		copy(next.terrain, g.terrain)
		next.terrain[idx] = *edit.Terrain
	}

	newFlags := (g.flags[idx] &^ edit.Clear) | edit.Set
	if newFlags != g.flags[idx] {
		next.flags = make([]TileFlag, len(g.flags))
		copy(next.flags, g.flags)
		next.flags[idx] = newFlags
	}

	return next
}
