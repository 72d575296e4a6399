// Package render рисует состояние симуляции текстом для терминала.
// Симуляция хранит только идентификаторы глифов, символ и цвет живут здесь.
package render

import (
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/world"
)

// UnknownGlyph - для глифов без записи в таблице.
var UnknownGlyph = types.MakeGlyph(0x9BA4B0, '?')

var actorGlyphs = map[types.GlyphID]types.Glyph{
	types.GlyphDwarf:        types.MakeGlyph(0x4ADE80, 'X'),
	types.GlyphDwarfAlt:     types.MakeGlyph(0xF87171, 'Y'),
	types.GlyphRock:         types.MakeGlyph(0x9CA3AF, '#'), // камень
	types.GlyphRockMaterial: types.MakeGlyph(0xC58A2D, '*'),
	types.GlyphChest:        types.MakeGlyph(0xB5895B, 'C'),
	types.GlyphGold:         types.MakeGlyph(0xF6D365, '.'),
	types.GlyphOpenChest:    types.MakeGlyph(0xC8A26A, 'c'),
}

var terrainGlyphs = map[world.TerrainID]types.Glyph{
	world.TerrainVoid:  types.MakeGlyph(0x000000, ' '),
	world.TerrainFloor: types.MakeGlyph(0x374151, ' '),
	world.TerrainWall:  types.MakeGlyph(0x6B7280, '%'),
	world.TerrainWater: types.MakeGlyph(0x60A5FA, '~'),
}

// ActorGlyph - символ и цвет для идентификатора глифа.
func ActorGlyph(id types.GlyphID) types.Glyph {
	if g, ok := actorGlyphs[id]; ok {
		return g
	}
	return UnknownGlyph
}

// TerrainGlyph - символ и цвет местности.
func TerrainGlyph(t world.TerrainID) types.Glyph {
	if g, ok := terrainGlyphs[t]; ok {
		return g
	}
	return UnknownGlyph
}
