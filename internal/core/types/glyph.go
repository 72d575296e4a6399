package types

import (
	"fmt"
)

// GlyphID - идентификатор глифа, который хранит компонент Renderable.
// Симуляция оперирует только идентификаторами; таблица соответствия
// идентификатора и внешнего вида живёт на стороне рендера.
type GlyphID uint16

const (
	GlyphUnknown GlyphID = iota
	GlyphDwarf
	GlyphDwarfAlt
	GlyphRock
	GlyphRockMaterial
	GlyphChest
	GlyphGold
	GlyphOpenChest
)

// Glyph - упакованный цветной символ для текстового рендера.
//
//	[0:8]  - символ (маска 0xFF)
//	[8:32] - RGB-цвет (маска 0xFFFFFF)
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph упаковывает RGB-цвет (0xRRGGBB) и ASCII-символ.
// Старшие биты цвета за пределами 24 отбрасываются.
//
//	MakeGlyph(0x4ADE80, 'X') // 0x4ADE8058
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// HexColor возвращает цвет в виде "#RRGGBB".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer: "Glyph{char='X', color=#4ADE80}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}
