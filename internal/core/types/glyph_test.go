package types

import (
	"fmt"
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name  string
		color uint32
		char  byte
		want  Glyph
	}{
		{name: "dwarf", color: 0x4ADE80, char: 'X', want: Glyph(0x4ADE8058)},
		{name: "rock", color: 0x9CA3AF, char: '#', want: Glyph(0x9CA3AF23)},
		{name: "zero char", color: 0x808080, char: 0, want: Glyph(0x80808000)},
		{name: "color truncation", color: 0x12345678, char: 'x', want: Glyph(0x34567878)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.color, tt.char); got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestGlyph_Fields(t *testing.T) {
	tests := []struct {
		name      string
		g         Glyph
		wantChar  byte
		wantColor uint32
		wantHex   string
	}{
		{"gold", MakeGlyph(0xF6D365, '.'), '.', 0xF6D365, "#F6D365"},
		{"chest", MakeGlyph(0xB5895B, 'C'), 'C', 0xB5895B, "#B5895B"},
		{"padding zeros", Glyph(0x01020304), 0x04, 0x010203, "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Char(); got != tt.wantChar {
				t.Errorf("Char() = %q, want %q", got, tt.wantChar)
			}
			if got := tt.g.Color(); got != tt.wantColor {
				t.Errorf("Color() = 0x%06X, want 0x%06X", got, tt.wantColor)
			}
			if got := tt.g.HexColor(); got != tt.wantHex {
				t.Errorf("HexColor() = %s, want %s", got, tt.wantHex)
			}
		})
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(0xC58A2D, '*'), "Glyph{char='*', color=#C58A2D}"},
		{"newline escape", MakeGlyph(0xFFFFFF, '\n'), "Glyph{char='\\x0A', color=#FFFFFF}"},
		{"del escape", MakeGlyph(0x654321, 0x7F), "Glyph{char='\\x7F', color=#654321}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Цвет и символ не должны влиять друг на друга.
func TestGlyph_NoCrossFieldContamination(t *testing.T) {
	if MakeGlyph(0xFFFFFF, 'A').Char() != MakeGlyph(0x000000, 'A').Char() {
		t.Error("Char depends on color")
	}
	if MakeGlyph(0x123456, 'A').Color() != MakeGlyph(0x123456, 'Z').Color() {
		t.Error("Color depends on char")
	}
}

func ExampleMakeGlyph() {
	glyph := MakeGlyph(0xF87171, 'Y')

	fmt.Printf("%c %s\n", glyph.Char(), glyph.HexColor())
	fmt.Println(glyph)

	// Output:
	// Y #F87171
	// Glyph{char='Y', color=#F87171}
}
