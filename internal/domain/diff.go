package domain

import (
	"github.com/aravasio/simworld/internal/core/types"
)

// ActorMove - перемещение актора за тик.
type ActorMove struct {
	ActorID types.ActorID `json:"actorId"`
	From    Position      `json:"from"`
	To      Position      `json:"to"`
}

// ActorAdded - новый актор с глифом для рендера.
type ActorAdded struct {
	ActorID types.ActorID `json:"actorId"`
	X       int           `json:"x"`
	Y       int           `json:"y"`
	Glyph   types.GlyphID `json:"glyphId"`
}

// TileChange - правка клетки. Пока правила клеток не меняют.
type TileChange struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Terrain uint16 `json:"terrain"`
	Flags   uint8  `json:"flags"`
}

// Diff - всё, что изменилось за тик. Потребляется рендером.
type Diff struct {
	Tick           int             `json:"tick"`
	ActorMoves     []ActorMove     `json:"actorMoves"`
	ActorsAdded    []ActorAdded    `json:"actorsAdded"`
	ActorsRemoved  []types.ActorID `json:"actorsRemoved"`
	CommandResults []CommandResult `json:"commandResults"`
	TileChanges    []TileChange    `json:"tileChanges"`
}

// NewDiff создаёт дифф с пустыми (не nil) списками, чтобы JSON всегда давал [].
func NewDiff(tick int) Diff {
	return Diff{
		Tick:           tick,
		ActorMoves:     []ActorMove{},
		ActorsAdded:    []ActorAdded{},
		ActorsRemoved:  []types.ActorID{},
		CommandResults: []CommandResult{},
		TileChanges:    []TileChange{},
	}
}

// IsEmpty - за тик ничего не произошло (результаты команд не учитываются).
func (d Diff) IsEmpty() bool {
	return len(d.ActorMoves) == 0 && len(d.ActorsAdded) == 0 &&
		len(d.ActorsRemoved) == 0 && len(d.TileChanges) == 0
}
