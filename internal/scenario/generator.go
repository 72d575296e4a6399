package scenario

import (
	"fmt"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/pkg/rng"
)

// Константы генерации
const (
	minGeneratedSize = 8
	defaultMaxRooms  = 8
	defaultDwarves   = 2
	defaultRocks     = 2
	minRoomSize      = 4
	maxRoomSize      = 10
	chestHP          = 12
)

// Rect - вспомогательная структура для комнаты.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// interior - клетки пола комнаты построчно.
func (r Rect) interior() []domain.Position {
	var out []domain.Position
	for y := r.Y + 1; y < r.Y+r.H; y++ {
		for x := r.X + 1; x < r.X+r.W; x++ {
			out = append(out, domain.Pos(x, y))
		}
	}
	return out
}

// generator протаскивает зерно через все броски.
type generator struct {
	seed   rng.Seed
	nextID uint32
	used   map[domain.Position]bool
	actors []ActorSpec
}

func (g *generator) rangeInt(min, max int) int {
	n, next := rng.Range(g.seed, min, max)
	g.seed = next
	return n
}

func (g *generator) id() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

// Generate строит пещеру из комнат и коридоров. Один seed - одна и та же пещера.
//
// Гномы стоят в первой комнате, в остальных по Rocks камней. В последней
// комнате - запертый сундук с золотом, в средних - кучки золота.
func Generate(spec GeneratorSpec, seed rng.Seed) *File {
	width, height := spec.Width, spec.Height
	if width < minGeneratedSize {
		width = minGeneratedSize
	}
	if height < minGeneratedSize {
		height = minGeneratedSize
	}
	maxRooms := orDefault(spec.MaxRooms, defaultMaxRooms)
	dwarves := orDefault(spec.Dwarves, defaultDwarves)
	rocks := orDefault(spec.Rocks, defaultRocks)

	maxSize := min(maxRoomSize, width-2, height-2)
	g := &generator{seed: seed, nextID: 1, used: make(map[domain.Position]bool)}

	// 1. Заполняем стенами
	terrain := make([][]bool, height)
	for y := range terrain {
		terrain[y] = make([]bool, width)
	}

	// 2. Генерируем комнаты
	var rooms []Rect
	for i := 0; i < maxRooms; i++ {
		w := g.rangeInt(minRoomSize, maxSize)
		h := g.rangeInt(minRoomSize, maxSize)
		x := g.rangeInt(1, width-w-1)
		y := g.rangeInt(1, height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(terrain, newRoom)
		if len(rooms) > 0 {
			// Соединяем с предыдущей комнатой
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()
			if g.rangeInt(0, 1) == 0 {
				carveH(terrain, prevX, currX, prevY)
				carveV(terrain, prevY, currY, currX)
			} else {
				carveV(terrain, prevY, currY, prevX)
				carveH(terrain, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}

	// 3. Гномы в первой комнате, по порядку клеток
	if len(rooms) > 0 {
		spots := rooms[0].interior()
		for i := 0; i < dwarves && i < len(spots); i++ {
			glyph := types.GlyphDwarf
			if i%2 == 1 {
				glyph = types.GlyphDwarfAlt
			}
			g.place(spots[i], ActorSpec{
				Kind:        domain.KindCreature,
				Glyph:       uint16(glyph),
				Vitals:      &VitalsSpec{HP: 10, MP: 5, Stamina: 8},
				Tags:        []string{domain.TagDwarf},
				Selectable:  true,
				PassThrough: ptr(true),
			})
		}
	}

	// 4. Камни и золото в остальных комнатах
	for i := 1; i < len(rooms); i++ {
		room := rooms[i]
		for j := 0; j < rocks; j++ {
			if pos, ok := g.freeSpot(room); ok {
				g.place(pos, ActorSpec{
					Kind:       domain.KindRock,
					Glyph:      uint16(types.GlyphRock),
					Tags:       []string{domain.TagMineable},
					Targetable: true,
				})
			}
		}
		if i < len(rooms)-1 {
			if pos, ok := g.freeSpot(room); ok {
				g.place(pos, ActorSpec{
					Kind:        domain.KindGoldCoin,
					Glyph:       uint16(types.GlyphGold),
					Stack:       ptr(g.rangeInt(5, 20)),
					PassThrough: ptr(true),
				})
			}
		}
	}

	// 5. Сундук в центре последней комнаты
	if len(rooms) > 1 {
		cx, cy := rooms[len(rooms)-1].Center()
		center := domain.Pos(cx, cy)
		if !g.used[center] {
			loot := g.id()
			g.actors = append(g.actors, ActorSpec{
				ID:          loot,
				Kind:        domain.KindGoldCoin,
				Glyph:       uint16(types.GlyphGold),
				Stack:       ptr(g.rangeInt(10, 30)),
				Tags:        []string{domain.TagItem},
				PassThrough: ptr(true),
			})
			g.place(center, ActorSpec{
				Kind:        domain.KindChest,
				Glyph:       uint16(types.GlyphChest),
				HP:          ptr(chestHP),
				Locked:      ptr(true),
				Contents:    []ContentsSpec{{Kind: domain.ContentsStack.String(), Item: loot}},
				Targetable:  true,
				PassThrough: ptr(false),
			})
		}
	}

	s := uint32(seed)
	return &File{
		Name:        fmt.Sprintf("generated-%d", s),
		Description: fmt.Sprintf("Procedural cave, %d rooms", len(rooms)),
		Seed:        &s,
		World:       WorldSpec{Width: width, Height: height, Fill: "wall", Tiles: floorTiles(terrain)},
		Actors:      g.actors,
	}
}

func (g *generator) place(pos domain.Position, a ActorSpec) {
	a.ID = g.id()
	a.Position = &domain.Position{X: pos.X, Y: pos.Y}
	g.used[pos] = true
	g.actors = append(g.actors, a)
}

// freeSpot - случайная свободная клетка комнаты. Бросок делается всегда.
func (g *generator) freeSpot(room Rect) (domain.Position, bool) {
	spots := room.interior()
	if len(spots) == 0 {
		return domain.Position{}, false
	}
	start := g.rangeInt(0, len(spots)-1)
	for i := range spots {
		pos := spots[(start+i)%len(spots)]
		if !g.used[pos] {
			return pos, true
		}
	}
	return domain.Position{}, false
}

// --- Вспомогательные функции ---

func carveRoom(floor [][]bool, room Rect) {
	for _, p := range room.interior() {
		floor[p.Y][p.X] = true
	}
}

func carveH(floor [][]bool, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		floor[y][x] = true
	}
}

func carveV(floor [][]bool, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		floor[y][x] = true
	}
}

func floorTiles(floor [][]bool) []TileSpec {
	var tiles []TileSpec
	for y, row := range floor {
		for x, open := range row {
			if open {
				tiles = append(tiles, TileSpec{X: x, Y: y, Terrain: "floor"})
			}
		}
	}
	return tiles
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func ptr[T any](v T) *T {
	return &v
}
