// Package scenario описывает стартовое содержимое симуляции: карту, акторов,
// сценарий команд по тикам и параметры правил. Источник - YAML-файл,
// встроенный сценарий по умолчанию или процедурный генератор.
package scenario

import (
	"github.com/aravasio/simworld/internal/domain"
)

// File - корень YAML-файла сценария.
type File struct {
	Name        string `yaml:"name" json:"name" jsonschema:"title=Scenario name,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Free-form notes for designers"`
	// Seed - зерно по умолчанию; флаг CLI его перекрывает.
	Seed *uint32 `yaml:"seed,omitempty" json:"seed,omitempty" jsonschema:"description=Default RNG seed for the run"`

	World     WorldSpec      `yaml:"world" json:"world" jsonschema:"description=Static tile grid"`
	Actors    []ActorSpec    `yaml:"actors,omitempty" json:"actors,omitempty" jsonschema:"description=Actors in creation order (target selection follows this order)"`
	Script    []TickSpec     `yaml:"script,omitempty" json:"script,omitempty" jsonschema:"description=Commands issued on specific ticks"`
	Sim       SimSpec        `yaml:"sim,omitempty" json:"sim,omitempty" jsonschema:"description=Rule tunables"`
	Generator *GeneratorSpec `yaml:"generator,omitempty" json:"generator,omitempty" jsonschema:"description=Procedural content; replaces world and actors when set"`
}

// WorldSpec - размер карты, заполнение и точечные правки клеток.
type WorldSpec struct {
	Width  int        `yaml:"width" json:"width" jsonschema:"minimum=1,required"`
	Height int        `yaml:"height" json:"height" jsonschema:"minimum=1,required"`
	Fill   string     `yaml:"fill,omitempty" json:"fill,omitempty" jsonschema:"enum=floor,enum=wall,enum=water,enum=void,default=floor"`
	Tiles  []TileSpec `yaml:"tiles,omitempty" json:"tiles,omitempty"`
}

// TileSpec - правка одной клетки. Флаги берутся по типу местности.
type TileSpec struct {
	X       int    `yaml:"x" json:"x"`
	Y       int    `yaml:"y" json:"y"`
	Terrain string `yaml:"terrain" json:"terrain" jsonschema:"enum=floor,enum=wall,enum=water,enum=void"`
}

// ActorSpec - актор и его компоненты. Отсутствующее поле - отсутствующий компонент.
type ActorSpec struct {
	ID          uint32            `yaml:"id" json:"id" jsonschema:"minimum=1,required"`
	Kind        string            `yaml:"kind,omitempty" json:"kind,omitempty" jsonschema:"examples=creature,examples=rock,examples=chest"`
	Position    *domain.Position  `yaml:"position,omitempty" json:"position,omitempty"`
	Glyph       uint16            `yaml:"glyph,omitempty" json:"glyph,omitempty" jsonschema:"description=Renderer glyph id"`
	Vitals      *VitalsSpec       `yaml:"vitals,omitempty" json:"vitals,omitempty" jsonschema:"description=Required for kind creature"`
	HP          *int              `yaml:"hp,omitempty" json:"hp,omitempty" jsonschema:"minimum=0"`
	Locked      *bool             `yaml:"locked,omitempty" json:"locked,omitempty"`
	Stack       *int              `yaml:"stack,omitempty" json:"stack,omitempty" jsonschema:"minimum=1"`
	Contents    []ContentsSpec    `yaml:"contents,omitempty" json:"contents,omitempty"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Selectable  bool              `yaml:"selectable,omitempty" json:"selectable,omitempty"`
	Targetable  bool              `yaml:"targetable,omitempty" json:"targetable,omitempty"`
	PassThrough *bool             `yaml:"passThrough,omitempty" json:"passThrough,omitempty"`
	Path        []domain.Position `yaml:"path,omitempty" json:"path,omitempty"`
}

// VitalsSpec - полные пулы существа.
type VitalsSpec struct {
	HP      int `yaml:"hp" json:"hp" jsonschema:"minimum=0"`
	MP      int `yaml:"mp" json:"mp" jsonschema:"minimum=0"`
	Stamina int `yaml:"stamina" json:"stamina" jsonschema:"minimum=0"`
}

// ContentsSpec - ссылка на предмет внутри контейнера.
type ContentsSpec struct {
	Kind string `yaml:"kind" json:"kind" jsonschema:"enum=stack,enum=single"`
	Item uint32 `yaml:"item" json:"item" jsonschema:"minimum=1"`
}

// TickSpec - команды одного тика в порядке подачи.
type TickSpec struct {
	Tick     int           `yaml:"tick" json:"tick" jsonschema:"minimum=0"`
	Commands []CommandSpec `yaml:"commands" json:"commands"`
}

// CommandSpec - команда в записи сценария.
type CommandSpec struct {
	Kind  string `yaml:"kind" json:"kind" jsonschema:"enum=move,enum=moveTo,enum=mine,enum=open,enum=attack,enum=pickup,enum=wait"`
	Actor uint32 `yaml:"actor" json:"actor" jsonschema:"minimum=1"`
	Dir   string `yaml:"dir,omitempty" json:"dir,omitempty" jsonschema:"enum=N,enum=S,enum=E,enum=W"`
	X     int    `yaml:"x,omitempty" json:"x,omitempty"`
	Y     int    `yaml:"y,omitempty" json:"y,omitempty"`
}

// SimSpec - параметры правил. Нули означают значения по умолчанию.
type SimSpec struct {
	RandomWalkOnIdle bool `yaml:"randomWalkOnIdle,omitempty" json:"randomWalkOnIdle,omitempty"`
	AttackDamage     int  `yaml:"attackDamage,omitempty" json:"attackDamage,omitempty" jsonschema:"minimum=0"`
	MineDropMax      int  `yaml:"mineDropMax,omitempty" json:"mineDropMax,omitempty" jsonschema:"minimum=0"`
	Ticks            int  `yaml:"ticks,omitempty" json:"ticks,omitempty" jsonschema:"minimum=0,description=Default tick count for a run"`
}

// GeneratorSpec - параметры процедурной пещеры.
type GeneratorSpec struct {
	Width    int `yaml:"width" json:"width" jsonschema:"minimum=8"`
	Height   int `yaml:"height" json:"height" jsonschema:"minimum=8"`
	MaxRooms int `yaml:"maxRooms,omitempty" json:"maxRooms,omitempty" jsonschema:"minimum=1"`
	Dwarves  int `yaml:"dwarves,omitempty" json:"dwarves,omitempty" jsonschema:"minimum=0"`
	Rocks    int `yaml:"rocks,omitempty" json:"rocks,omitempty" jsonschema:"minimum=0,description=Rocks per room"`
}
