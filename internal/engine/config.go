package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine/handlers"
	"github.com/aravasio/simworld/internal/engine/handlers/actions"
	"github.com/aravasio/simworld/internal/pathfinding"
	"github.com/aravasio/simworld/pkg/logger"
)

// Config хранит параметры правил симуляции.
// Нулевое значение рабочее: пустые поля заменяются значениями по умолчанию.
type Config struct {
	// RandomWalkOnIdle - акторы без команды и без маршрута делают случайный шаг.
	RandomWalkOnIdle bool
	// Pathfinder - поиск пути для moveTo. По умолчанию BFS.
	Pathfinder pathfinding.Func
	// AttackDamage - урон одного удара.
	AttackDamage int
	// OpenChestGlyph - глиф открытого сундука.
	OpenChestGlyph types.GlyphID
	// MineDropMax - сколько максимум кусков породы даёт камень.
	MineDropMax int
	// Handlers - таблица команд. По умолчанию actions.Default().
	Handlers handlers.Registry
	// Logger - отладочные трассы тика. По умолчанию глобальный logger.Log.
	Logger logrus.FieldLogger
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Pathfinder == nil {
		c.Pathfinder = pathfinding.Default
	}
	if c.AttackDamage <= 0 {
		c.AttackDamage = domain.DefaultAttackDamage
	}
	if c.OpenChestGlyph == types.GlyphUnknown {
		c.OpenChestGlyph = types.GlyphOpenChest
	}
	if c.MineDropMax <= 0 {
		c.MineDropMax = domain.MineDropMax
	}
	if c.Handlers == nil {
		c.Handlers = actions.Default()
	}
	if c.Logger == nil {
		c.Logger = logger.Log.WithField("component", "engine")
	}
	return c
}

func (c Config) rules() handlers.Rules {
	return handlers.Rules{
		Pathfinder:     c.Pathfinder,
		AttackDamage:   c.AttackDamage,
		OpenChestGlyph: c.OpenChestGlyph,
		MineDropMax:    c.MineDropMax,
	}
}

// ConfigFromReplay - правила, с которыми был записан журнал.
func ConfigFromReplay(rules domain.ReplayRules) Config {
	return Config{
		RandomWalkOnIdle: rules.RandomWalkOnIdle,
		AttackDamage:     rules.AttackDamage,
		MineDropMax:      rules.MineDropMax,
	}
}

func (c Config) replayRules() domain.ReplayRules {
	c = c.withDefaults()
	return domain.ReplayRules{
		RandomWalkOnIdle: c.RandomWalkOnIdle,
		AttackDamage:     c.AttackDamage,
		MineDropMax:      c.MineDropMax,
	}
}
