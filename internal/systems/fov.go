package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/world"
	"github.com/aravasio/simworld/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает множество линейных индексов видимых клеток.
// Взгляд останавливают клетки с FlagOpaque. Правила симуляции FOV не используют,
// это вспомогательный запрос для рендера.
func ComputeVisibleTiles(g *world.Grid, pos domain.Position, radius int) mapset.Set[int] {
	visible := mapset.New[int]()

	idx, ok := g.Index(pos.X, pos.Y)
	if !ok || radius <= 0 {
		return visible // Слепой или вне карты
	}

	// Центр всегда виден
	visible.Put(idx)

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(g, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "fov_system",
		"observer_pos":  pos,
		"radius":        radius,
		"visible_tiles": visible.Size(),
	}).Debug("FOV calculation complete.")

	return visible
}

func castLight(g *world.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[int]) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if idx, ok := g.Index(X, Y); ok && float64(dx*dx+dy*dy) < radiusSq {
				visible.Put(idx)
			}

			if blocked {
				if blocksSight(g, X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if blocksSight(g, X, Y) && j < radius {
				blocked = true
				castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// blocksSight: вне карты тоже считается препятствием.
func blocksSight(g *world.Grid, x, y int) bool {
	return !g.InBounds(x, y) || g.IsOpaque(x, y)
}
