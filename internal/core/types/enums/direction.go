package enums

import (
	"fmt"
	"strings"
)

// Direction - одно из четырёх кардинальных направлений.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	North
	South
	East
	West
)

// Cardinals фиксирует порядок обхода соседей: N, S, E, W.
// На этом порядке держится детерминизм поиска пути и случайного блуждания.
var Cardinals = [4]Direction{North, South, East, West}

var directionToString = map[Direction]string{
	North: "N",
	South: "S",
	East:  "E",
	West:  "W",
}

var directionStringToType = map[string]Direction{
	"N":     North,
	"NORTH": North,
	"S":     South,
	"SOUTH": South,
	"E":     East,
	"EAST":  East,
	"W":     West,
	"WEST":  West,
}

// String возвращает короткое имя ("N", "S", "E", "W").
func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseDirection разбирает "N"/"north"/... без учёта регистра.
func ParseDirection(s string) Direction {
	if val, ok := directionStringToType[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return val
	}
	return DirectionUnknown
}

// Offset возвращает смещение клетки. Y растёт вниз, поэтому North = (0,-1).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// IsValid сообщает, является ли направление одним из кардинальных.
func (d Direction) IsValid() bool {
	_, ok := directionToString[d]
	return ok
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(data []byte) error {
	parsed := ParseDirection(string(data))
	if parsed == DirectionUnknown {
		return fmt.Errorf("unknown direction %q", data)
	}
	*d = parsed
	return nil
}
