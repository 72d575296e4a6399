package domain

import "strings"

// CommandKind - внутренний числовой идентификатор команды
type CommandKind uint8

const (
	CommandUnknown CommandKind = iota
	CommandMove
	CommandMoveTo
	CommandMine
	CommandOpen
	CommandAttack
	CommandPickup
	CommandWait
)

// Маппинг для конвертации входных данных -> Domain (ключи в нижнем регистре)
var commandStringToKind = map[string]CommandKind{
	"move":   CommandMove,
	"moveto": CommandMoveTo,
	"mine":   CommandMine,
	"open":   CommandOpen,
	"attack": CommandAttack,
	"pickup": CommandPickup,
	"wait":   CommandWait,
}

// Маппинг Domain -> String (стабильные имена для диффа и UI)
var commandKindToString = map[CommandKind]string{
	CommandMove:   "move",
	CommandMoveTo: "moveTo",
	CommandMine:   "mine",
	CommandOpen:   "open",
	CommandAttack: "attack",
	CommandPickup: "pickup",
	CommandWait:   "wait",
}

// ParseCommandKind конвертирует строку в CommandKind без учёта регистра.
func ParseCommandKind(s string) CommandKind {
	if val, ok := commandStringToKind[strings.ToLower(s)]; ok {
		return val
	}
	return CommandUnknown
}

// String реализует интерфейс Stringer
func (k CommandKind) String() string {
	if val, ok := commandKindToString[k]; ok {
		return val
	}
	return "unknown"
}

func (k CommandKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CommandKind) UnmarshalText(data []byte) error {
	*k = ParseCommandKind(string(data))
	return nil
}
