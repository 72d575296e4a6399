package domain

import (
	"errors"
	"fmt"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/core/types/enums"
)

// Command - намерение игрока или ИИ на текущий тик.
// Поля Dir и X/Y используются только командами move и moveTo соответственно.
type Command struct {
	Kind    CommandKind     `json:"kind" yaml:"kind"`
	ActorID types.ActorID   `json:"actorId" yaml:"actorId"`
	Dir     enums.Direction `json:"dir,omitempty" yaml:"dir,omitempty"`
	X       int             `json:"x,omitempty" yaml:"x,omitempty"`
	Y       int             `json:"y,omitempty" yaml:"y,omitempty"`
}

func MoveCommand(actor types.ActorID, dir enums.Direction) Command {
	return Command{Kind: CommandMove, ActorID: actor, Dir: dir}
}

func MoveToCommand(actor types.ActorID, x, y int) Command {
	return Command{Kind: CommandMoveTo, ActorID: actor, X: x, Y: y}
}

func MineCommand(actor types.ActorID) Command {
	return Command{Kind: CommandMine, ActorID: actor}
}

func OpenCommand(actor types.ActorID) Command {
	return Command{Kind: CommandOpen, ActorID: actor}
}

func AttackCommand(actor types.ActorID) Command {
	return Command{Kind: CommandAttack, ActorID: actor}
}

func PickupCommand(actor types.ActorID) Command {
	return Command{Kind: CommandPickup, ActorID: actor}
}

func WaitCommand(actor types.ActorID) Command {
	return Command{Kind: CommandWait, ActorID: actor}
}

// Target возвращает цель moveTo в виде Position.
func (c Command) Target() Position {
	return Position{X: c.X, Y: c.Y}
}

// Validate проверяет форму команды (не её выполнимость в мире).
func (c Command) Validate() error {
	if c.Kind == CommandUnknown {
		return errors.New("unknown command kind")
	}
	if c.ActorID.IsNil() {
		return fmt.Errorf("%s: actorId is required", c.Kind)
	}
	if c.Kind == CommandMove && !c.Dir.IsValid() {
		return fmt.Errorf("move: invalid direction %q", c.Dir)
	}
	return nil
}
