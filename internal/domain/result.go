package domain

import (
	"github.com/aravasio/simworld/internal/core/types"
)

// Status - итог обработки команды.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Reason - стабильный код причины отказа. Строки читает UI, менять нельзя.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonOutOfBounds     Reason = "out_of_bounds"
	ReasonNotWalkable     Reason = "not_walkable"
	ReasonBlocked         Reason = "blocked"
	ReasonNoPath          Reason = "no_path"
	ReasonMissingPosition Reason = "missing_position"
	ReasonNoTarget        Reason = "no_target"
	ReasonNotAttackable   Reason = "not_attackable"
	ReasonLocked          Reason = "locked"
	// ReasonInvalidCommand - команда не прошла Validate (неизвестный вид, нет направления).
	ReasonInvalidCommand Reason = "invalid_command"
)

// CommandResult - ровно один на каждую входную команду.
type CommandResult struct {
	Kind    CommandKind   `json:"kind"`
	ActorID types.ActorID `json:"actorId"`
	Status  Status        `json:"status"`
	Reason  Reason        `json:"reason,omitempty"`
}

// OK - успешный результат команды.
func OK(cmd Command) CommandResult {
	return CommandResult{Kind: cmd.Kind, ActorID: cmd.ActorID, Status: StatusOK}
}

// Fail - отказ с кодом причины.
func Fail(cmd Command, reason Reason) CommandResult {
	return CommandResult{Kind: cmd.Kind, ActorID: cmd.ActorID, Status: StatusError, Reason: reason}
}

func (r CommandResult) IsOK() bool {
	return r.Status == StatusOK
}
