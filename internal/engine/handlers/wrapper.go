package handlers

import (
	"errors"

	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
)

// Validator - интерфейс, который могут реализовать payload'ы
type Validator interface {
	Validate() error
}

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (mine, wait, ...)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// Decoder достаёт из команды данные нужного хендлеру вида.
type Decoder[T any] func(cmd domain.Command) T

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя извлечение и Validate: невалидная команда - это invalid_command.
func WithPayload[T any](decode Decoder[T], handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context) (Result, error) {
		// 1. Распаковка
		payload := decode(ctx.Command)

		// 2. Автоматическая валидация
		if v, ok := any(payload).(Validator); ok {
			if err := v.Validate(); err != nil {
				ctx.Logger().WithError(err).WithField("actor_id", ctx.Command.ActorID).
					Debug("Command payload rejected.")
				return Rejected(ctx, domain.ReasonInvalidCommand), nil
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context) (Result, error) {
		return handler(ctx)
	}
}

// --- Payload'ы ---

var ErrInvalidDirection = errors.New("direction must be one of N, S, E, W")

// DirectionPayload - данные команды move.
type DirectionPayload struct {
	Dir enums.Direction
}

func (p DirectionPayload) Validate() error {
	if !p.Dir.IsValid() {
		return ErrInvalidDirection
	}
	return nil
}

// DecodeDirection извлекает направление из команды.
func DecodeDirection(cmd domain.Command) DirectionPayload {
	return DirectionPayload{Dir: cmd.Dir}
}

// GoalPayload - данные команды moveTo. Границы проверяет сам хендлер,
// потому что для них есть отдельная причина out_of_bounds.
type GoalPayload struct {
	Goal domain.Position
}

// DecodeGoal извлекает цель из команды.
func DecodeGoal(cmd domain.Command) GoalPayload {
	return GoalPayload{Goal: cmd.Target()}
}
