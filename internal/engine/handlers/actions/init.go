package actions

import (
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine/handlers"
)

// Default возвращает таблицу хендлеров всех команд симуляции.
// Каждый вызов отдаёт новую карту: её можно дополнять, не трогая чужие таблицы.
func Default() handlers.Registry {
	return handlers.Registry{
		// Перемещение
		domain.CommandMove:   handlers.WithPayload(handlers.DecodeDirection, HandleMove),
		domain.CommandMoveTo: handlers.WithPayload(handlers.DecodeGoal, HandleMoveTo),

		// Взаимодействие с соседями
		domain.CommandMine:   handlers.WithEmptyPayload(HandleMine),
		domain.CommandOpen:   handlers.WithEmptyPayload(HandleOpen),
		domain.CommandAttack: handlers.WithEmptyPayload(HandleAttack),
		domain.CommandPickup: handlers.WithEmptyPayload(HandlePickup),

		domain.CommandWait: handlers.WithEmptyPayload(HandleWait),
	}
}
