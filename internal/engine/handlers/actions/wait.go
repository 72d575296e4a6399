package actions

import (
	"github.com/aravasio/simworld/internal/engine/handlers"
)

// HandleWait всегда успешна и ничего не меняет.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(ctx), nil
}
