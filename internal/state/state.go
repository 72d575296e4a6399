// Package state описывает полное состояние симуляции на одном тике.
package state

import (
	"errors"
	"fmt"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/world"
)

var (
	ErrNoWorld  = errors.New("state has no world")
	ErrNoActors = errors.New("state has no actor store")
	// ErrIDCounterBehind - NextActorID не больше уже занятого ID: следующий спавн переиспользует ID.
	ErrIDCounterBehind = errors.New("next actor id is not above existing ids")
)

// GameState - неизменяемый снимок. Step возвращает новый, старый остаётся валидным.
type GameState struct {
	World       *world.Grid
	Actors      *actors.Store
	Tick        int
	NextActorID types.ActorID
}

// New собирает начальное состояние. NextActorID выбирается выше всех занятых ID.
func New(w *world.Grid, a *actors.Store) GameState {
	if a == nil {
		a = actors.New()
	}
	next := types.ActorID(1)
	a.Each(func(id types.ActorID) bool {
		if id >= next {
			next = id.Next()
		}
		return true
	})
	return GameState{World: w, Actors: a, NextActorID: next}
}

// Validate проверяет инварианты, которые должен соблюдать поставщик сценария.
func (s GameState) Validate() error {
	if s.World == nil {
		return ErrNoWorld
	}
	if s.Actors == nil {
		return ErrNoActors
	}

	var err error
	s.Actors.Each(func(id types.ActorID) bool {
		if id >= s.NextActorID {
			err = fmt.Errorf("actor %s vs next %s: %w", id, s.NextActorID, ErrIDCounterBehind)
			return false
		}
		return true
	})
	return err
}
