package engine

import (
	"errors"
	"fmt"

	"github.com/aravasio/simworld/internal/actors"
	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
)

var (
	// ErrSpawnCollision - спавн в уже занятый ID. Значит, NextActorID отстал.
	ErrSpawnCollision = errors.New("spawned actor id already in use")
	// ErrBadMutation - вид мутации не совпадает с её данными.
	ErrBadMutation = errors.New("malformed mutation")
)

// apply сворачивает все мутации тика в одну рабочую копию хранилища.
//
// В дифф попадают только реально применённые перемещения, добавления и удаления.
// Мутация к уже удалённому актору молча ничего не делает.
func apply(base *actors.Store, muts []domain.Mutation, diff *domain.Diff) (*actors.Store, error) {
	txn := base.Edit()

	for _, m := range muts {
		id := m.ActorID
		switch p := m.Payload.(type) {
		case domain.MovePayload:
			if m.Kind != domain.MutationActorMoved {
				return nil, badMutation(m)
			}
			if txn.SetPosition(id, p.To) {
				diff.ActorMoves = append(diff.ActorMoves, domain.ActorMove{ActorID: id, From: p.From, To: p.To})
			}

		case domain.PositionPayload:
			if m.Kind != domain.MutationPositionSet {
				return nil, badMutation(m)
			}
			txn.PlacePosition(id, p.Position)

		case domain.SpawnPayload:
			if m.Kind != domain.MutationActorAdded {
				return nil, badMutation(m)
			}
			if txn.Store().Exists(id) {
				return nil, fmt.Errorf("spawn %s: %w", id, ErrSpawnCollision)
			}
			if err := txn.Insert(spawnActor(id, p)); err != nil {
				return nil, fmt.Errorf("spawn %s: %w", id, err)
			}
			diff.ActorsAdded = append(diff.ActorsAdded, domain.ActorAdded{
				ActorID: id, X: p.Position.X, Y: p.Position.Y, Glyph: p.Glyph,
			})

		case domain.RenderablePayload:
			txn.SetRenderable(id, p.Renderable)

		case domain.ContentsPayload:
			txn.SetContents(id, p.Contents)

		case domain.HitPointsPayload:
			txn.SetHitPoints(id, p.HitPoints)

		case domain.VitalsPayload:
			txn.SetVitals(id, p.Vitals)

		case domain.PathPayload:
			txn.SetPath(id, p.Path)

		case nil:
			switch m.Kind {
			case domain.MutationActorRemoved:
				if txn.Store().Exists(id) {
					txn.Remove(id)
					diff.ActorsRemoved = append(diff.ActorsRemoved, id)
				}
			case domain.MutationPositionCleared:
				txn.ClearPosition(id)
			default:
				return nil, badMutation(m)
			}

		default:
			return nil, badMutation(m)
		}
	}

	return txn.Commit(), nil
}

func badMutation(m domain.Mutation) error {
	return fmt.Errorf("%s for %s: %w", m.Kind, m.ActorID, ErrBadMutation)
}

// spawnActor собирает актора из данных спавна.
func spawnActor(id types.ActorID, p domain.SpawnPayload) actors.Actor {
	pos := p.Position
	a := actors.Actor{
		ID:          id,
		Kind:        p.Kind,
		Position:    &pos,
		Renderable:  &domain.Renderable{Glyph: p.Glyph},
		Passability: &domain.Passability{AllowsPassThrough: p.PassThrough},
	}
	if len(p.Tags) > 0 {
		a.Tags = append([]string(nil), p.Tags...)
	}
	return a
}
