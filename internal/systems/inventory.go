package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
)

// Open планирует открытие первого соседнего сундука: содержимое выкладывается
// в клетку сундука, сундук пустеет и меняет глиф на openGlyph.
func Open(log logrus.FieldLogger, s state.GameState, actor types.ActorID, openGlyph types.GlyphID) Outcome {
	pos, ok := s.Actors.Position(actor)
	if !ok {
		return fail(domain.ReasonMissingPosition)
	}

	chest, ok := FindAdjacentChest(s.Actors, pos, actor)
	if !ok {
		return fail(domain.ReasonNoTarget)
	}
	if lock, ok := s.Actors.Lock(chest.ID); ok && lock.IsLocked {
		return fail(domain.ReasonLocked)
	}

	contents, _ := s.Actors.Contents(chest.ID)
	muts := dropContents(contents, chest.Position)
	muts = append(muts,
		domain.ContentsMutation(chest.ID, []domain.ContentsEntry{}),
		domain.RenderableMutation(chest.ID, domain.Renderable{Glyph: openGlyph}),
	)

	log.WithFields(logrus.Fields{
		"actor_id":  actor,
		"chest_id":  chest.ID,
		"dropped":   len(contents),
	}).Debug("Chest open planned.")

	return Outcome{Mutations: muts}
}

// Pickup планирует подбор первого предмета рядом или в своей клетке.
// Предмет уходит с карты и становится записью в Contents актора.
func Pickup(log logrus.FieldLogger, s state.GameState, actor types.ActorID) Outcome {
	pos, ok := s.Actors.Position(actor)
	if !ok {
		return fail(domain.ReasonMissingPosition)
	}

	item, ok := FindAdjacentPickable(s.Actors, pos, actor)
	if !ok {
		return fail(domain.ReasonNoTarget)
	}

	entry := domain.ContentsEntry{Kind: domain.ContentsSingle, ItemID: item.ID}
	if _, stack := s.Actors.Stackable(item.ID); stack {
		entry.Kind = domain.ContentsStack
	}

	contents, _ := s.Actors.Contents(actor)
	contents = append(contents, entry)

	log.WithFields(logrus.Fields{
		"actor_id":  actor,
		"item_id":   item.ID,
		"entry":     entry.Kind,
	}).Debug("Pickup planned.")

	return Outcome{Mutations: []domain.Mutation{
		domain.ContentsMutation(actor, contents),
		domain.PositionClearedMutation(item.ID),
	}}
}
