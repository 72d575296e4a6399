package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
	"github.com/aravasio/simworld/pkg/rng"
)

// MineResult - план добычи плюс продвинутые зерно и счётчик ID.
type MineResult struct {
	Outcome
	Seed        rng.Seed
	NextActorID types.ActorID
}

// MaterialSpawn - как выглядит кусок породы из камня.
func MaterialSpawn(at domain.Position) domain.SpawnPayload {
	return domain.SpawnPayload{
		Kind:        domain.KindRockMaterial,
		Position:    at,
		Glyph:       types.GlyphRockMaterial,
		Tags:        []string{domain.TagItem},
		PassThrough: true,
	}
}

// Mine разбивает первый соседний камень (targetable, Kind == "rock").
//
// Камень удаляется, в его клетке появляется 1..maxDrops кусков породы,
// каждый со свежим ID из nextID. Если первая соседняя цель - не камень,
// это no_target, а не отдельная причина.
// Зерно тратится только при успешной добыче.
func Mine(log logrus.FieldLogger, s state.GameState, miner types.ActorID, seed rng.Seed, nextID types.ActorID, maxDrops int) MineResult {
	res := MineResult{Seed: seed, NextActorID: nextID}

	pos, ok := s.Actors.Position(miner)
	if !ok {
		res.Outcome = fail(domain.ReasonMissingPosition)
		return res
	}

	rock, ok := FindAdjacentTargetable(s.Actors, pos, miner)
	if !ok || !s.Actors.IsKind(rock.ID, domain.KindRock) {
		res.Outcome = fail(domain.ReasonNoTarget)
		return res
	}

	if maxDrops < 1 {
		maxDrops = 1
	}
	roll, next := rng.Int(seed, maxDrops)
	count := roll + 1

	muts := make([]domain.Mutation, 0, count+1)
	muts = append(muts, domain.RemoveMutation(rock.ID))
	id := nextID
	for i := 0; i < count; i++ {
		muts = append(muts, domain.AddMutation(id, MaterialSpawn(rock.Position)))
		id = id.Next()
	}

	log.WithFields(logrus.Fields{
		"miner_id":  miner,
		"rock_id":   rock.ID,
		"drops":     count,
	}).Debug("Mining planned.")

	res.Outcome = Outcome{Mutations: muts}
	res.Seed = next
	res.NextActorID = id
	return res
}
