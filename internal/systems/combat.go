package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/state"
)

// Attack планирует удар по первой соседней цели со здоровьем.
//
// Урон пишется туда, откуда взято здоровье: в HitPoints, иначе в Vitals.
// При HP == 0 цель удаляется, сундук перед этим вываливает содержимое.
func Attack(log logrus.FieldLogger, s state.GameState, attacker types.ActorID, damage int) Outcome {
	pos, ok := s.Actors.Position(attacker)
	if !ok {
		return fail(domain.ReasonMissingPosition)
	}

	target, ok := FindAdjacentAttackable(s.Actors, pos, attacker)
	if !ok {
		// Рядом есть цель, но бить нечего - это отдельная причина.
		if _, found := FindAdjacentTargetable(s.Actors, pos, attacker); found {
			return fail(domain.ReasonNotAttackable)
		}
		return fail(domain.ReasonNoTarget)
	}

	combatLogger := log.WithFields(logrus.Fields{
		"attacker_id": attacker,
		"target_id":   target.ID,
	})

	var muts []domain.Mutation
	var hpBefore, hpAfter int

	if hp, ok := s.Actors.HitPoints(target.ID); ok {
		next := hp.TakeDamage(damage)
		hpBefore, hpAfter = hp.HP, next.HP
		muts = append(muts, domain.HitPointsMutation(target.ID, next))
	} else {
		vitals, _ := s.Actors.Vitals(target.ID)
		next := vitals.TakeDamage(damage)
		hpBefore, hpAfter = vitals.HitPoints.HP, next.HitPoints.HP
		muts = append(muts, domain.VitalsMutation(target.ID, next))
	}

	destroyed := hpAfter == 0
	if destroyed {
		if s.Actors.IsKind(target.ID, domain.KindChest) {
			contents, _ := s.Actors.Contents(target.ID)
			muts = append(muts, dropContents(contents, target.Position)...)
		}
		muts = append(muts, domain.RemoveMutation(target.ID))
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":    damage,
		"hp_before": hpBefore,
		"hp_after":  hpAfter,
		"destroyed": destroyed,
	}).Debug("Attack planned.")

	return Outcome{Mutations: muts}
}
