package systems

import (
	"github.com/aravasio/simworld/internal/domain"
)

// Outcome - результат правила: запланированные мутации или причина отказа.
// Правила ничего не применяют, они только планируют.
type Outcome struct {
	Mutations []domain.Mutation
	Reason    domain.Reason
}

func (o Outcome) OK() bool {
	return o.Reason == domain.ReasonNone
}

func fail(reason domain.Reason) Outcome {
	return Outcome{Reason: reason}
}

// dropContents выкладывает всё содержимое контейнера в клетку at.
func dropContents(contents []domain.ContentsEntry, at domain.Position) []domain.Mutation {
	out := make([]domain.Mutation, 0, len(contents))
	for _, entry := range contents {
		out = append(out, domain.PositionSetMutation(entry.ItemID, at))
	}
	return out
}
