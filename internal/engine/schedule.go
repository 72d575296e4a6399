package engine

import (
	"container/heap"

	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/pkg/logger"
)

// Schedule - сценарий команд по тикам. Реализует CommandSource.
type Schedule struct {
	queue ScheduleQueue
	seq   int
}

func NewSchedule() *Schedule {
	return &Schedule{queue: make(ScheduleQueue, 0)}
}

// ScheduleFromReplay раскладывает журнал обратно по тикам.
func ScheduleFromReplay(session *domain.ReplaySession) *Schedule {
	s := NewSchedule()
	for _, a := range session.Actions {
		s.Add(a.Tick, a.Command)
	}
	return s
}

// Add ставит команду на тик. Команды одного тика сохраняют порядок добавления.
func (s *Schedule) Add(tick int, cmds ...domain.Command) {
	for _, cmd := range cmds {
		heap.Push(&s.queue, &ScheduledItem{Command: cmd, Tick: tick, Seq: s.seq})
		s.seq++
	}
}

// PeekNext returns the next scheduled command, without removing it.
// nil, если очередь пуста.
func (s *Schedule) PeekNext() *ScheduledItem {
	if s.queue.Len() == 0 {
		return nil
	}
	return s.queue[0]
}

// CommandsFor забирает все команды тика. Команды прошедших тиков отбрасываются.
func (s *Schedule) CommandsFor(tick int) []domain.Command {
	var out []domain.Command
	for next := s.PeekNext(); next != nil && next.Tick <= tick; next = s.PeekNext() {
		item := heap.Pop(&s.queue).(*ScheduledItem)
		if item.Tick < tick {
			logger.Log.WithField("component", "schedule").
				WithField("tick", item.Tick).
				WithField("kind", item.Command.Kind).
				Warn("Dropping command scheduled for a past tick")
			continue
		}
		out = append(out, item.Command)
	}
	return out
}

func (s *Schedule) Len() int {
	return s.queue.Len()
}

// LastTick - тик последней команды; -1, если пусто.
func (s *Schedule) LastTick() int {
	last := -1
	for _, item := range s.queue {
		if item.Tick > last {
			last = item.Tick
		}
	}
	return last
}
