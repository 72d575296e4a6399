package engine

import (
	"github.com/aravasio/simworld/internal/domain"
)

// ScheduledItem обертка для команды в очереди приоритетов
type ScheduledItem struct {
	Command domain.Command
	Tick    int // Тик, на котором команда подаётся. Чем меньше, тем раньше.
	Seq     int // Порядок добавления: внутри тика команды идут в порядке подачи
}

// ScheduleQueue реализует heap.Interface и хранит ScheduledItems
type ScheduleQueue []*ScheduledItem

func (pq ScheduleQueue) Len() int { return len(pq) }

func (pq ScheduleQueue) Less(i, j int) bool {
	// MinHeap по (Tick, Seq)
	if pq[i].Tick != pq[j].Tick {
		return pq[i].Tick < pq[j].Tick
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq ScheduleQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *ScheduleQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*ScheduledItem))
}

func (pq *ScheduleQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	*pq = old[0 : n-1]
	return item
}
