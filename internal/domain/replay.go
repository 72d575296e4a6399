package domain

// ReplayAction - одна команда из журнала с тиком, на котором она была подана
type ReplayAction struct {
	Tick    int     `json:"tick"`
	Command Command `json:"command"`
}

// ReplayRules - параметры правил, с которыми шёл прогон.
type ReplayRules struct {
	RandomWalkOnIdle bool `json:"randomWalkOnIdle"`
	AttackDamage     int  `json:"attackDamage"`
	MineDropMax      int  `json:"mineDropMax"`
}

// ReplaySession - полная запись прогона: сценарий, стартовое зерно, правила,
// число сделанных тиков и все команды.
// Состояние мира не пишется: оно восстанавливается повторным прогоном.
type ReplaySession struct {
	Scenario  string         `json:"scenario"`
	Seed      uint32         `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Rules     ReplayRules    `json:"rules"`
	Ticks     int            `json:"ticks"`
	Actions   []ReplayAction `json:"actions"`
}

// CommandsAt возвращает команды тика в исходном порядке.
func (s *ReplaySession) CommandsAt(tick int) []Command {
	var out []Command
	for _, a := range s.Actions {
		if a.Tick == tick {
			out = append(out, a.Command)
		}
	}
	return out
}

// TickCount - сколько тиков воспроизводить: записанное число, а для журнала
// без него - до последнего тика с командами включительно.
func (s *ReplaySession) TickCount() int {
	if s.Ticks > 0 {
		return s.Ticks
	}
	return s.LastTick() + 1
}

// LastTick - последний тик, на котором были команды; -1 для пустого журнала.
func (s *ReplaySession) LastTick() int {
	last := -1
	for _, a := range s.Actions {
		if a.Tick > last {
			last = a.Tick
		}
	}
	return last
}
