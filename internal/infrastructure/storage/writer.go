package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aravasio/simworld/internal/domain"
)

const (
	MagicHeader string = `SWRP` // 4 байта
	// Version2 добавил в заголовок правила и число тиков прогона.
	Version2 uint32 = 2
)

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        uint32  // 4 байта
	Timestamp   int64   // 8 байт
	Ticks       int32   // 4 байта
	RandomWalk  uint8   // 1 байт, 0/1
	AttackDmg   int32   // 4 байта
	MineDropMax int32   // 4 байта
	ScenarioLen uint16  // 2 байта
	ActionCount int32   // 4 байта
}

// ActionRecord - одна команда журнала фиксированного размера.
type ActionRecord struct {
	Tick    int32  // 4
	Kind    uint8  // 1
	Dir     uint8  // 1
	ActorID uint32 // 4
	X       int32  // 4
	Y       int32  // 4
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет журнал в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}

	filename := fmt.Sprintf("replay_%s_%d_%d.swrp", session.Scenario, session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

// WriteBinary сериализует журнал в w.
func WriteBinary(w io.Writer, s *domain.ReplaySession) error {
	name := []byte(s.Scenario)
	if len(name) > 65535 {
		return fmt.Errorf("scenario name too long: %d", len(name))
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:     Version2,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		Ticks:       int32(s.Ticks),
		AttackDmg:   int32(s.Rules.AttackDamage),
		MineDropMax: int32(s.Rules.MineDropMax),
		ScenarioLen: uint16(len(name)),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte
	if s.Rules.RandomWalkOnIdle {
		header.RandomWalk = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(name); err != nil {
		return fmt.Errorf("failed to write scenario name: %w", err)
	}

	// 2. Пишем команды
	for _, act := range s.Actions {
		cmd := act.Command
		rec := ActionRecord{
			Tick:    int32(act.Tick),
			Kind:    uint8(cmd.Kind),
			Dir:     uint8(cmd.Dir),
			ActorID: uint32(cmd.ActorID),
			X:       int32(cmd.X),
			Y:       int32(cmd.Y),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write action: %w", err)
		}
	}

	return nil
}
