package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
)

var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported replay version")
	ErrCorruptHeader      = errors.New("corrupt replay header")
)

// maxPrealloc - потолок предвыделения под команды: счётчик из файла не доверенный.
const maxPrealloc = 4096

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBinary(f)
}

// ReadBinary читает журнал, записанный WriteBinary.
func ReadBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version2 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version2)
	}
	if header.ActionCount < 0 || header.Ticks < 0 {
		return nil, fmt.Errorf("%w: actions %d, ticks %d", ErrCorruptHeader, header.ActionCount, header.Ticks)
	}

	name := make([]byte, header.ScenarioLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("failed to read scenario name: %w", err)
	}

	session := &domain.ReplaySession{
		Scenario:  string(name),
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Ticks:     int(header.Ticks),
		Rules: domain.ReplayRules{
			RandomWalkOnIdle: header.RandomWalk != 0,
			AttackDamage:     int(header.AttackDmg),
			MineDropMax:      int(header.MineDropMax),
		},
		Actions: make([]domain.ReplayAction, 0, min(int(header.ActionCount), maxPrealloc)),
	}

	// 2. Читаем команды. Врущий счётчик упрётся в EOF.
	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read action %d: %w", i, err)
		}
		session.Actions = append(session.Actions, domain.ReplayAction{
			Tick: int(rec.Tick),
			Command: domain.Command{
				Kind:    domain.CommandKind(rec.Kind),
				ActorID: types.ActorID(rec.ActorID),
				Dir:     enums.Direction(rec.Dir),
				X:       int(rec.X),
				Y:       int(rec.Y),
			},
		})
	}

	return session, nil
}
