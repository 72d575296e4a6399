package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
)

func sampleSession() *domain.ReplaySession {
	return &domain.ReplaySession{
		Scenario:  "default",
		Seed:      42,
		Timestamp: 1700000000,
		Rules:     domain.ReplayRules{RandomWalkOnIdle: true, AttackDamage: 2, MineDropMax: 3},
		Ticks:     12,
		Actions: []domain.ReplayAction{
			{Tick: 0, Command: domain.MoveToCommand(1, 6, 4)},
			{Tick: 0, Command: domain.MineCommand(2)},
			{Tick: 3, Command: domain.MoveCommand(2, enums.West)},
		},
	}
}

func TestBinaryReplay(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, sampleSession()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := string(buf.Bytes()[:4]); got != MagicHeader {
		t.Fatalf("magic = %q", got)
	}

	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, sampleSession()) {
		t.Errorf("session mismatch:\n got %+v\nwant %+v", got, sampleSession())
	}
}

func TestReadBinaryRejectsGarbage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{"Bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, ErrInvalidMagic},
		{"Future version", func(b []byte) []byte { b[4] = 9; return b }, ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteBinary(&buf, sampleSession()); err != nil {
				t.Fatal(err)
			}
			_, err := ReadBinary(bytes.NewReader(tt.mutate(buf.Bytes())))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	headerOnly := func(mutate func(*ReplayFileHeader)) []byte {
		h := ReplayFileHeader{Version: Version2, Seed: 1}
		copy(h.Magic[:], MagicHeader)
		mutate(&h)
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	t.Run("Huge action count", func(t *testing.T) {
		data := headerOnly(func(h *ReplayFileHeader) { h.ActionCount = math.MaxInt32 })
		if _, err := ReadBinary(bytes.NewReader(data)); err == nil {
			t.Error("lying action count must fail, not allocate")
		}
	})

	t.Run("Negative counters", func(t *testing.T) {
		data := headerOnly(func(h *ReplayFileHeader) { h.Ticks = -1 })
		if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrCorruptHeader) {
			t.Errorf("err = %v, want ErrCorruptHeader", err)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		var buf bytes.Buffer
		_ = WriteBinary(&buf, sampleSession())
		if _, err := ReadBinary(bytes.NewReader(buf.Bytes()[:buf.Len()-3])); err == nil {
			t.Error("truncated file must fail")
		}
	})
}

func TestReplayServiceSaveLoad(t *testing.T) {
	svc := NewReplayService(t.TempDir())
	path, err := svc.Save(sampleSession())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := svc.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CommandsAt(0)[1].Kind != domain.CommandMine || got.LastTick() != 3 || got.TickCount() != 12 {
		t.Errorf("unexpected session %+v", got)
	}
}
