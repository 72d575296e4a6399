package types

import (
	"fmt"
	"strconv"
)

// ActorID - 32-битный идентификатор актора.
//
// ActorID является value-type: дешёвое копирование, сравнение и
// использование в качестве ключа карт компонентов.
//
// Идентификаторы выдаются монотонным счётчиком состояния (NextActorID)
// и никогда не переиспользуются в рамках одного прогона симуляции.
type ActorID uint32

// NilActorID - нулевой идентификатор.
//
// Используется как аналог nil, когда актор отсутствует. Аллокатор
// никогда не выдаёт этот идентификатор.
const NilActorID ActorID = 0

// IsNil проверяет, является ли идентификатор нулевым.
func (id ActorID) IsNil() bool {
	return id == NilActorID
}

// Next возвращает следующий идентификатор аллокатора.
func (id ActorID) Next() ActorID {
	return id + 1
}

// String возвращает человекочитаемое представление для логов.
func (id ActorID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("#%d", uint32(id))
}

// MarshalText сериализует ActorID как десятичное число.
// Нужен для использования ActorID в качестве ключей JSON/YAML карт.
func (id ActorID) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(id), 10)), nil
}

// UnmarshalText разбирает десятичное представление ActorID.
func (id *ActorID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = NilActorID
		return nil
	}

	v, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid actor id %q: %w", data, err)
	}

	*id = ActorID(v)
	return nil
}
