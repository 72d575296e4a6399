package domain

import (
	"strings"

	"github.com/aravasio/simworld/internal/core/types"
)

// --- КОМПОНЕНТЫ ---
// Компоненты - чистые значения. Хранилище акторов держит их в отдельных
// картах по ID; отсутствие ключа означает отсутствие компонента.

// Renderable - визуализация. Симуляция знает только идентификатор глифа.
type Renderable struct {
	Glyph types.GlyphID `json:"glyphId" yaml:"glyph"`
}

// HitPoints - очки здоровья разрушаемых объектов (камни, сундуки) и существ.
type HitPoints struct {
	HP    int `json:"hp" yaml:"hp"`
	MaxHP int `json:"maxHp" yaml:"maxHp"`
}

// ManaPoints - мана существа.
type ManaPoints struct {
	MP    int `json:"mp" yaml:"mp"`
	MaxMP int `json:"maxMp" yaml:"maxMp"`
}

// StaminaPoints - выносливость существа.
type StaminaPoints struct {
	Stamina    int `json:"stamina" yaml:"stamina"`
	MaxStamina int `json:"maxStamina" yaml:"maxStamina"`
}

// Vitals - ресурсы существа. Обязателен для Kind == "creature".
type Vitals struct {
	HitPoints     HitPoints     `json:"hitPoints" yaml:"hitPoints"`
	ManaPoints    ManaPoints    `json:"manaPoints" yaml:"manaPoints"`
	StaminaPoints StaminaPoints `json:"staminaPoints" yaml:"staminaPoints"`
}

// NewVitals заполняет все три пула как полные (текущее = максимум).
func NewVitals(hp, mp, stamina int) Vitals {
	return Vitals{
		HitPoints:     HitPoints{HP: hp, MaxHP: hp},
		ManaPoints:    ManaPoints{MP: mp, MaxMP: mp},
		StaminaPoints: StaminaPoints{Stamina: stamina, MaxStamina: stamina},
	}
}

// FullHitPoints - здоровье с HP == MaxHP.
func FullHitPoints(hp int) HitPoints {
	return HitPoints{HP: hp, MaxHP: hp}
}

// LockState - замок контейнера.
type LockState struct {
	IsLocked bool `json:"isLocked" yaml:"isLocked"`
}

// Stackable - предмет-стопка с количеством.
type Stackable struct {
	Count int `json:"count" yaml:"count"`
}

// Passability - могут ли другие акторы стоять в той же клетке.
type Passability struct {
	AllowsPassThrough bool `json:"allowsPassThrough" yaml:"allowsPassThrough"`
}

// ContentsKind - вид записи в содержимом контейнера/инвентаря.
type ContentsKind uint8

const (
	ContentsUnknown ContentsKind = iota
	ContentsStack
	ContentsSingle
)

var contentsKindToString = map[ContentsKind]string{
	ContentsStack:  "stack",
	ContentsSingle: "single",
}

var contentsKindStringToType = map[string]ContentsKind{
	"stack":  ContentsStack,
	"single": ContentsSingle,
}

func (k ContentsKind) String() string {
	if val, ok := contentsKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseContentsKind разбирает "stack"/"single" без учёта регистра.
func ParseContentsKind(s string) ContentsKind {
	if val, ok := contentsKindStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return ContentsUnknown
}

func (k ContentsKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ContentsKind) UnmarshalText(data []byte) error {
	*k = ParseContentsKind(string(data))
	return nil
}

// ContentsEntry - ссылка на актор-предмет внутри контейнера или инвентаря.
// У такого предмета нет Position: он существует только как ссылка.
type ContentsEntry struct {
	Kind   ContentsKind  `json:"kind" yaml:"kind"`
	ItemID types.ActorID `json:"itemId" yaml:"itemId"`
}
