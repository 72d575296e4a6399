package domain

// Виды акторов (компонент Kind). Список открытый: сценарии могут вводить свои.
const (
	KindCreature     = "creature"
	KindRock         = "rock"
	KindChest        = "chest"
	KindRockMaterial = "rock-material"
	KindGoldCoin     = "gold-coin"
)

// Теги
const (
	TagItem     = "item"
	TagDwarf    = "dwarf"
	TagMineable = "mineable"
)

// Параметры правил по умолчанию
const (
	DefaultAttackDamage = 1
	// MineDropMax - верхняя граница числа кусков породы из одного камня.
	MineDropMax = 5
)
