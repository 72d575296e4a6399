// Package rng реализует детерминированный генератор без скрытого состояния.
//
// Каждый вызов принимает зерно и возвращает значение вместе со следующим
// зерном. Вызывающий обязан передать возвращённое зерно дальше: одно и то же
// зерно не должно использоваться для двух разных бросков в пределах тика.
package rng

import (
	"hash/fnv"
)

// Seed - 32-битное состояние генератора.
type Seed uint32

// twoPow32 - делитель для перевода uint32 в [0,1).
const twoPow32 = 4294967296.0

// Advance - шаг mulberry32. Чистая функция: одинаковый вход даёт одинаковый выход.
func Advance(seed Seed) Seed {
	t := uint32(seed) + 0x6d2b79f5
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return Seed(t ^ (t >> 14))
}

// Float возвращает значение в [0,1) и следующее зерно.
func Float(seed Seed) (float64, Seed) {
	next := Advance(seed)
	return float64(next) / twoPow32, next
}

// Int возвращает значение в [0,bound) и следующее зерно.
// При bound <= 0 значение всегда 0, но зерно всё равно продвигается.
func Int(seed Seed, bound int) (int, Seed) {
	v, next := Float(seed)
	if bound <= 0 {
		return 0, next
	}
	n := int(v * float64(bound))
	if n >= bound {
		n = bound - 1
	}
	return n, next
}

// Range возвращает значение в [min,max] включительно.
func Range(seed Seed, min, max int) (int, Seed) {
	if max < min {
		min, max = max, min
	}
	n, next := Int(seed, max-min+1)
	return min + n, next
}

// FromString выводит зерно из произвольной строки (FNV-1a).
// Удобно для именованных сценариев: "--seed-name cave-1".
func FromString(label string) Seed {
	hasher := fnv.New32a()
	hasher.Write([]byte(label))
	return Seed(hasher.Sum32())
}
