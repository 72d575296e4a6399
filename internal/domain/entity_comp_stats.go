package domain

// TakeDamage возвращает здоровье после удара. HP не опускается ниже нуля,
// отрицательный урон игнорируется.
func (h HitPoints) TakeDamage(amount int) HitPoints {
	if amount < 0 {
		amount = 0
	}
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
	return h
}

// Heal лечит, не превышая MaxHP.
func (h HitPoints) Heal(amount int) HitPoints {
	if h.IsDepleted() {
		return h // Трупы не лечим
	}
	h.HP += amount
	if h.HP > h.MaxHP {
		h.HP = h.MaxHP
	}
	return h
}

// IsDepleted - здоровье закончилось.
func (h HitPoints) IsDepleted() bool {
	return h.HP <= 0
}

// TakeDamage наносит урон по Vitals.HitPoints, оставляя прочие пулы как есть.
func (v Vitals) TakeDamage(amount int) Vitals {
	v.HitPoints = v.HitPoints.TakeDamage(amount)
	return v
}

// SpendStamina тратит силы. Возвращает false, если не хватило.
func (v Vitals) SpendStamina(cost int) (Vitals, bool) {
	if v.StaminaPoints.Stamina < cost {
		return v, false
	}
	v.StaminaPoints.Stamina -= cost
	return v, true
}
