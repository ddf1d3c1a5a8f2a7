package core

// RangeBand maps a distance interval [Min, Max) in tiles to an aim modifier.
type RangeBand struct {
	Min float64
	Max float64
	Mod int
}

// WeaponSpec is an immutable weapon blueprint.
type WeaponSpec struct {
	Key                 string
	Name                string
	AimBonus            int
	BaseCrit            int
	RangeBands          []RangeBand
	DmgMin              int
	DmgMax              int
	CritBonusDamage     int
	GrazeMultiplier     float64
	MagSize             int
	CritPointBlankBonus int
}

// Weapon is a spec plus its current magazine state.
type Weapon struct {
	Spec WeaponSpec
	Ammo int
}

// CanFire reports whether a round is available.
func (w *Weapon) CanFire() bool {
	return w.Ammo > 0
}

// ConsumeRound spends one round, never going below zero.
func (w *Weapon) ConsumeRound() {
	if w.Ammo > 0 {
		w.Ammo--
	}
}

// Reload refills the magazine.
func (w *Weapon) Reload() {
	w.Ammo = w.Spec.MagSize
}

// defaultRangeBands suit a mid-range rifle: bonus up close, falloff far out.
func defaultRangeBands() []RangeBand {
	return []RangeBand{
		{Min: 0, Max: 2, Mod: +10},
		{Min: 2, Max: 8, Mod: 0},
		{Min: 8, Max: 12, Mod: -10},
		{Min: 12, Max: 999, Mod: -25},
	}
}

// AssaultRifleSpec returns the standard rifle blueprint.
func AssaultRifleSpec() WeaponSpec {
	return WeaponSpec{
		Key:                 "assault_rifle",
		Name:                "Assault Rifle",
		AimBonus:            0,
		BaseCrit:            12,
		RangeBands:          defaultRangeBands(),
		DmgMin:              3,
		DmgMax:              5,
		CritBonusDamage:     2,
		GrazeMultiplier:     0.5,
		MagSize:             5,
		CritPointBlankBonus: 15,
	}
}

// ShotgunSpec returns the shotgun blueprint: brutal in the face, useless at
// range.
func ShotgunSpec() WeaponSpec {
	return WeaponSpec{
		Key:      "shotgun",
		Name:     "Shotgun",
		AimBonus: -5,
		BaseCrit: 20,
		RangeBands: []RangeBand{
			{Min: 0, Max: 2, Mod: +20},
			{Min: 2, Max: 6, Mod: +5},
			{Min: 6, Max: 9, Mod: -20},
			{Min: 9, Max: 999, Mod: -45},
		},
		DmgMin:              4,
		DmgMax:              6,
		CritBonusDamage:     3,
		GrazeMultiplier:     0.5,
		MagSize:             4,
		CritPointBlankBonus: 25,
	}
}

// weaponIndex maps keys to blueprints.
var weaponIndex = map[string]func() WeaponSpec{
	"assault_rifle": AssaultRifleSpec,
	"shotgun":       ShotgunSpec,
}

// NewWeapon creates a loaded weapon by key, falling back to the assault
// rifle for unknown keys.
func NewWeapon(key string) *Weapon {
	f, ok := weaponIndex[key]
	if !ok {
		f = AssaultRifleSpec
	}
	spec := f()
	return &Weapon{Spec: spec, Ammo: spec.MagSize}
}
