package core

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Tuning collects the combat balance knobs. Values are overridable from the
// config layer; DefaultTuning is the baseline.
type Tuning struct {
	BaseAim              int
	HitClampMin          int
	HitClampMax          int
	GrazeBand            int
	FlankBonus           int
	CoverHalfPenalty     int
	CoverFullPenalty     int
	CritFlankBonus       int
	CritHalfCoverPenalty int
	CritFullCoverPenalty int
}

// DefaultTuning returns the baseline combat balance.
func DefaultTuning() Tuning {
	return Tuning{
		BaseAim:              65,
		HitClampMin:          5,
		HitClampMax:          95,
		GrazeBand:            15,
		FlankBonus:           15,
		CoverHalfPenalty:     -20,
		CoverFullPenalty:     -40,
		CritFlankBonus:       15,
		CritHalfCoverPenalty: -10,
		CritFullCoverPenalty: -20,
	}
}

// clampHit restricts a hit chance to the tuning's clamp window.
func (t Tuning) clampHit(p int) int {
	if p < t.HitClampMin {
		return t.HitClampMin
	}
	if p > t.HitClampMax {
		return t.HitClampMax
	}
	return p
}

// Term is one named modifier in a hit breakdown.
type Term struct {
	Label string
	Value int
}

// HitBreakdown is the full accounting of a shot's hit chance.
type HitBreakdown struct {
	Base     int
	Terms    []Term
	Total    int
	LOS      bool
	Flanked  bool
	Cover    CoverKind
	Distance float64
}

// Text formats the breakdown for the HUD, e.g. "72% (65 base, +10 range, -3 cover)".
func (b HitBreakdown) Text() string {
	if !b.LOS {
		return "no line of fire"
	}
	pieces := []string{fmt.Sprintf("%d base", b.Base)}
	for _, t := range b.Terms {
		pieces = append(pieces, fmt.Sprintf("%+d %s", t.Value, t.Label))
	}
	return fmt.Sprintf("%d%%  (%s)", b.Total, strings.Join(pieces, ", "))
}

// rangeModifier looks up the aim modifier for a distance.
func rangeModifier(dist float64, bands []RangeBand) int {
	for _, b := range bands {
		if b.Min <= dist && dist < b.Max {
			return b.Mod
		}
	}
	return 0
}

// ComputeHit builds the hit breakdown for a shot from shooter to target:
// base aim, range band, then flank bonus or cover penalty. Without line of
// fire the total is zero and no modifiers apply.
func ComputeHit(g *Grid, tn Tuning, shooter, target Coord, baseAim int, bands []RangeBand) HitBreakdown {
	dx := float64(target.X - shooter.X)
	dy := float64(target.Y - shooter.Y)
	bd := HitBreakdown{
		Base:     baseAim,
		Distance: math.Hypot(dx, dy),
	}

	bd.LOS = LOSClear(g, shooter, target)
	if !bd.LOS {
		bd.Cover = CoverFull
		return bd
	}

	bd.Cover = CoverAgainst(g, shooter, target)
	bd.Flanked = bd.Cover == CoverNone

	total := baseAim
	if mod := rangeModifier(bd.Distance, bands); mod != 0 {
		bd.Terms = append(bd.Terms, Term{Label: "range", Value: mod})
		total += mod
	}
	switch {
	case bd.Flanked:
		if tn.FlankBonus != 0 {
			bd.Terms = append(bd.Terms, Term{Label: "flank", Value: tn.FlankBonus})
			total += tn.FlankBonus
		}
	case bd.Cover == CoverHalf:
		if tn.CoverHalfPenalty != 0 {
			bd.Terms = append(bd.Terms, Term{Label: "half cover", Value: tn.CoverHalfPenalty})
			total += tn.CoverHalfPenalty
		}
	case bd.Cover == CoverFull:
		if tn.CoverFullPenalty != 0 {
			bd.Terms = append(bd.Terms, Term{Label: "full cover", Value: tn.CoverFullPenalty})
			total += tn.CoverFullPenalty
		}
	}

	bd.Total = tn.clampHit(total)
	return bd
}

// critForContext derives the effective crit chance. Crit never exceeds the
// hit chance: you cannot crit on a miss.
func critForContext(tn Tuning, hitTotal int, flanked bool, cover CoverKind, dist float64, w *Weapon) int {
	crit := w.Spec.BaseCrit
	if flanked {
		crit += tn.CritFlankBonus
	}
	switch cover {
	case CoverHalf:
		crit += tn.CritHalfCoverPenalty
	case CoverFull:
		crit += tn.CritFullCoverPenalty
	}
	if dist < 2.0 {
		crit += w.Spec.CritPointBlankBonus
	}
	if crit < 0 {
		crit = 0
	}
	if crit > 100 {
		crit = 100
	}
	if crit > hitTotal {
		crit = hitTotal
	}
	return crit
}

// Outcome classifies a resolved shot.
type Outcome int

const (
	OutcomeBlocked Outcome = iota
	OutcomeMiss
	OutcomeGraze
	OutcomeHit
	OutcomeCrit
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMiss:
		return "miss"
	case OutcomeGraze:
		return "graze"
	case OutcomeHit:
		return "hit"
	case OutcomeCrit:
		return "crit"
	default:
		return "unknown"
	}
}

// ShotPreview holds everything the HUD shows before committing to a shot.
type ShotPreview struct {
	LOS        bool
	HitChance  int
	CritChance int
	GrazeBand  int
	Flanked    bool
	Cover      CoverKind
	Distance   float64
	Breakdown  HitBreakdown
	DmgMin     int
	DmgMax     int
	CritMin    int
	CritMax    int
	GrazeMin   int
	GrazeMax   int
}

// ShotResult records how a fired shot resolved.
type ShotResult struct {
	Outcome    Outcome
	Roll       int
	HitChance  int
	CritChance int
	GrazeBand  int
	Damage     int
	Flanked    bool
	Cover      CoverKind
	Distance   float64
}

// grazeDamage scales a base roll down to a graze, with a floor of 1.
func grazeDamage(base int, mult float64) int {
	d := int(math.Round(float64(base) * mult))
	if d < 1 {
		d = 1
	}
	return d
}

// PreviewShot computes the probabilities and damage ranges for a shot
// without rolling anything.
func PreviewShot(g *Grid, tn Tuning, shooter, target Coord, aimBonus int, w *Weapon) ShotPreview {
	baseAim := tn.BaseAim + aimBonus + w.Spec.AimBonus
	bd := ComputeHit(g, tn, shooter, target, baseAim, w.Spec.RangeBands)

	pv := ShotPreview{
		LOS:       bd.LOS,
		Flanked:   bd.Flanked,
		Cover:     bd.Cover,
		Distance:  bd.Distance,
		Breakdown: bd,
		DmgMin:    w.Spec.DmgMin,
		DmgMax:    w.Spec.DmgMax,
		CritMin:   w.Spec.DmgMin + w.Spec.CritBonusDamage,
		CritMax:   w.Spec.DmgMax + w.Spec.CritBonusDamage,
		GrazeMin:  grazeDamage(w.Spec.DmgMin, w.Spec.GrazeMultiplier),
		GrazeMax:  grazeDamage(w.Spec.DmgMax, w.Spec.GrazeMultiplier),
	}
	if !bd.LOS {
		return pv
	}

	pv.HitChance = bd.Total
	pv.CritChance = critForContext(tn, bd.Total, bd.Flanked, bd.Cover, bd.Distance, w)
	graze := tn.GrazeBand
	if graze > 100-bd.Total {
		graze = 100 - bd.Total
	}
	if graze < 0 {
		graze = 0
	}
	pv.GrazeBand = graze
	return pv
}

// ResolveShot rolls a shot using the injected RNG. The roll ladder is
// crit -> hit -> graze -> miss; a single d100 decides which band applies.
func ResolveShot(g *Grid, tn Tuning, rng *rand.Rand, shooter, target Coord, aimBonus int, w *Weapon) ShotResult {
	pv := PreviewShot(g, tn, shooter, target, aimBonus, w)
	if !pv.LOS {
		return ShotResult{
			Outcome:  OutcomeBlocked,
			Cover:    CoverFull,
			Distance: pv.Distance,
		}
	}

	roll := rng.Intn(100) + 1
	base := w.Spec.DmgMin + rng.Intn(w.Spec.DmgMax-w.Spec.DmgMin+1)

	res := ShotResult{
		Roll:      roll,
		HitChance: pv.HitChance,
		CritChance: pv.CritChance,
		GrazeBand: pv.GrazeBand,
		Flanked:   pv.Flanked,
		Cover:     pv.Cover,
		Distance:  pv.Distance,
	}
	switch {
	case roll <= pv.CritChance:
		res.Outcome = OutcomeCrit
		res.Damage = base + w.Spec.CritBonusDamage
	case roll <= pv.HitChance:
		res.Outcome = OutcomeHit
		res.Damage = base
	case roll <= pv.HitChance+pv.GrazeBand:
		res.Outcome = OutcomeGraze
		res.Damage = grazeDamage(base, w.Spec.GrazeMultiplier)
	default:
		res.Outcome = OutcomeMiss
	}
	return res
}
