package domain

import "fmt"

// AttrKey identifies an artifact attribute kind.
type AttrKey string

const (
	KeyNone      AttrKey = ""
	HPFlat       AttrKey = "hpFlat"
	HPPct        AttrKey = "hpPct"
	ATKFlat      AttrKey = "atkFlat"
	ATKPct       AttrKey = "atkPct"
	DEFFlat      AttrKey = "defFlat"
	DEFPct       AttrKey = "defPct"
	Mastery      AttrKey = "mastery"
	Recharge     AttrKey = "recharge"
	CritRate     AttrKey = "critRate"
	CritDmg      AttrKey = "critDmg"
	HealBonus    AttrKey = "healBonus"
	ElementalDmg AttrKey = "elementalDmg"
	PhysicalDmg  AttrKey = "physicalDmg"
)

// AllKeys lists every known attribute kind in catalog order.
var AllKeys = []AttrKey{
	HPFlat, HPPct, ATKFlat, ATKPct, DEFFlat, DEFPct,
	Mastery, Recharge, CritRate, CritDmg, HealBonus, ElementalDmg, PhysicalDmg,
}

func (k AttrKey) Valid() bool {
	for _, v := range AllKeys {
		if v == k {
			return true
		}
	}
	return false
}

// Slot is an equipment position, 1 (flower) through 5 (circlet).
type Slot int

const (
	SlotFlower  Slot = 1
	SlotPlume   Slot = 2
	SlotSands   Slot = 3
	SlotGoblet  Slot = 4
	SlotCirclet Slot = 5
)

var Slots = []Slot{SlotFlower, SlotPlume, SlotSands, SlotGoblet, SlotCirclet}

func (s Slot) Valid() bool { return s >= SlotFlower && s <= SlotCirclet }

// FreeMain reports whether the slot lets the main stat vary.
func (s Slot) FreeMain() bool { return s >= SlotSands && s <= SlotCirclet }

func (s Slot) String() string {
	switch s {
	case SlotFlower:
		return "flower"
	case SlotPlume:
		return "plume"
	case SlotSands:
		return "sands"
	case SlotGoblet:
		return "goblet"
	case SlotCirclet:
		return "circlet"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// FixedMain returns the main stat of slots that do not let it vary.
func (s Slot) FixedMain() (AttrKey, bool) {
	switch s {
	case SlotFlower:
		return HPFlat, true
	case SlotPlume:
		return ATKFlat, true
	default:
		return KeyNone, false
	}
}

// RollRange is the per-roll increment window of a substat.
type RollRange struct {
	Value    float64 `yaml:"value" validate:"gt=0"`
	ValueMin float64 `yaml:"valueMin" validate:"gt=0,ltefield=Value"`
}

// RollEstimate is the estimated number of enhancement rolls behind a substat value.
// High and Low mark that more (respectively fewer) rolls are also possible.
type RollEstimate struct {
	Count int
	High  bool
	Low   bool
}

// Entry is a normalized artifact attribute.
type Entry struct {
	Title   string
	Key     AttrKey
	Value   float64
	Display string
	Rolls   *RollEstimate
	Mark    *float64
}

// Weights is a character's stat priority. Missing keys weigh 0.
type Weights map[AttrKey]float64

func (w Weights) Get(k AttrKey) float64 {
	if w == nil || k == KeyNone {
		return 0
	}
	return w[k]
}

// MaxMark holds the best achievable mark per slot. Main is zero for slots
// with a fixed main stat.
type MaxMark struct {
	Totals [5]float64
	Mains  [5]float64
	// MainKeys records which main stat produced Mains, for reporting only.
	MainKeys [5]AttrKey
}

func (m MaxMark) Total(s Slot) float64 {
	if !s.Valid() {
		return 0
	}
	return m.Totals[s-1]
}

func (m MaxMark) Main(s Slot) float64 {
	if !s.Valid() {
		return 0
	}
	return m.Mains[s-1]
}

// Grade is a letter tier derived from a score.
type Grade string

const (
	GradeNone    Grade = ""
	GradeD       Grade = "D"
	GradeC       Grade = "C"
	GradeB       Grade = "B"
	GradeA       Grade = "A"
	GradeS       Grade = "S"
	GradeSS      Grade = "SS"
	GradeSSS     Grade = "SSS"
	GradeACE     Grade = "ACE"
	GradeACEPlus Grade = "ACE²"
	GradeMax     Grade = "MAX"
)

// Artifact is one scored equipment piece.
type Artifact struct {
	Slot  Slot
	Main  *Entry
	Subs  []Entry
	Score float64
	Grade Grade
	// Err is set when the artifact could not be scored; Score is 0 and Grade empty.
	Err error
}

// Summary aggregates one character's artifact set.
type Summary struct {
	Total float64
	Grade Grade
}

// ParseSlot accepts a slot number ("1".."5") or name ("flower".."circlet").
func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if s == slot.String() || s == fmt.Sprint(int(slot)) {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("unknown artifact slot %q", s)
}
