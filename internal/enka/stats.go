package enka

import (
	"github.com/genshinsim/gcsim/pkg/core/attributes"
)

// fightPropStat maps an Enka FIGHT_PROP id onto the gcsim stat type.
func fightPropStat(fightProp string) attributes.Stat {
	switch fightProp {
	case "FIGHT_PROP_HP":
		return attributes.HP
	case "FIGHT_PROP_HP_PERCENT":
		return attributes.HPP
	case "FIGHT_PROP_ATTACK":
		return attributes.ATK
	case "FIGHT_PROP_ATTACK_PERCENT":
		return attributes.ATKP
	case "FIGHT_PROP_DEFENSE":
		return attributes.DEF
	case "FIGHT_PROP_DEFENSE_PERCENT":
		return attributes.DEFP
	case "FIGHT_PROP_CHARGE_EFFICIENCY":
		return attributes.ER
	case "FIGHT_PROP_ELEMENT_MASTERY":
		return attributes.EM
	case "FIGHT_PROP_CRITICAL":
		return attributes.CR
	case "FIGHT_PROP_CRITICAL_HURT":
		return attributes.CD
	case "FIGHT_PROP_HEAL_ADD":
		return attributes.Heal
	case "FIGHT_PROP_FIRE_ADD_HURT":
		return attributes.PyroP
	case "FIGHT_PROP_ELEC_ADD_HURT":
		return attributes.ElectroP
	case "FIGHT_PROP_ICE_ADD_HURT":
		return attributes.CryoP
	case "FIGHT_PROP_WATER_ADD_HURT":
		return attributes.HydroP
	case "FIGHT_PROP_WIND_ADD_HURT":
		return attributes.AnemoP
	case "FIGHT_PROP_ROCK_ADD_HURT":
		return attributes.GeoP
	case "FIGHT_PROP_GRASS_ADD_HURT":
		return attributes.DendroP
	case "FIGHT_PROP_PHYSICAL_ADD_HURT":
		return attributes.PhyP
	default:
		return attributes.NoStat
	}
}

// statTitles holds the display titles the normalizer understands.
var statTitles = map[attributes.Stat]string{
	attributes.HP:       "HP",
	attributes.HPP:      "HP%",
	attributes.ATK:      "ATK",
	attributes.ATKP:     "ATK%",
	attributes.DEF:      "DEF",
	attributes.DEFP:     "DEF%",
	attributes.ER:       "Energy Recharge",
	attributes.EM:       "Elemental Mastery",
	attributes.CR:       "CRIT Rate",
	attributes.CD:       "CRIT DMG",
	attributes.Heal:     "Healing Bonus",
	attributes.PyroP:    "Pyro Elemental Damage Bonus",
	attributes.ElectroP: "Electro Elemental Damage Bonus",
	attributes.CryoP:    "Cryo Elemental Damage Bonus",
	attributes.HydroP:   "Hydro Elemental Damage Bonus",
	attributes.AnemoP:   "Anemo Elemental Damage Bonus",
	attributes.GeoP:     "Geo Elemental Damage Bonus",
	attributes.DendroP:  "Dendro Elemental Damage Bonus",
	attributes.PhyP:     "Physical Damage Bonus",
}

// fightPropTitle maps an Enka FIGHT_PROP id to a display title. Unknown props
// map to "".
func fightPropTitle(fightProp string) string {
	return statTitles[fightPropStat(fightProp)]
}
