package enka

import (
	"fmt"
	"sort"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/mark"
)

// Artifacts extracts the equipped artifacts of an avatar in slot order.
// Pieces with an unknown equip type are skipped with a warning.
func Artifacts(a AvatarInfo) ([]mark.RawArtifact, []error) {
	var out []mark.RawArtifact
	var warns []error

	for _, it := range a.EquipList {
		if it.Flat.ItemType != "ITEM_RELIQUARY" {
			continue
		}
		slot, ok := equipTypeToSlot(it.Flat.EquipType)
		if !ok {
			warns = append(warns, fmt.Errorf("avatar %d: artifact %d has unknown equip type %q", a.AvatarID, it.ItemID, it.Flat.EquipType))
			continue
		}

		raw := mark.RawArtifact{Slot: slot}
		if ms := it.Flat.ReliquaryMainstat; ms != nil {
			r := mark.PairRecord(fightPropTitle(ms.MainPropID), ms.StatValue)
			raw.Main = &r
		}
		for _, sub := range it.Flat.ReliquarySubstats {
			title := fightPropTitle(sub.AppendPropID)
			if title == "" {
				warns = append(warns, fmt.Errorf("avatar %d: unknown substat prop %s", a.AvatarID, sub.AppendPropID))
				continue
			}
			raw.Subs = append(raw.Subs, mark.PairRecord(title, sub.StatValue))
		}
		out = append(out, raw)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, warns
}

func equipTypeToSlot(equipType string) (domain.Slot, bool) {
	switch equipType {
	case "EQUIP_BRACER":
		return domain.SlotFlower, true
	case "EQUIP_NECKLACE":
		return domain.SlotPlume, true
	case "EQUIP_SHOES":
		return domain.SlotSands, true
	case "EQUIP_RING":
		return domain.SlotGoblet, true
	case "EQUIP_DRESS":
		return domain.SlotCirclet, true
	default:
		return 0, false
	}
}
