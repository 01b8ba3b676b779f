package mark

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	elementalBonusRe = regexp.MustCompile(`(?i)^\s*(\S+)\s+elemental\s+damage\s+bonus\s*$`)
	physicalBonusRe  = regexp.MustCompile(`(?i)^\s*physical\s+damage\s+bonus\s*$`)
	elementShortRe   = regexp.MustCompile(`(?i)^\S+ dmg-bonus$`)
	dmgBonusRe       = regexp.MustCompile(`(?i)dmg-bonus|damage bonus`)
	percentTitleRe   = regexp.MustCompile(`(?i)dmg-bonus|damage bonus|crit|energy recharge|healing bonus|%`)
)

const (
	physicalTitle  = "phys dmg-bonus"
	dmgBonusSuffix = " dmg-bonus"
)

// Normalize turns a raw record into an Entry. ok is false when the record has
// no title or no usable value.
func Normalize(cat *catalog.Catalog, r Record) (domain.Entry, bool) {
	title := strings.TrimSpace(r.Title)
	if title == "" || strings.EqualFold(title, "undefined") {
		return domain.Entry{}, false
	}
	value, ok := numericValue(r.Value)
	if !ok {
		return domain.Entry{}, false
	}

	title, key := canonicalTitle(cat, title)
	display := ""
	switch {
	case dmgBonusRe.MatchString(title) && value < 1:
		value *= 100
		display = formatPct(value)
	case percentTitleRe.MatchString(title):
		display = formatPct(value)
	default:
		display = formatComma(value)
	}

	return domain.Entry{
		Title:   title,
		Key:     key,
		Value:   value,
		Display: display,
	}, true
}

func canonicalTitle(cat *catalog.Catalog, title string) (string, domain.AttrKey) {
	if m := elementalBonusRe.FindStringSubmatch(title); m != nil {
		element := cases.Title(language.English).String(strings.ToLower(m[1]))
		return element + dmgBonusSuffix, domain.ElementalDmg
	}
	if physicalBonusRe.MatchString(title) {
		return physicalTitle, domain.PhysicalDmg
	}
	if key := cat.Lookup(title); key != domain.KeyNone {
		return title, key
	}
	// Already canonical, e.g. "Pyro dmg-bonus".
	if elementShortRe.MatchString(title) {
		return title, domain.ElementalDmg
	}
	return title, domain.KeyNone
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// formatComma groups thousands, e.g. 4780 -> "4,780.0".
func formatComma(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f", v)
}
