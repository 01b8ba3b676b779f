package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
)

// Report is the scored artifact set of one character.
type Report struct {
	Character string
	Artifacts []domain.Artifact
	Summary   domain.Summary
	MaxMark   domain.MaxMark
	// Err is set when the character could not be scored at all.
	Err error
}

func PrintReport(w io.Writer, reports []Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No characters scored")
		return err
	}

	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		if r.Err != nil {
			fmt.Fprintf(&b, "%s: %v\n", r.Character, r.Err)
			continue
		}
		fmt.Fprintf(&b, "%s (total=%.1f, grade=%s)\n", r.Character, r.Summary.Total, gradeText(r.Summary.Grade))
		if len(r.Artifacts) == 0 {
			b.WriteString("  no artifacts\n")
			continue
		}
		for _, a := range r.Artifacts {
			if a.Err != nil {
				fmt.Fprintf(&b, "- %s: ungraded (%v)\n", a.Slot, a.Err)
			} else {
				fmt.Fprintf(&b, "- %s: score=%.1f, grade=%s\n", a.Slot, a.Score, a.Grade)
			}
			if a.Main != nil {
				fmt.Fprintf(&b, "    main %s\n", EntryText(*a.Main))
			}
			for _, e := range a.Subs {
				fmt.Fprintf(&b, "    %s\n", EntryText(e))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// EntryText renders an entry as "title display [rolls] (mark)".
func EntryText(e domain.Entry) string {
	s := e.Title + " " + e.Display
	if e.Rolls != nil {
		s += " [" + RollsText(*e.Rolls) + "]"
	}
	if e.Mark != nil {
		s += fmt.Sprintf(" (%.1f)", *e.Mark)
	}
	return s
}

// RollsText renders a roll estimate: "3" exact, "3+" more possible,
// "3-" fewer possible, "3±" both.
func RollsText(r domain.RollEstimate) string {
	s := strconv.Itoa(r.Count)
	switch {
	case r.High && r.Low:
		s += "±"
	case r.High:
		s += "+"
	case r.Low:
		s += "-"
	}
	return s
}

func gradeText(g domain.Grade) string {
	if g == domain.GradeNone {
		return "-"
	}
	return string(g)
}
