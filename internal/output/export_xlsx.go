package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetArtifacts = "Artifacts"
	SheetSummary   = "Summary"
)

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

var artifactHeaders = []string{"Character", "Slot", "Main", "Sub 1", "Sub 2", "Sub 3", "Sub 4", "Rolls", "Score", "Grade", "Error"}

var summaryHeaders = []string{"Character", "Total", "Grade", "Max Flower", "Max Plume", "Max Sands", "Max Goblet", "Max Circlet", "Error"}

// ExportXLSX writes one row per artifact and one summary row per character.
// The run id is stored in the workbook properties.
func ExportXLSX(path string, runID string, reports []Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetArtifacts); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "artifact_mark",
		Identifier: runID,
	}); err != nil {
		return err
	}

	var werr error
	set := func(sheet, c string, v interface{}) {
		if werr != nil {
			return
		}
		werr = f.SetCellValue(sheet, c, v)
	}

	for i, h := range artifactHeaders {
		set(SheetArtifacts, cell(i+1, 1), h)
	}
	for i, h := range summaryHeaders {
		set(SheetSummary, cell(i+1, 1), h)
	}

	row := 2
	for _, r := range reports {
		for _, a := range r.Artifacts {
			set(SheetArtifacts, cell(1, row), r.Character)
			set(SheetArtifacts, cell(2, row), a.Slot.String())
			if a.Main != nil {
				set(SheetArtifacts, cell(3, row), a.Main.Title+" "+a.Main.Display)
			}
			for i, e := range a.Subs {
				if i >= 4 {
					break
				}
				set(SheetArtifacts, cell(4+i, row), EntryText(e))
			}
			set(SheetArtifacts, cell(8, row), totalRolls(a.Subs))
			if a.Err != nil {
				set(SheetArtifacts, cell(11, row), a.Err.Error())
			} else {
				set(SheetArtifacts, cell(9, row), a.Score)
				set(SheetArtifacts, cell(10, row), string(a.Grade))
			}
			row++
		}
	}
	lastArtifactRow := row - 1

	for i, r := range reports {
		row := i + 2
		set(SheetSummary, cell(1, row), r.Character)
		if r.Err != nil {
			set(SheetSummary, cell(9, row), r.Err.Error())
			continue
		}
		set(SheetSummary, cell(2, row), r.Summary.Total)
		set(SheetSummary, cell(3, row), string(r.Summary.Grade))
		for j, s := range domain.Slots {
			set(SheetSummary, cell(4+j, row), r.MaxMark.Total(s))
		}
	}
	if werr != nil {
		return werr
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetArtifacts, "A1", cell(len(artifactHeaders), 1), headerStyleID); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", cell(len(summaryHeaders), 1), headerStyleID); err != nil {
		return err
	}

	// Scores with one decimal: 49.5
	oneDecimal := "0.0"
	scoreStyleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDecimal})
	if err != nil {
		return err
	}
	if lastArtifactRow >= 2 {
		if err := f.SetCellStyle(SheetArtifacts, cell(9, 2), cell(9, lastArtifactRow), scoreStyleID); err != nil {
			return err
		}
	}
	if len(reports) > 0 {
		if err := f.SetCellStyle(SheetSummary, cell(2, 2), cell(2, len(reports)+1), scoreStyleID); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetSummary, cell(4, 2), cell(8, len(reports)+1), scoreStyleID); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func totalRolls(subs []domain.Entry) int {
	n := 0
	for _, e := range subs {
		if e.Rolls != nil {
			n += e.Rolls.Count
		}
	}
	return n
}
