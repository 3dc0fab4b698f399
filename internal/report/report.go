// Package report writes an optional xlsx artifact of a run so the marketing
// team can review every analyzed call, not just the ones that reached Slack.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"viral-calls-go/internal/types"
)

const sheetName = "Run"

// Write saves one row per analyzed call, flagging the winners.
func Write(path string, analyzed, winners []types.AnalyzedCall) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Row", "Audio URL", "Score", "Pain Point", "Summary", "Reason", "Winner"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	winnerRows := make(map[int]bool, len(winners))
	for _, w := range winners {
		winnerRows[w.RowIndex] = true
	}
	for i, rec := range analyzed {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []interface{}{
			rec.RowIndex,
			rec.AudioURL,
			rec.Score,
			rec.PainPoint,
			rec.TranscriptSummary,
			rec.ReasonForScore,
			winnerRows[rec.RowIndex],
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
