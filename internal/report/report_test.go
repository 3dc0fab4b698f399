package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"viral-calls-go/internal/types"
)

func TestWriteRoundTrip(t *testing.T) {
	analyzed := []types.AnalyzedCall{
		{
			CallRecord: types.CallRecord{RowIndex: 2, AudioURL: "https://a.example/1.mp3"},
			AnalysisResult: types.AnalysisResult{
				TranscriptSummary: "s2", PainPoint: "p2", Score: 8, ReasonForScore: "emotional story",
			},
		},
		{
			CallRecord:     types.CallRecord{RowIndex: 3, AudioURL: "https://a.example/2.mp3"},
			AnalysisResult: types.AnalysisResult{TranscriptSummary: "s3", PainPoint: "p3", Score: 4},
		},
	}
	winners := analyzed[:1]

	path := filepath.Join(t.TempDir(), "run.xlsx")
	if err := Write(path, analyzed, winners); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Run")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][2] != "8" || rows[1][3] != "p2" {
		t.Fatalf("winner row = %v", rows[1])
	}
	if rows[1][6] != "TRUE" {
		t.Fatalf("winner flag = %q", rows[1][6])
	}
	if rows[2][6] != "FALSE" {
		t.Fatalf("non-winner flag = %q", rows[2][6])
	}
}

func TestWriteEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := Write(path, nil, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Run")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
}
