package types

// Queue statuses as stored in the sheet.
const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
)

// CallRecord is one row of the Calls sheet at scan time.
// RowIndex is 1-based and includes the header row, matching sheet addressing.
type CallRecord struct {
	RowIndex        int     `json:"row_index"`
	AudioURL        string  `json:"audio_url"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	Status          string  `json:"status,omitempty"`
}

// AnalysisResult is the model's verdict on a single call.
type AnalysisResult struct {
	TranscriptSummary string `json:"transcript_summary"`
	PainPoint         string `json:"pain_point"`
	Score             int    `json:"score"`
	ReasonForScore    string `json:"reason_for_score,omitempty"`
}

// AnalyzedCall pairs a scanned record with its analysis for ranking.
type AnalyzedCall struct {
	CallRecord
	AnalysisResult
}

// PostContent is the generated social copy for one winning call.
type PostContent struct {
	Hooks         []string `json:"hooks"`
	EnglishSlides []string `json:"english_slides"`
	TamilSlides   []string `json:"tamil_slides"`
}
