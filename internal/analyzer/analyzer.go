package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"viral-calls-go/internal/llmjson"
	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/types"
)

var ErrDownload = errors.New("audio download failed")

// ModelClient is the slice of the Gemini client the analyzer needs.
type ModelClient interface {
	UploadAudio(ctx context.Context, path string) (string, error)
	Generate(ctx context.Context, models []string, prompt, fileURI string) (string, error)
}

const analysisPrompt = `I am an Insurance Analyst. Listen to this Tamil sales call.
Task 1: Transcribe the key conversation points (Summary Transcript) in English.
Task 2: Identify the specific customer pain point.
Task 3: Score this call (0-10) on 'Viral Marketing Potential'.
Return JSON ONLY: {"transcript_summary": "...", "pain_point": "...", "score": 8}`

type Analyzer struct {
	model  ModelClient
	models []string
	http   *http.Client
	log    *logrus.Entry
}

func New(model ModelClient, models []string) *Analyzer {
	return &Analyzer{
		model:  model,
		models: models,
		http:   &http.Client{Timeout: 60 * time.Second},
		log:    logger.New().WithField("module", "analyzer"),
	}
}

// Analyze runs the full per-call flow: download, upload, score.
//
// Download and upload failures return an error and the record is skipped.
// Once the asset is ready, model or parse failures degrade to a zero-score
// placeholder result instead of erroring, so the row is still marked
// processed and the batch moves on.
func (a *Analyzer) Analyze(ctx context.Context, rec types.CallRecord) (types.AnalysisResult, error) {
	log := a.log.WithField("row", rec.RowIndex)

	path, err := a.download(ctx, rec.AudioURL)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	defer os.Remove(path)

	fileURI, err := a.model.UploadAudio(ctx, path)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	reply, err := a.model.Generate(ctx, a.models, analysisPrompt, fileURI)
	if err != nil {
		log.WithError(err).Warn("analysis generation failed, recording degraded result")
		return degradedResult(), nil
	}

	var res types.AnalysisResult
	if err := llmjson.Unmarshal(reply, &res); err != nil {
		log.WithError(err).Warn("analysis reply unparsable, recording degraded result")
		return degradedResult(), nil
	}
	if res.TranscriptSummary == "" || res.PainPoint == "" {
		log.Warn("analysis reply missing required fields, recording degraded result")
		return degradedResult(), nil
	}
	return res, nil
}

func (a *Analyzer) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrDownload, resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "call-*.mp3")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	return tmp.Name(), nil
}

func degradedResult() types.AnalysisResult {
	return types.AnalysisResult{
		TranscriptSummary: "Error",
		PainPoint:         "Error",
		Score:             0,
	}
}
