package content

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"viral-calls-go/internal/llmjson"
	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/types"
)

// ModelClient is the slice of the Gemini client the generator needs.
type ModelClient interface {
	Generate(ctx context.Context, models []string, prompt, fileURI string) (string, error)
}

type Generator struct {
	model  ModelClient
	models []string
	log    *logrus.Entry
}

func New(model ModelClient, models []string) *Generator {
	return &Generator{
		model:  model,
		models: models,
		log:    logger.New().WithField("module", "content"),
	}
}

// Generate produces the carousel copy for one winning call. Errors exclude
// the winner from notification; they never abort the remaining winners.
func (g *Generator) Generate(ctx context.Context, analysis types.AnalysisResult) (types.PostContent, error) {
	reply, err := g.model.Generate(ctx, g.models, buildPrompt(analysis), "")
	if err != nil {
		return types.PostContent{}, fmt.Errorf("content generation: %w", err)
	}
	var pc types.PostContent
	if err := llmjson.Unmarshal(reply, &pc); err != nil {
		return types.PostContent{}, fmt.Errorf("content reply: %w", err)
	}
	if len(pc.Hooks) == 0 || len(pc.EnglishSlides) == 0 || len(pc.TamilSlides) == 0 {
		return types.PostContent{}, fmt.Errorf("content reply missing hooks or slides")
	}
	return pc, nil
}

func buildPrompt(analysis types.AnalysisResult) string {
	return fmt.Sprintf(`Context: %s
Transcript: %s
Create a Social Media Carousel (3 Slides) in ENGLISH and TAMIL.
Also generate 3 different catchy Hooks.
Return JSON ONLY: {"hooks": [], "english_slides": [], "tamil_slides": []}`,
		analysis.PainPoint, analysis.TranscriptSummary)
}
