package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"viral-calls-go/internal/logger"
)

var (
	ErrUpload            = errors.New("asset upload failed")
	ErrProcessingFailed  = errors.New("asset processing failed")
	ErrProcessingTimeout = errors.New("asset not ready before poll limit")
)

const (
	audioMIME = "audio/mp3"

	// The reference behavior polls every 2s forever; we bound it at ~5 minutes.
	pollInterval    = 2 * time.Second
	maxPollAttempts = 150
)

// Client wraps the Gemini SDK for the two things this bot needs: getting an
// audio asset ready and generating text against an ordered model list.
type Client struct {
	genai *genai.Client
	log   *logrus.Entry
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{
		genai: gc,
		log:   logger.New().WithField("module", "gemini"),
	}, nil
}

// UploadAudio uploads the file at path and blocks until the service reports
// the asset ACTIVE, returning its URI for use in generation requests.
func (c *Client) UploadAudio(ctx context.Context, path string) (string, error) {
	f, err := c.genai.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    audioMIME,
		DisplayName: "audio_call",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	log := c.log.WithField("asset", f.Name)
	log.Info("audio uploaded, waiting for processing")

	op := func() error {
		cur, err := c.genai.Files.Get(ctx, f.Name, nil)
		if err != nil {
			return err
		}
		switch cur.State {
		case genai.FileStateActive:
			return nil
		case genai.FileStateFailed:
			return backoff.Permanent(ErrProcessingFailed)
		default:
			return fmt.Errorf("asset state %s", cur.State)
		}
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(pollInterval), maxPollAttempts), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		if errors.Is(err, ErrProcessingFailed) {
			return "", ErrProcessingFailed
		}
		return "", fmt.Errorf("%w: %v", ErrProcessingTimeout, err)
	}
	log.Info("asset active")
	return f.URI, nil
}

// Generate tries each model in order until one returns text. fileURI may be
// empty for text-only prompts.
func (c *Client) Generate(ctx context.Context, models []string, prompt, fileURI string) (string, error) {
	var parts []*genai.Part
	if fileURI != "" {
		parts = append(parts, genai.NewPartFromURI(fileURI, audioMIME))
	}
	parts = append(parts, genai.NewPartFromText(prompt))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var lastErr error
	for _, model := range models {
		resp, err := c.genai.Models.GenerateContent(ctx, model, contents, nil)
		if err != nil {
			lastErr = err
			c.log.WithField("model", model).WithError(err).Warn("generation failed, trying next model")
			continue
		}
		text := resp.Text()
		if text == "" {
			lastErr = fmt.Errorf("model %s returned empty reply", model)
			c.log.WithField("model", model).Warn("empty reply, trying next model")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("all models failed: %w", lastErr)
}
