// Package pipeline runs one batch invocation end to end: scan the queue,
// analyze each call, write results back, rank, generate content for the
// winners and notify. Everything is sequential; per-record failures are
// logged and skipped so one bad call never stops the batch.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/ranker"
	"viral-calls-go/internal/types"
)

type QueueStore interface {
	TargetPostCount(ctx context.Context) int
	PendingCalls(ctx context.Context) ([]types.CallRecord, error)
	MarkProcessed(ctx context.Context, rowIndex, score int, summary string) error
}

type CallAnalyzer interface {
	Analyze(ctx context.Context, rec types.CallRecord) (types.AnalysisResult, error)
}

type ContentGenerator interface {
	Generate(ctx context.Context, analysis types.AnalysisResult) (types.PostContent, error)
}

type Notifier interface {
	Post(ctx context.Context, call types.AnalyzedCall, content types.PostContent) error
}

const interCallPause = 2 * time.Second

type Pipeline struct {
	Store    QueueStore
	Analyzer CallAnalyzer
	Content  ContentGenerator
	Notifier Notifier

	// Pause between successive queue entries; defaults to 2s via New.
	Pause time.Duration

	Log *logrus.Entry
}

func New(store QueueStore, analyzer CallAnalyzer, content ContentGenerator, notifier Notifier) *Pipeline {
	return &Pipeline{
		Store:    store,
		Analyzer: analyzer,
		Content:  content,
		Notifier: notifier,
		Pause:    interCallPause,
		Log:      logger.New().WithField("module", "pipeline"),
	}
}

// RunSummary reports what one invocation did, for logging and the run report.
type RunSummary struct {
	TargetPosts int
	Scanned     int
	Analyzed    []types.AnalyzedCall
	Winners     []types.AnalyzedCall
	Notified    int
}

func (p *Pipeline) Run(ctx context.Context) (RunSummary, error) {
	target := p.Store.TargetPostCount(ctx)
	calls, err := p.Store.PendingCalls(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("scan queue: %w", err)
	}
	p.Log.WithFields(logrus.Fields{
		"pending_calls": len(calls),
		"target_posts":  target,
	}).Info("queue scanned")

	var analyzed []types.AnalyzedCall
	for i, rec := range calls {
		if i > 0 {
			p.pause(ctx)
		}
		log := p.Log.WithField("row", rec.RowIndex)
		log.Info("analyzing call")

		res, err := p.Analyzer.Analyze(ctx, rec)
		if err != nil {
			log.WithError(err).Warn("call skipped")
			continue
		}
		if err := p.Store.MarkProcessed(ctx, rec.RowIndex, res.Score, res.TranscriptSummary); err != nil {
			log.WithError(err).Error("write-back failed")
		}
		analyzed = append(analyzed, types.AnalyzedCall{CallRecord: rec, AnalysisResult: res})
		log.WithField("score", res.Score).Info("call analyzed")
	}

	winners := ranker.TopN(analyzed, target)
	notified := 0
	for _, w := range winners {
		log := p.Log.WithField("row", w.RowIndex)
		pc, err := p.Content.Generate(ctx, w.AnalysisResult)
		if err != nil {
			log.WithError(err).Warn("content generation failed, winner excluded")
			continue
		}
		if err := p.Notifier.Post(ctx, w, pc); err != nil {
			log.WithError(err).Warn("notification failed")
			continue
		}
		notified++
	}

	return RunSummary{
		TargetPosts: target,
		Scanned:     len(calls),
		Analyzed:    analyzed,
		Winners:     winners,
		Notified:    notified,
	}, nil
}

func (p *Pipeline) pause(ctx context.Context) {
	t := time.NewTimer(p.Pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
