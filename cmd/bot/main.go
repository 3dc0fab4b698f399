package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"viral-calls-go/internal/analyzer"
	"viral-calls-go/internal/config"
	"viral-calls-go/internal/content"
	"viral-calls-go/internal/gemini"
	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/notifier"
	"viral-calls-go/internal/pipeline"
	"viral-calls-go/internal/report"
	"viral-calls-go/internal/sheetq"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New().WithRun().WithField("service", "viral-calls-go")
	log.Info("starting run")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}

	ctx := context.Background()

	store, err := sheetq.NewStore(ctx, cfg.SpreadsheetID, []byte(cfg.GoogleCredsJSON))
	if err != nil {
		log.WithError(err).Fatal("failed to init sheets store")
	}
	model, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.WithError(err).Fatal("failed to init gemini client")
	}

	p := pipeline.New(
		store,
		analyzer.New(model, cfg.AnalysisModels),
		content.New(model, cfg.ContentModels),
		notifier.New(cfg.SlackWebhookURL),
	)

	run, err := p.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("run failed")
	}

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, run.Analyzed, run.Winners); err != nil {
			log.WithError(err).Error("failed to write run report")
		} else {
			log.WithField("report_path", cfg.ReportPath).Info("run report written")
		}
	}

	log.WithFields(logrus.Fields{
		"scanned":  run.Scanned,
		"analyzed": len(run.Analyzed),
		"winners":  len(run.Winners),
		"notified": run.Notified,
	}).Info("run complete")
}
