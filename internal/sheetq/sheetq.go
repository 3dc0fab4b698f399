// Package sheetq is the spreadsheet-backed call queue: a Settings tab with
// the target post count and a Calls tab holding one recorded call per row.
package sheetq

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/types"
)

const (
	settingsRange = "Settings!B1:B2"
	callsRange    = "Calls!A:D"

	defaultTargetPosts     = 2
	defaultDurationSeconds = 600
	minDurationSeconds     = 300

	colAudioURL = 1
	colDuration = 2
	colStatus   = 3
)

type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	log           *logrus.Entry
}

func NewStore(ctx context.Context, spreadsheetID string, credsJSON []byte) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		log:           logger.New().WithField("module", "sheetq"),
	}, nil
}

// TargetPostCount reads the configured post count from the Settings tab.
// This is a best-effort read: any failure falls back to the default.
func (s *Store) TargetPostCount(ctx context.Context) int {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, settingsRange).Context(ctx).Do()
	if err != nil {
		s.log.WithError(err).Warn("settings read failed, using default target")
		return defaultTargetPosts
	}
	return parseTargetCount(resp.Values)
}

// PendingCalls returns queue rows awaiting analysis, in sheet order.
func (s *Store) PendingCalls(ctx context.Context) ([]types.CallRecord, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, callsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read calls range: %w", err)
	}
	return filterPending(resp.Values), nil
}

// MarkProcessed overwrites the status, score and summary columns of one row.
func (s *Store) MarkProcessed(ctx context.Context, rowIndex, score int, summary string) error {
	rng := fmt.Sprintf("Calls!D%d:F%d", rowIndex, rowIndex)
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{types.StatusProcessed, score, summary}},
	}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update row %d: %w", rowIndex, err)
	}
	return nil
}

// parseTargetCount expects the count in the first cell of the range.
func parseTargetCount(values [][]interface{}) int {
	if len(values) == 0 || len(values[0]) == 0 {
		return defaultTargetPosts
	}
	n, err := strconv.Atoi(strings.TrimSpace(cellString(values[0][0])))
	if err != nil || n <= 0 {
		return defaultTargetPosts
	}
	return n
}

// filterPending walks every row, header included; filtering is by content.
// A row qualifies when its status cell is exactly "Pending" and its duration
// (default 600s when the cell is absent or blank) exceeds the threshold.
// Rows with an unparsable duration are skipped quietly.
func filterPending(values [][]interface{}) []types.CallRecord {
	var out []types.CallRecord
	for i, row := range values {
		if len(row) <= colStatus || cellString(row[colStatus]) != types.StatusPending {
			continue
		}
		duration := float64(defaultDurationSeconds)
		if raw := strings.TrimSpace(cellString(row[colDuration])); raw != "" {
			d, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			duration = d
		}
		if duration <= minDurationSeconds {
			continue
		}
		out = append(out, types.CallRecord{
			RowIndex:        i + 1,
			AudioURL:        cellString(row[colAudioURL]),
			DurationSeconds: duration,
			Status:          types.StatusPending,
		})
	}
	return out
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
