package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"viral-calls-go/internal/logger"
	"viral-calls-go/internal/types"
)

const transcriptPreviewLimit = 200

type Notifier struct {
	webhookURL string
	log        *logrus.Entry
}

func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		log:        logger.New().WithField("module", "notifier"),
	}
}

// Post sends the winner message to the webhook. Callers log failures but
// never retry or propagate them.
func (n *Notifier) Post(ctx context.Context, call types.AnalyzedCall, content types.PostContent) error {
	msg := &slack.WebhookMessage{
		Blocks: &slack.Blocks{BlockSet: buildBlocks(call, content)},
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	n.log.WithField("row", call.RowIndex).Info("posted to Slack")
	return nil
}

func buildBlocks(call types.AnalyzedCall, content types.PostContent) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "🚀 Viral Content Generated", true, false)),
		mrkdwnSection(fmt.Sprintf("*Issue:* %s\n*Score:* %d", call.PainPoint, call.Score)),
		slack.NewDividerBlock(),
		mrkdwnSection("*🎣 Hooks:*\n" + strings.Join(content.Hooks, "\n")),
		mrkdwnSection("*🇬🇧 English:*\n" + strings.Join(content.EnglishSlides, "\n")),
		slack.NewDividerBlock(),
		mrkdwnSection("*🇮🇳 Tamil:*\n" + strings.Join(content.TamilSlides, "\n")),
	}
	if preview := truncate(call.TranscriptSummary, transcriptPreviewLimit); preview != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "_"+preview+"_", false, false)))
	}
	return blocks
}

func mrkdwnSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
