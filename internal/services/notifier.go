package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"morningbrief/internal/models"
	"morningbrief/pkg/client"
)

const errorEmbedColor = 0xE74C3C

// Notifier delivers finished briefs to a Discord webhook. Discord answers
// 204 No Content on success.
type Notifier struct {
	client     *client.BaseClient
	webhookURL string
	logger     *zap.Logger
}

func NewNotifier(webhookURL string, clientConfig client.ClientConfig, logger *zap.Logger) *Notifier {
	return &Notifier{
		client:     client.NewBaseClient("discord", clientConfig, logger),
		webhookURL: webhookURL,
		logger:     logger,
	}
}

// Send clamps the message to Discord's limits and posts it.
func (n *Notifier) Send(ctx context.Context, message *models.WebhookMessage) error {
	message.Clamp()

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("encoding webhook message: %w", err)
	}

	start := time.Now()
	if _, err := n.client.PostJSONWithRetry(ctx, n.webhookURL, body, nil); err != nil {
		return fmt.Errorf("posting webhook message: %w", err)
	}

	fields := 0
	for _, embed := range message.Embeds {
		fields += len(embed.Fields)
	}

	n.logger.Info("Brief delivered",
		zap.Int("embeds", len(message.Embeds)),
		zap.Int("fields", fields),
		zap.Duration("duration", time.Since(start)))

	return nil
}

// SendError posts a minimal failure notice so a broken morning run is
// visible in the channel instead of silently missing.
func (n *Notifier) SendError(ctx context.Context, runErr error) error {
	message := &models.WebhookMessage{
		Embeds: []models.Embed{
			{
				Title:       "⚠️ Morgenbrief feilet",
				Description: models.Truncate(runErr.Error(), models.MaxDescriptionLen),
				Color:       errorEmbedColor,
				Timestamp:   models.FormatTimestamp(time.Now()),
			},
		},
	}

	return n.Send(ctx, message)
}
