package chat

import (
	"context"
	"net/http"
	"time"

	"socialdots/internal/infrastructure/config"
	"socialdots/internal/infrastructure/httpclient"
	"socialdots/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	botUsername = "SocialDots Bot"
	botIcon     = ":robot_face:"
	sendTimeout = 10 * time.Second
)

var ErrChatNotConfigured = errors.Wrap(interfaces.ErrNotConfigured, "slack webhook")

// SlackNotifier posts to a Slack incoming webhook. Without a webhook URL every
// Notify logs a warning and returns ErrChatNotConfigured.
type SlackNotifier struct {
	http    *httpclient.Client
	channel string
	enabled bool
}

var _ interfaces.IChatNotifier = (*SlackNotifier)(nil)

func NewSlackNotifier(cfg config.ChatConfig) *SlackNotifier {
	return &SlackNotifier{
		http:    httpclient.New(cfg.WebhookURL, sendTimeout, nil),
		channel: cfg.Channel,
		enabled: cfg.WebhookURL != "",
	}
}

func (n *SlackNotifier) HTTPClient() *http.Client {
	return n.http.HTTPClient()
}

type slackPayload struct {
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
}

func (n *SlackNotifier) Notify(ctx context.Context, text string) error {
	if !n.enabled {
		logrus.Warn("[chat][slack] SLACK_WEBHOOK_URL not configured, skipping notification")
		return ErrChatNotConfigured
	}

	err := n.http.DoJSON(ctx, http.MethodPost, "", slackPayload{
		Text:      text,
		Channel:   n.channel,
		Username:  botUsername,
		IconEmoji: botIcon,
	}, nil)
	if err != nil {
		logrus.WithError(err).Error("[chat][slack] notification failed")
		return errors.Wrap(err, "slack notify")
	}
	logrus.WithField("preview", preview(text)).Info("[chat][slack] notification sent")
	return nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > 50 {
		return string(r[:50]) + "..."
	}
	return s
}
