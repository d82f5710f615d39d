package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	e "notifyme/internal/core/domain/errors"
	"notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// MaxMessageLength is the hard limit Discord enforces on message content.
const MaxMessageLength = 2000

const defaultRequestTimeout = 10 * time.Second

var webhookURLPattern = regexp.MustCompile(
	`^https://(discord|discordapp)\.com/api/webhooks/[0-9]+/[A-Za-z0-9_-]+$`,
)

type Config struct {
	WebhookURL     string
	RequestTimeout time.Duration
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WebhookURL, validation.Required, validation.Match(webhookURLPattern)),
	)
}

type message struct {
	Content string `json:"content"`
}

// Notifier sends messages to a Discord channel through a webhook URL.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	ownsClient bool
	log        logging.Logger
}

// New validates cfg and builds a webhook notifier. When httpClient is nil an
// internal client bounded by cfg.RequestTimeout is created; it is released by
// Close. A client supplied by the caller is never closed here.
func New(cfg Config, log logging.Logger, httpClient *http.Client) (*Notifier, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, e.NewInvalidConfigError("discord notifier", err)
	}
	n := &Notifier{webhookURL: cfg.WebhookURL, httpClient: httpClient, log: log}
	if n.httpClient == nil {
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		n.httpClient = &http.Client{Timeout: timeout}
		n.ownsClient = true
	}
	return n, nil
}

func (n *Notifier) Close() {
	if n.ownsClient {
		n.httpClient.CloseIdleConnections()
	}
}

func (n *Notifier) SendMessage(ctx context.Context, text string) bool {
	text, wasTruncated := notification.Truncate(text, MaxMessageLength)
	if wasTruncated {
		n.log.Warning(
			ctx,
			"Message exceeds the Discord limit, truncating.",
			logging.Entry("limit", MaxMessageLength),
		)
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(message{Content: text}); err != nil {
		n.log.Error(ctx, "Could not encode Discord message.", logging.Entry("err", err))
		return false
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, &body)
	if err != nil {
		n.log.Error(ctx, "Could not create Discord webhook request.", logging.Entry("err", err))
		return false
	}
	request.Header.Add("content-type", "application/json")

	response, err := n.httpClient.Do(request)
	if err != nil {
		n.log.Error(ctx, "Could not send message to Discord.", logging.Entry("err", err))
		return false
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(response.Body)
		n.log.Error(
			ctx,
			"Got unsuccessful response from Discord.",
			logging.Entry("status", response.StatusCode),
			logging.Entry("response", string(responseBody)),
		)
		return false
	}
	return true
}
