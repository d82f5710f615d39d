package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	e "notifyme/internal/core/domain/errors"
	"notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// MaxMessageLength is the hard limit the Telegram Bot API enforces on
// message text.
const MaxMessageLength = 4096

const defaultRequestTimeout = 10 * time.Second

var (
	botTokenPattern = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9_-]{30,}$`)
	chatIDPattern   = regexp.MustCompile(`^-?[0-9]+$`)
)

type Config struct {
	BotToken string
	ChatID   string
	// BaseURL overrides https://api.telegram.org, e.g. for a local Bot API
	// server.
	BaseURL        url.URL
	RequestTimeout time.Duration
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BotToken, validation.Required, validation.Match(botTokenPattern)),
		validation.Field(&c.ChatID, validation.Required, validation.Match(chatIDPattern)),
	)
}

type message struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notifier sends messages to a Telegram chat through the Bot API
// sendMessage method.
type Notifier struct {
	sendMessageURL string
	chatID         int64
	httpClient     *http.Client
	ownsClient     bool
	log            logging.Logger
}

// New validates cfg and builds a bot notifier. When httpClient is nil an
// internal client bounded by cfg.RequestTimeout is created; it is released by
// Close. A client supplied by the caller is never closed here.
func New(cfg Config, log logging.Logger, httpClient *http.Client) (*Notifier, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, e.NewInvalidConfigError("telegram notifier", err)
	}
	chatID, err := strconv.ParseInt(cfg.ChatID, 10, 64)
	if err != nil {
		return nil, e.NewInvalidConfigError("telegram notifier", err)
	}

	baseURL := cfg.BaseURL
	if baseURL.Host == "" {
		baseURL = url.URL{Scheme: "https", Host: "api.telegram.org"}
	}
	sendMessageURL := baseURL.JoinPath(fmt.Sprintf("bot%s", cfg.BotToken), "sendMessage")

	n := &Notifier{
		sendMessageURL: sendMessageURL.String(),
		chatID:         chatID,
		httpClient:     httpClient,
		log:            log,
	}
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
			"Message exceeds the Telegram limit, truncating.",
			logging.Entry("limit", MaxMessageLength),
		)
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(message{ChatID: n.chatID, Text: text}); err != nil {
		n.log.Error(ctx, "Could not encode Telegram message.", logging.Entry("err", err))
		return false
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, n.sendMessageURL, &body)
	if err != nil {
		n.log.Error(ctx, "Could not create Telegram request.", logging.Entry("err", err))
		return false
	}
	request.Header.Add("content-type", "application/json")

	response, err := n.httpClient.Do(request)
	if err != nil {
		n.log.Error(ctx, "Could not send message to Telegram.", logging.Entry("err", err))
		return false
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(response.Body)
		n.log.Error(
			ctx,
			"Got unsuccessful response from Telegram.",
			logging.Entry("status", response.StatusCode),
			logging.Entry("response", string(responseBody)),
		)
		return false
	}

	// The Bot API reports some failures with a 200 status and ok=false in
	// the body.
	var apiResp apiResponse
	if err := json.NewDecoder(response.Body).Decode(&apiResp); err != nil {
		n.log.Error(ctx, "Could not decode Telegram API response.", logging.Entry("err", err))
		return false
	}
	if !apiResp.Ok {
		n.log.Error(
			ctx,
			"Telegram API returned an error.",
			logging.Entry("description", apiResp.Description),
		)
		return false
	}
	return true
}
