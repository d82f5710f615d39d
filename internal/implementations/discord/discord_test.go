package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "notifyme/internal/core/domain/errors"
	"notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const webhookURL = "https://discord.com/api/webhooks/123456789/aBcDeF_gHiJ-kLmN"

type fakeTransport struct {
	requests []*http.Request
	bodies   []string
	respond  func(r *http.Request) (*http.Response, error)
}

func (t *fakeTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	body := ""
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = string(raw)
	}
	t.requests = append(t.requests, r)
	t.bodies = append(t.bodies, body)
	return t.respond(r)
}

func respondWithStatus(status int, body string) func(r *http.Request) (*http.Response, error) {
	return func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
			Request:    r,
		}, nil
	}
}

func newTestNotifier(t *testing.T, transport *fakeTransport) (*Notifier, *logging.FakeLogger) {
	t.Helper()
	log := logging.NewFakeLogger()
	notifier, err := New(
		Config{WebhookURL: webhookURL},
		log,
		&http.Client{Transport: transport},
	)
	require.NoError(t, err)
	return notifier, log
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		id    string
		cfg   Config
		valid bool
	}{
		{id: "valid", cfg: Config{WebhookURL: webhookURL}, valid: true},
		{id: "legacy host", cfg: Config{WebhookURL: "https://discordapp.com/api/webhooks/1/token"}, valid: true},
		{id: "missing", cfg: Config{}, valid: false},
		{id: "foreign host", cfg: Config{WebhookURL: "https://example.com/api/webhooks/1/token"}, valid: false},
		{id: "plain http", cfg: Config{WebhookURL: "http://discord.com/api/webhooks/1/token"}, valid: false},
		{id: "missing webhook token", cfg: Config{WebhookURL: "https://discord.com/api/webhooks/123"}, valid: false},
		{id: "not a url", cfg: Config{WebhookURL: "discord webhook"}, valid: false},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			err := testcase.cfg.Validate()
			if testcase.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestNewFailsBeforeAnyNetworkCall(t *testing.T) {
	transport := &fakeTransport{respond: respondWithStatus(http.StatusNoContent, "")}

	_, err := New(Config{}, logging.NewFakeLogger(), &http.Client{Transport: transport})

	assert := require.New(t)
	assert.Error(err)
	invalidConfig := &e.InvalidConfigError{}
	assert.ErrorAs(err, &invalidConfig)
	assert.Empty(transport.requests)
}

func TestSendMessageSuccess(t *testing.T) {
	transport := &fakeTransport{respond: respondWithStatus(http.StatusNoContent, "")}
	notifier, log := newTestNotifier(t, transport)

	sent := notifier.SendMessage(context.Background(), "hi")

	assert := require.New(t)
	assert.True(sent)
	assert.Len(transport.requests, 1)
	request := transport.requests[0]
	assert.Equal(http.MethodPost, request.Method)
	assert.Equal(webhookURL, request.URL.String())
	assert.Equal("application/json", request.Header.Get("content-type"))

	var payload map[string]interface{}
	assert.NoError(json.Unmarshal([]byte(transport.bodies[0]), &payload))
	assert.Equal(map[string]interface{}{"content": "hi"}, payload)
	assert.Empty(log.Logged)
}

func TestSendMessageUnsuccessfulResponse(t *testing.T) {
	cases := []struct {
		id     string
		status int
	}{
		{id: "bad request", status: http.StatusBadRequest},
		{id: "not found", status: http.StatusNotFound},
		{id: "rate limited", status: http.StatusTooManyRequests},
		{id: "internal error", status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			transport := &fakeTransport{respond: respondWithStatus(testcase.status, `{"message": "oops"}`)}
			notifier, log := newTestNotifier(t, transport)

			sent := notifier.SendMessage(context.Background(), "hi")

			assert := require.New(t)
			assert.False(sent)
			assert.Len(log.Records(logging.ERROR), 1)
		})
	}
}

func TestSendMessageTransportError(t *testing.T) {
	transport := &fakeTransport{respond: func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}
	notifier, log := newTestNotifier(t, transport)

	sent := notifier.SendMessage(context.Background(), "hi")

	assert := require.New(t)
	assert.False(sent)
	assert.Len(log.Records(logging.ERROR), 1)
}

func TestSendMessageTruncatesLongText(t *testing.T) {
	transport := &fakeTransport{respond: respondWithStatus(http.StatusNoContent, "")}
	notifier, log := newTestNotifier(t, transport)

	sent := notifier.SendMessage(context.Background(), strings.Repeat("a", 2500))

	assert := require.New(t)
	assert.True(sent)

	var payload struct {
		Content string `json:"content"`
	}
	assert.NoError(json.Unmarshal([]byte(transport.bodies[0]), &payload))
	assert.Equal(MaxMessageLength, len([]rune(payload.Content)))
	assert.True(strings.HasSuffix(payload.Content, notification.TruncationMarker))
	assert.Len(log.Records(logging.WARNING), 1)
}

func TestSendMessageKeepsTextAtLimitUnmodified(t *testing.T) {
	transport := &fakeTransport{respond: respondWithStatus(http.StatusNoContent, "")}
	notifier, log := newTestNotifier(t, transport)
	text := strings.Repeat("a", MaxMessageLength)

	sent := notifier.SendMessage(context.Background(), text)

	assert := require.New(t)
	assert.True(sent)

	var payload struct {
		Content string `json:"content"`
	}
	assert.NoError(json.Unmarshal([]byte(transport.bodies[0]), &payload))
	assert.Equal(text, payload.Content)
	assert.Empty(log.Records(logging.WARNING))
}

func TestCloseReleasesInternalClient(t *testing.T) {
	notifier, err := New(Config{WebhookURL: webhookURL}, logging.NewFakeLogger(), nil)

	require.NoError(t, err)
	notifier.Close()
}
