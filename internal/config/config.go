package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	IsTestMode     bool          `env:"TEST_MODE"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout time.Duration `env:"NOTIFY_REQUEST_TIMEOUT" envDefault:"10s"`

	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`

	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string  `env:"TELEGRAM_CHAT_ID"`
	TelegramBaseURL  url.URL `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDiscordConfigured() bool {
	return c.DiscordWebhookURL != ""
}

// IsTelegramConfigured reports whether any Telegram value is present. A
// partially filled configuration counts as configured so that startup fails
// loudly on the missing half instead of silently disabling the notifier.
func (c *Config) IsTelegramConfigured() bool {
	return c.TelegramBotToken != "" || c.TelegramChatID != ""
}
