package deps

import (
	"net/http"
	"notifyme/internal/config"
	dl "notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"notifyme/internal/implementations/discord"
	"notifyme/internal/implementations/logging"
	"notifyme/internal/implementations/telegram"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	// HTTPClient is shared by every notifier; its lifetime belongs to the
	// application, not to the notifiers.
	HTTPClient *http.Client

	// Nil when the corresponding platform is not configured.
	DiscordNotifier  notification.Notifier
	TelegramNotifier notification.Notifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()

	deps.HTTPClient = &http.Client{Timeout: deps.Config.RequestTimeout}

	deps.initDiscordNotifier()
	deps.initTelegramNotifier()

	return deps, func() {
		deps.HTTPClient.CloseIdleConnections()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initDiscordNotifier() {
	if !deps.Config.IsDiscordConfigured() {
		return
	}
	notifier, err := discord.New(
		discord.Config{WebhookURL: deps.Config.DiscordWebhookURL},
		deps.Logger,
		deps.HTTPClient,
	)
	if err != nil {
		panic(err)
	}
	deps.DiscordNotifier = notifier
}

func (deps *Deps) initTelegramNotifier() {
	if !deps.Config.IsTelegramConfigured() {
		return
	}
	notifier, err := telegram.New(
		telegram.Config{
			BotToken: deps.Config.TelegramBotToken,
			ChatID:   deps.Config.TelegramChatID,
			BaseURL:  deps.Config.TelegramBaseURL,
		},
		deps.Logger,
		deps.HTTPClient,
	)
	if err != nil {
		panic(err)
	}
	deps.TelegramNotifier = notifier
}
