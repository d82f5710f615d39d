package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"notifyme/internal/config"
	"notifyme/internal/implementations/discord"
	"notifyme/internal/implementations/logging"
	"notifyme/internal/implementations/telegram"
	"os"
	"strings"
)

func main() {
	platform := flag.String("platform", "", "notification platform: discord or telegram")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read message from stdin: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimRight(string(raw), "\n")
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "nothing to send: pass a message as arguments or on stdin")
		os.Exit(1)
	}

	logger := logging.NewZapLogger()
	sent := run(context.Background(), *platform, text, cfg, logger)
	logger.Sync()

	if !sent {
		os.Exit(1)
	}
	fmt.Printf("Message successfully sent to %s\n", *platform)
}

func run(ctx context.Context, platform string, text string, cfg *config.Config, logger *logging.ZapLogger) bool {
	switch platform {
	case "discord":
		notifier, err := discord.New(
			discord.Config{
				WebhookURL:     cfg.DiscordWebhookURL,
				RequestTimeout: cfg.RequestTimeout,
			},
			logger,
			nil,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		defer notifier.Close()
		return notifier.SendMessage(ctx, text)
	case "telegram":
		notifier, err := telegram.New(
			telegram.Config{
				BotToken:       cfg.TelegramBotToken,
				ChatID:         cfg.TelegramChatID,
				BaseURL:        cfg.TelegramBaseURL,
				RequestTimeout: cfg.RequestTimeout,
			},
			logger,
			nil,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		defer notifier.Close()
		return notifier.SendMessage(ctx, text)
	default:
		fmt.Fprintln(os.Stderr, "platform must be either discord or telegram")
		return false
	}
}
