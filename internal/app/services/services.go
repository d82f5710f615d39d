package services

import (
	"notifyme/internal/app/deps"
	"notifyme/internal/core/services"
	sendmessage "notifyme/internal/core/services/send_message"
)

type Services struct {
	// Nil when the corresponding platform is not configured.
	SendDiscordMessage  services.Service[sendmessage.Input, sendmessage.Result]
	SendTelegramMessage services.Service[sendmessage.Input, sendmessage.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}
	if deps.DiscordNotifier != nil {
		s.SendDiscordMessage = sendmessage.New(deps.Logger, deps.DiscordNotifier, "discord")
	}
	if deps.TelegramNotifier != nil {
		s.SendTelegramMessage = sendmessage.New(deps.Logger, deps.TelegramNotifier, "telegram")
	}
	return s
}
