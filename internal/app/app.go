package app

import (
	"fmt"
	"net/http"
	"notifyme/internal/app/deps"
	"notifyme/internal/app/services"
	"notifyme/internal/http/handlers/health"
	sendmessage "notifyme/internal/http/handlers/notifications/send_message"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	notificationsRouter := chi.NewRouter()
	if s.SendDiscordMessage != nil {
		notificationsRouter.Method(http.MethodPost, "/discord", sendmessage.New(s.SendDiscordMessage))
	} else {
		notificationsRouter.Method(http.MethodPost, "/discord", sendmessage.NewUnavailable("discord"))
	}
	if s.SendTelegramMessage != nil {
		notificationsRouter.Method(http.MethodPost, "/telegram", sendmessage.New(s.SendTelegramMessage))
	} else {
		notificationsRouter.Method(http.MethodPost, "/telegram", sendmessage.NewUnavailable("telegram"))
	}

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodGet, "/health", health.New())
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
