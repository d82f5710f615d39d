package health

import (
	"net/http"
	"notifyme/internal/http/handlers/response"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

type Result struct {
	Status string `json:"status"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, Result{Status: "ok"}, http.StatusOK)
}
