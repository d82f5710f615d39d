package sendmessage

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	e "notifyme/internal/core/domain/errors"
	"notifyme/internal/core/services"
	service "notifyme/internal/core/services/send_message"
	"notifyme/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(s services.Service[service.Input, service.Result]) *Handler {
	if s == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: s}
}

type Input struct {
	Text string `json:"text"`
}

type Result struct {
	Sent bool `json:"sent"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

// Text length is bounded well above every platform limit so that oversized
// messages still reach the notifier and get truncated there.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.Required, validation.Length(1, 65536)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Text: input.Text})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Sent: result.Sent}, http.StatusOK)
}

// UnavailableHandler answers for a platform that has no configuration in the
// environment.
type UnavailableHandler struct {
	platform string
}

func NewUnavailable(platform string) *UnavailableHandler {
	return &UnavailableHandler{platform: platform}
}

func (h *UnavailableHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.RenderError(
		rw,
		fmt.Sprintf("%s notifications are not configured", h.platform),
		http.StatusServiceUnavailable,
	)
}
