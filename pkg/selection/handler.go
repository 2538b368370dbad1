package selection

import (
	"context"
	"errors"
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Renderer turns a step into the screen's view model.
type Renderer func(ctx context.Context, step Step, th theme.Theme) any

type BucketRequest struct {
	Bucket string `json:"bucket"`
}

// AmountRequest carries either a preset Amount or free-form Custom text.
type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Custom *string          `json:"custom"`
}

type Handler[R any] struct {
	flow      *Flow[R]
	themes    theme.Service
	navigator navigation.Navigator
	render    Renderer
}

func NewHandler[R any](flow *Flow[R], themes theme.Service, navigator navigation.Navigator, render Renderer) *Handler[R] {
	return &Handler[R]{flow: flow, themes: themes, navigator: navigator, render: render}
}

func (h *Handler[R]) Screen(w http.ResponseWriter, r *http.Request) {
	log.Tracef("Entering %s", r.URL.Path)
	current := h.themes.CurrentTheme(r.Context(), r.URL.Query().Get("theme"))
	step, err := h.flow.Enter(r.Context(), current.Key)
	h.respond(w, r, step, err)
}

func (h *Handler[R]) SelectBucket(w http.ResponseWriter, r *http.Request) {
	var request BucketRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}
	log.Debugf("Selecting bucket %q", request.Bucket)
	step, err := h.flow.SelectBucket(r.Context(), Bucket(request.Bucket))
	h.respond(w, r, step, err)
}

func (h *Handler[R]) SelectAmount(w http.ResponseWriter, r *http.Request) {
	var request AmountRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}

	var step Step
	var err error
	switch {
	case request.Amount != nil:
		log.Debugf("Selecting amount %s", request.Amount.String())
		step, err = h.flow.SelectAmount(r.Context(), *request.Amount)
	case request.Custom != nil:
		log.Debugf("Selecting custom amount %q", *request.Custom)
		step, err = h.flow.SelectCustomAmount(r.Context(), *request.Custom)
	default:
		rest.WriteError(w, http.StatusBadRequest, "Amount is required", "Send either amount or custom")
		return
	}
	h.respond(w, r, step, err)
}

func (h *Handler[R]) Back(w http.ResponseWriter, r *http.Request) {
	step, delegate, err := h.flow.Back(r.Context())
	if err == nil && delegate {
		rest.WriteJSON(w, http.StatusOK, rest.RedirectResponse{Redirect: h.navigator.GoBack(r.Context())})
		return
	}
	h.respond(w, r, step, err)
}

func (h *Handler[R]) ChangeAmount(w http.ResponseWriter, r *http.Request) {
	step, err := h.flow.ChangeAmount(r.Context())
	h.respond(w, r, step, err)
}

func (h *Handler[R]) ChangeBucket(w http.ResponseWriter, r *http.Request) {
	step, err := h.flow.ChangeBucket(r.Context())
	h.respond(w, r, step, err)
}

func (h *Handler[R]) respond(w http.ResponseWriter, r *http.Request, step Step, err error) {
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownBucket):
			rest.WriteError(w, http.StatusBadRequest, "Unknown bucket", err.Error())
		case errors.Is(err, ErrInvalidAmount):
			rest.WriteError(w, http.StatusBadRequest, "Invalid amount", err.Error())
		case errors.Is(err, ErrNoBucket):
			rest.WriteError(w, http.StatusConflict, "Select a bucket first", "")
		default:
			log.Errorf("selection flow failed: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "Selection failed", err.Error())
		}
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.render(r.Context(), step, h.screenTheme(r)))
}

// screenTheme keeps the theme the screen was entered with. A known theme
// parameter on the request still wins.
func (h *Handler[R]) screenTheme(r *http.Request) theme.Theme {
	param := r.URL.Query().Get("theme")
	if !theme.IsKnown(param) {
		if key, ok := h.flow.Theme(r.Context()); ok {
			return theme.Resolve(string(key))
		}
	}
	return h.themes.CurrentTheme(r.Context(), param)
}
