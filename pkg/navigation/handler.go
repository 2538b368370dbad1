package navigation

import (
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	"github.com/balanceu/balanceu/pkg/theme"
	log "github.com/sirupsen/logrus"
)

type NavigateRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Handler struct {
	navigator Navigator
	themes    theme.Service
}

func NewHandler(navigator Navigator, themes theme.Service) *Handler {
	return &Handler{navigator: navigator, themes: themes}
}

// RootRedirect sends visitors of "/" to the login screen.
func (h *Handler) RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LoginPath, http.StatusFound)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	log.Trace("Navigating")
	var request NavigateRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}
	if request.To == "" {
		rest.WriteError(w, http.StatusBadRequest, "Navigation target is required", "")
		return
	}
	current := h.themes.CurrentTheme(r.Context(), r.URL.Query().Get("theme"))
	link := h.navigator.GoTo(r.Context(), request.From, request.To, current.Key)
	rest.WriteJSON(w, http.StatusOK, rest.RedirectResponse{Redirect: link})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	log.Trace("Navigating back")
	rest.WriteJSON(w, http.StatusOK, rest.RedirectResponse{Redirect: h.navigator.GoBack(r.Context())})
}
