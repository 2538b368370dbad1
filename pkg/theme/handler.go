package theme

import (
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	log "github.com/sirupsen/logrus"
)

type GradientDTO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Header string `json:"header"`
}

type ThemeDTO struct {
	Key      string      `json:"key"`
	Label    string      `json:"label"`
	Gradient GradientDTO `json:"gradient"`
}

type ThemesDTO struct {
	Current ThemeDTO   `json:"current"`
	Catalog []ThemeDTO `json:"catalog"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetThemes(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting themes")
	current := h.service.CurrentTheme(r.Context(), r.URL.Query().Get("theme"))
	rest.WriteJSON(w, http.StatusOK, ThemesDTO{Current: ToDTO(current), Catalog: catalogToDTO()})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	log.Trace("Setting theme")
	var request struct {
		Theme string `json:"theme"`
	}
	if !rest.DecodeBody(w, r, &request) {
		return
	}

	selected, err := h.service.SetTheme(r.Context(), request.Theme)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, "Could not store theme", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, ThemesDTO{Current: ToDTO(selected), Catalog: catalogToDTO()})
}

func ToDTO(t Theme) ThemeDTO {
	return ThemeDTO{
		Key:   string(t.Key),
		Label: t.Label,
		Gradient: GradientDTO{
			From:   t.Gradient.From,
			To:     t.Gradient.To,
			Header: t.Gradient.Header,
		},
	}
}

func catalogToDTO() []ThemeDTO {
	themes := Catalog()
	result := make([]ThemeDTO, 0, len(themes))
	for _, t := range themes {
		result = append(result, ToDTO(t))
	}
	return result
}
