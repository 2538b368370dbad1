package request_funds

import (
	"net/http"

	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/balanceu/balanceu/pkg/theme"
	log "github.com/sirupsen/logrus"
)

func NewFlow(links *ShareLinks, clock utils.Clock) *selection.Flow[ShareLink] {
	return selection.NewFlow("request_funds", selection.Buckets(), links.Generate, clock)
}

// Handler serves the selection screen plus the share action.
type Handler struct {
	*selection.Handler[ShareLink]
	flow   *selection.Flow[ShareLink]
	sharer Sharer
}

func NewHandler(flow *selection.Flow[ShareLink], themes theme.Service, navigator navigation.Navigator, sharer Sharer) *Handler {
	return &Handler{
		Handler: selection.NewHandler(flow, themes, navigator, Render),
		flow:    flow,
		sharer:  sharer,
	}
}

// Share is best effort: it always answers 204.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	defer w.WriteHeader(http.StatusNoContent)

	step, err := h.flow.Current(r.Context())
	if err != nil {
		log.Debugf("share skipped: %v", err)
		return
	}
	selected, ok := step.(selection.AmountSelected[ShareLink])
	if !ok {
		log.Debug("share skipped, no link generated yet")
		return
	}
	if err := h.sharer.Share(r.Context(), ShareTitle, selected.Result.Link); err != nil {
		log.Debugf("share failed: %v", err)
	}
}
