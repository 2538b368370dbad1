package rest

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RedirectResponse tells the client which screen to show next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int, message string, details string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Details: details})
}

// DecodeBody decodes the JSON request body into dst. When decoding fails the
// 400 response is already written and false is returned.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debugf("invalid request body: %v", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return false
	}
	return true
}
