package app

import (
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {

	// Load the client's stored state once per request and keep it in the context
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			state, err := deps.ClientState.Load(req)
			if err != nil {
				log.Errorf("failed to load client state: %v", err)
				rest.WriteError(w, http.StatusInternalServerError, "Could not read client state", err.Error())
				return
			}

			persist := func(s client_state.State) error {
				return deps.ClientState.Save(w, req, s)
			}
			if state.NewVisitor {
				log.Debugf("new visitor %s", state.VisitorId)
				if err := persist(state); err != nil {
					rest.WriteError(w, http.StatusInternalServerError, "Could not store client state", err.Error())
					return
				}
			}

			session := client_state.NewSession(state, persist)
			next.ServeHTTP(w, req.WithContext(client_state.WithSession(req.Context(), session)))
		})
	})

	// Resolve the identity shown on screens
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			u := deps.UserService.CurrentUser(ctx)
			log.WithFields(log.Fields{"user": u.Key, "path": req.URL.Path}).Debug("Handling request")
			next.ServeHTTP(w, req.WithContext(user.WithUser(ctx, u)))
		})
	})
}
