package test_utils

import (
	"context"

	"github.com/balanceu/balanceu/pkg/client_state"
)

// VisitorContext returns a context carrying an in-memory client session for
// visitorId, along with the session so tests can inspect what was stored.
func VisitorContext(visitorId string) (context.Context, *client_state.Session) {
	return StateContext(client_state.State{VisitorId: visitorId})
}

func StateContext(state client_state.State) (context.Context, *client_state.Session) {
	session := client_state.InMemory(state)
	return client_state.WithSession(context.Background(), session), session
}
