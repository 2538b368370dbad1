package client_state

import (
	"context"
	"errors"
)

// Keys under which values are kept in the client's cookies.
const (
	ThemeKey       = "balanceu-theme"
	UserKey        = "balanceu-user"
	IntroPlayedKey = "balanceu_intro_played"
	visitorKey     = "balanceu-visitor"
)

var ErrNoSession = errors.New("client session not found")

// State is everything the client keeps between requests. Theme and Username
// are raw stored values and may name unknown themes or users.
type State struct {
	VisitorId   string
	Theme       string
	Username    string
	IntroPlayed bool
	// NewVisitor is set by Store.Load when the visitor id was generated for
	// this request. It is never stored.
	NewVisitor bool
}

// Session is the per-request handle on the client's State. Every setter
// persists immediately, so it must be used before the response body is written.
type Session struct {
	state   State
	persist func(State) error
}

func NewSession(state State, persist func(State) error) *Session {
	return &Session{state: state, persist: persist}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) VisitorId() string {
	return s.state.VisitorId
}

func (s *Session) SetTheme(key string) error {
	s.state.Theme = key
	return s.persist(s.state)
}

func (s *Session) SetUsername(username string) error {
	s.state.Username = username
	return s.persist(s.state)
}

func (s *Session) ClearUsername() error {
	s.state.Username = ""
	return s.persist(s.state)
}

func (s *Session) MarkIntroPlayed() error {
	if s.state.IntroPlayed {
		return nil
	}
	s.state.IntroPlayed = true
	return s.persist(s.state)
}

type contextKey string

const sessionKey contextKey = "client_session"

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func FromContext(ctx context.Context) (*Session, error) {
	session, ok := ctx.Value(sessionKey).(*Session)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// InMemory returns a session that keeps its state in memory only. Tests use
// it in place of a cookie-backed session.
func InMemory(state State) *Session {
	return NewSession(state, func(State) error { return nil })
}
