package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/pkg/client_state"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	// Authenticate checks the username case-insensitively and the password
	// exactly. Unknown users and wrong passwords fail the same way.
	Authenticate(ctx context.Context, username string, password string) (User, error)
	// CurrentUser resolves the stored username, falling back to the default
	// identity when it is missing or unknown.
	CurrentUser(ctx context.Context) User
	Logout(ctx context.Context) error
}

type ServiceImpl struct {
	repo   Repo
	events event_bus.Publisher
}

func NewUserService(repo Repo, events event_bus.Publisher) *ServiceImpl {
	return &ServiceImpl{repo: repo, events: events}
}

func (s *ServiceImpl) Authenticate(ctx context.Context, username string, password string) (User, error) {
	key := strings.ToLower(username)
	u, err := s.repo.CheckPassword(ctx, key, password)
	if err != nil {
		log.Debugf("login rejected for %q", key)
		return User{}, ErrInvalidCredentials
	}

	session, err := client_state.FromContext(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to start session: %w", err)
	}
	if err := session.SetUsername(key); err != nil {
		return User{}, fmt.Errorf("failed to store username: %w", err)
	}

	s.publish(ctx, event_bus.UserLoggedInType, event_bus.UserLoggedIn{Username: key})
	return u, nil
}

func (s *ServiceImpl) CurrentUser(ctx context.Context) User {
	key := FallbackKey
	if session, err := client_state.FromContext(ctx); err == nil && session.State().Username != "" {
		key = session.State().Username
	}

	u, err := s.repo.GetUser(ctx, key)
	if err == nil {
		return u
	}
	log.Debugf("unknown stored user %q, using fallback identity", key)
	fallback, err := s.repo.GetUser(ctx, FallbackKey)
	if err != nil {
		log.Errorf("fallback identity %q missing: %v", FallbackKey, err)
		return User{Key: FallbackKey}
	}
	return fallback
}

func (s *ServiceImpl) Logout(ctx context.Context) error {
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	username := session.State().Username
	if err := session.ClearUsername(); err != nil {
		return fmt.Errorf("failed to clear username: %w", err)
	}
	s.publish(ctx, event_bus.UserLoggedOutType, event_bus.UserLoggedOut{Username: username})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := s.events.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
