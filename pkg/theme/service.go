package theme

import (
	"context"
	"fmt"

	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/pkg/client_state"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// CurrentTheme picks the theme for a screen: a known query parameter wins,
	// then the stored key, then the default.
	CurrentTheme(ctx context.Context, param string) Theme
	SetTheme(ctx context.Context, key string) (Theme, error)
}

type ServiceImpl struct {
	events event_bus.Publisher
}

func NewService(events event_bus.Publisher) *ServiceImpl {
	return &ServiceImpl{events: events}
}

func (s *ServiceImpl) CurrentTheme(ctx context.Context, param string) Theme {
	if IsKnown(param) {
		return Resolve(param)
	}
	session, err := client_state.FromContext(ctx)
	if err != nil {
		log.Trace("no client session, using default theme")
		return Resolve("")
	}
	return Resolve(session.State().Theme)
}

func (s *ServiceImpl) SetTheme(ctx context.Context, key string) (Theme, error) {
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to set theme: %w", err)
	}
	previous := Resolve(session.State().Theme)
	selected := Resolve(key)
	if err := session.SetTheme(string(selected.Key)); err != nil {
		return Theme{}, fmt.Errorf("failed to store theme: %w", err)
	}
	log.Debugf("theme set to %s", selected.Key)

	err = s.events.Publish(event_bus.NewEvent(ctx, event_bus.ThemeChangedType, event_bus.ThemeChanged{
		From: string(previous.Key),
		To:   string(selected.Key),
	}))
	if err != nil {
		log.Errorf("failed to publish theme change: %v", err)
	}
	return selected, nil
}
