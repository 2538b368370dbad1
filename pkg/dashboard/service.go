package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/internal/visitor"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/balanceu/balanceu/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownTarget = errors.New("unknown navigation target")

// Intro is the welcome splash, shown once per browser session.
type Intro struct {
	Text     string
	Duration time.Duration
}

type Overview struct {
	UI   UIState
	User user.User
	Date string
	// Intro is nil unless this is the first dashboard visit of the session.
	Intro *Intro
}

type Service interface {
	// Open starts the dashboard over, as when the screen is loaded.
	Open(ctx context.Context) (Overview, error)
	Current(ctx context.Context) (Overview, error)
	CycleBrand(ctx context.Context) (Overview, error)
	ToggleTransactions(ctx context.Context) (Overview, error)
	SelectTransaction(ctx context.Context, name string) (Overview, error)
	CloseTransaction(ctx context.Context) (Overview, error)
	ToggleProfileMenu(ctx context.Context) (Overview, error)
	CloseProfileMenu(ctx context.Context) (Overview, error)
	ShowProfile(ctx context.Context) (Overview, error)
	HideProfile(ctx context.Context) (Overview, error)
	// Navigate records the dashboard in the back history and returns the
	// themed link to target.
	Navigate(ctx context.Context, target string, key theme.Key) (string, error)
}

type ServiceImpl struct {
	states        *visitor.Registry[UIState]
	users         user.Service
	navigator     navigation.Navigator
	clock         utils.Clock
	introDuration time.Duration
}

func NewService(users user.Service, navigator navigation.Navigator, clock utils.Clock, introDuration time.Duration) *ServiceImpl {
	return &ServiceImpl{
		states:        visitor.NewRegistry("dashboard", func() *UIState { return &UIState{} }, clock),
		users:         users,
		navigator:     navigator,
		clock:         clock,
		introDuration: introDuration,
	}
}

func (s *ServiceImpl) Open(ctx context.Context) (Overview, error) {
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to open dashboard: %w", err)
	}

	var ui UIState
	err = s.states.Reset(session.VisitorId(), func(state *UIState) error {
		ui = *state
		return nil
	})
	if err != nil {
		return Overview{}, err
	}

	overview := s.overview(ctx, ui)
	if !session.State().IntroPlayed {
		overview.Intro = &Intro{
			Text:     "Welcome " + overview.User.DisplayName,
			Duration: s.introDuration,
		}
		if err := session.MarkIntroPlayed(); err != nil {
			return Overview{}, fmt.Errorf("failed to store intro flag: %w", err)
		}
	}
	return overview, nil
}

func (s *ServiceImpl) Current(ctx context.Context) (Overview, error) {
	return s.update(ctx, func(*UIState) {})
}

func (s *ServiceImpl) CycleBrand(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).cycleBrand)
}

func (s *ServiceImpl) ToggleTransactions(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).toggleTransactions)
}

func (s *ServiceImpl) SelectTransaction(ctx context.Context, name string) (Overview, error) {
	return s.update(ctx, func(state *UIState) { state.selectTransaction(name) })
}

func (s *ServiceImpl) CloseTransaction(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).closeTransaction)
}

func (s *ServiceImpl) ToggleProfileMenu(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).toggleProfileMenu)
}

func (s *ServiceImpl) CloseProfileMenu(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).closeProfileMenu)
}

func (s *ServiceImpl) ShowProfile(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).showProfile)
}

func (s *ServiceImpl) HideProfile(ctx context.Context) (Overview, error) {
	return s.update(ctx, (*UIState).hideProfile)
}

func (s *ServiceImpl) Navigate(ctx context.Context, target string, key theme.Key) (string, error) {
	switch target {
	case navigation.DepositPath, navigation.RequestFundsPath:
		return s.navigator.GoTo(ctx, navigation.DashboardPath, target, key), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
}

// Registry exposes the per-visitor UI state so idle visitors can be swept.
func (s *ServiceImpl) Registry() visitor.Sweeper {
	return s.states
}

func (s *ServiceImpl) update(ctx context.Context, fn func(state *UIState)) (Overview, error) {
	session, err := client_state.FromContext(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to resolve visitor: %w", err)
	}
	var ui UIState
	s.states.Update(session.VisitorId(), func(state *UIState) {
		fn(state)
		ui = *state
	})
	return s.overview(ctx, ui), nil
}

func (s *ServiceImpl) overview(ctx context.Context, ui UIState) Overview {
	return Overview{
		UI:   ui,
		User: s.users.CurrentUser(ctx),
		Date: s.clock.Now().Format(dateLayout),
	}
}

// CloseMenuOnThemeChange closes the profile menu once a theme is picked from it.
func CloseMenuOnThemeChange(eb *event_bus.EventBus, service Service) func() {
	return event_bus.SubscribeTyped(eb, event_bus.ThemeChangedType, func(ctx context.Context, _ event_bus.ThemeChanged) error {
		if _, err := service.CloseProfileMenu(ctx); err != nil {
			log.Debugf("profile menu not closed: %v", err)
		}
		return nil
	})
}
