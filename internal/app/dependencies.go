package app

import (
	"github.com/balanceu/balanceu/internal/config"
	"github.com/balanceu/balanceu/internal/event_bus"
	"github.com/balanceu/balanceu/internal/utils"
	"github.com/balanceu/balanceu/internal/visitor"
	"github.com/balanceu/balanceu/pkg/client_state"
	"github.com/balanceu/balanceu/pkg/dashboard"
	"github.com/balanceu/balanceu/pkg/deposit"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/request_funds"
	"github.com/balanceu/balanceu/pkg/selection"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/balanceu/balanceu/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock       utils.Clock
	EventBus    *event_bus.EventBus
	ClientState client_state.Store

	UserService user.Service
	UserHandler *user.Handler

	ThemeService theme.Service
	ThemeHandler *theme.Handler

	Navigator         *navigation.NavigatorImpl
	NavigationHandler *navigation.Handler

	DashboardService *dashboard.ServiceImpl
	DashboardHandler *dashboard.Handler

	DepositFlow    *selection.Flow[deposit.Payment]
	DepositHandler *selection.Handler[deposit.Payment]

	RequestFundsFlow    *selection.Flow[request_funds.ShareLink]
	RequestFundsHandler *request_funds.Handler

	Janitor *visitor.Janitor
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	return buildDependencies(cfg, &utils.SystemClock{})
}

func buildDependencies(cfg config.Application, clock utils.Clock) *Dependencies {
	deps := &Dependencies{Clock: clock}

	deps.EventBus = event_bus.NewEventBus()
	event_bus.RegisterActivityLog(deps.EventBus)

	deps.ClientState = client_state.NewCookieStore(client_state.CookieOptions{
		Secret:     cfg.Session.Secret,
		MaxAgeDays: cfg.Session.MaxAgeDays,
		Secure:     cfg.Session.Secure,
	})

	deps.UserService = user.NewUserService(user.NewFixedRepo(), deps.EventBus)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.ThemeService = theme.NewService(deps.EventBus)
	deps.ThemeHandler = theme.NewHandler(deps.ThemeService)

	deps.Navigator = navigation.NewNavigator(clock)
	deps.NavigationHandler = navigation.NewHandler(deps.Navigator, deps.ThemeService)

	deps.DashboardService = dashboard.NewService(deps.UserService, deps.Navigator, clock, cfg.Intro.Duration)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.ThemeService)
	dashboard.CloseMenuOnThemeChange(deps.EventBus, deps.DashboardService)

	deps.DepositFlow = deposit.NewFlow(clock)
	deps.DepositHandler = selection.NewHandler(deps.DepositFlow, deps.ThemeService, deps.Navigator, deposit.Render)

	deps.RequestFundsFlow = request_funds.NewFlow(request_funds.NewShareLinks(cfg.Host, deps.EventBus), clock)
	deps.RequestFundsHandler = request_funds.NewHandler(deps.RequestFundsFlow, deps.ThemeService, deps.Navigator, request_funds.LogSharer{})

	deps.Janitor = visitor.NewJanitor(visitorTTL, janitorInterval, clock,
		deps.Navigator.Registry(),
		deps.DashboardService.Registry(),
		deps.DepositFlow.Registry(),
		deps.RequestFundsFlow.Registry(),
	)

	return deps
}
