package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/balanceu/balanceu/internal/config"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	visitorTTL      = 2 * time.Hour
	janitorInterval = 10 * time.Minute
)

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	deps := BuildDependencies(cfg)
	r := NewRouter(deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// NewRouter builds the router with middleware and all routes registered.
func NewRouter(deps *Dependencies) *mux.Router {
	r := mux.NewRouter()
	SetupMiddleware(r, deps)
	RegisterRoutes(r, deps)
	return r
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.deps.Janitor.Run(ctx)

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
