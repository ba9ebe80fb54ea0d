package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-curp/framework/config"
	"github.com/km-arc/go-curp/framework/container"
	gohttp "github.com/km-arc/go-curp/framework/http"
	"github.com/km-arc/go-curp/framework/providers"
	"github.com/km-arc/go-curp/framework/routing"
	"github.com/km-arc/go-curp/resources"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Singleton(), app.Instance(), app.Register() directly,
// exactly like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework core providers.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}
	c.Instance("app", app)

	// Register framework core providers (same order as Laravel)
	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.ViewServiceProvider{FS: resources.Views()})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves the application *slog.Logger from the container.
func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Views resolves *gohttp.ViewEngine from the container.
func (a *Application) Views() *gohttp.ViewEngine {
	return container.Resolve[*gohttp.ViewEngine](a.Container, "view")
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }

// Server validates the configuration, boots the application (if needed)
// and builds the HTTP server from config.
func (a *Application) Server() (*http.Server, error) {
	cfg := a.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !a.Providers.Booted() {
		a.Boot()
	}
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      a.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(a.Logger().Handler(), slog.LevelError),
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	srv, err := a.Server()
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return a.Serve(ctx, srv, ln)
}

// Serve runs srv on ln until ctx is done or a shutdown signal arrives.
func (a *Application) Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := a.Config()
	logger := a.Logger()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started",
			"app", cfg.App.Name, "addr", ln.Addr().String(), "env", cfg.App.Env)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// ── Controller ────────────────────────────────────────────────────────────────

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
