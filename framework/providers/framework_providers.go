package providers

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/km-arc/go-curp/framework/config"
	"github.com/km-arc/go-curp/framework/container"
	gohttp "github.com/km-arc/go-curp/framework/http"
	"github.com/km-arc/go-curp/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config". Boot installs the configured
// logger as the slog default.
//
// Bound abstracts:
//   - "config" → *config.Config
//   - "log"    → *slog.Logger
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")

	app.Singleton("log", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return config.NewLogger(cfg.App, os.Stderr)
	})
}

func (p *ConfigServiceProvider) Boot(app *container.Container) {
	slog.SetDefault(container.Resolve[*slog.Logger](app, "log"))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		logger, _ := container.TryResolve[*slog.Logger](c, "log")
		var trustProxy bool
		if cfg, ok := container.TryResolve[*config.Config](c, "config"); ok {
			trustProxy = cfg.HTTP.TrustProxy
		}
		return routing.New(logger, trustProxy)
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view" → *gohttp.ViewEngine
//
// Laravel equivalent:
//
//	// Illuminate\View\ViewServiceProvider
//	$app->singleton('view', fn($app) => new Factory(...));
type ViewServiceProvider struct {
	container.BaseProvider
	FS  fs.FS  // template filesystem, default: os.DirFS("resources")
	Ext string // file extension,      default: ".html"
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	fsys := p.FS
	if fsys == nil {
		fsys = os.DirFS("resources")
	}
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(fsys, ext, nil)
	})
}
