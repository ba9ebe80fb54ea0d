package providers

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/km-arc/go-curp/app/http/controllers"
	"github.com/km-arc/go-curp/app/metrics"
	"github.com/km-arc/go-curp/app/services"
	"github.com/km-arc/go-curp/framework/config"
	"github.com/km-arc/go-curp/framework/container"
	gohttp "github.com/km-arc/go-curp/framework/http"
	"github.com/km-arc/go-curp/framework/http/middleware"
	"github.com/km-arc/go-curp/framework/routing"
	"github.com/km-arc/go-curp/routes"
)

// AppServiceProvider wires the CURP analyzer into the application.
//
// Bound abstracts:
//   - "metrics"             → *metrics.Metrics
//   - "analyzer"            → *services.Analyzer
//   - "controller.analysis" → *controllers.AnalysisController
//
// Boot registers the web and API routes on "router".
type AppServiceProvider struct{}

func (p *AppServiceProvider) Register(app *container.Container) {
	app.Singleton("metrics", func(c *container.Container) any {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return metrics.New(reg)
	})

	app.Singleton("analyzer", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		analyzer, err := services.NewAnalyzer(cfg.Analyzer.CacheSize, container.Resolve[*metrics.Metrics](c, "metrics"))
		if err != nil {
			panic(err)
		}
		return analyzer
	})

	app.Singleton("controller.analysis", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return controllers.NewAnalysisController(
			container.Resolve[*services.Analyzer](c, "analyzer"),
			container.Resolve[*gohttp.ViewEngine](c, "view"),
			cfg.App.Name,
		)
	})
}

func (p *AppServiceProvider) Boot(app *container.Container) {
	cfg := container.Resolve[*config.Config](app, "config")
	throttle, err := middleware.Throttle(cfg.HTTP.ThrottleRPS, cfg.HTTP.ThrottleBurst)
	if err != nil {
		panic(fmt.Sprintf("app: %v", err))
	}

	routes.Register(
		container.Resolve[*routing.Router](app, "router"),
		container.Resolve[*controllers.AnalysisController](app, "controller.analysis"),
		container.Resolve[*metrics.Metrics](app, "metrics"),
		throttle,
	)
}
