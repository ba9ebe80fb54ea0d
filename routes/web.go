package routes

import (
	"net/http"

	"github.com/km-arc/go-curp/app/http/controllers"
	"github.com/km-arc/go-curp/app/metrics"
	"github.com/km-arc/go-curp/framework/routing"
	"github.com/km-arc/go-curp/resources"
)

// Register mounts the web form, the JSON API, static assets, health and
// metrics on r. throttle guards the analysis endpoints.
//
//	GET  /                       → Index
//	POST /analizar               → Analyze
//	POST /api/v1/analyze         → Store
//	GET  /api/v1/analyze/{curp}  → Show
//	GET  /api/v1/states          → States
//	GET  /health                 → Health
//	GET  /metrics                → Prometheus
//
// Unknown /api/v1 routes and wrong verbs get JSON 404 / 405 envelopes.
func Register(r *routing.Router, c *controllers.AnalysisController, m *metrics.Metrics, throttle func(http.Handler) http.Handler) {
	r.Middleware(m.Instrument)

	r.Get("/health", c.Health)
	r.Mount("/metrics", m.Handler())
	r.Static("/static", resources.Static())

	r.Get("/", c.Index)
	r.Group(func(web *routing.Router) {
		web.Middleware(throttle)
		web.Post("/analizar", c.Analyze)
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Middleware(throttle)
		api.NotFound(c.NotFound)
		api.MethodNotAllowed(c.MethodNotAllowed)
		api.Post("/analyze", c.Store)
		api.Get("/analyze/{curp}", c.Show)
		api.Get("/states", c.States)
	})
}
