package providers_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/km-arc/go-curp/framework/config"
	"github.com/km-arc/go-curp/framework/container"
	gohttp "github.com/km-arc/go-curp/framework/http"
	"github.com/km-arc/go-curp/framework/providers"
	"github.com/km-arc/go-curp/framework/routing"
)

func TestConfigServiceProvider(t *testing.T) {
	t.Setenv("APP_NAME", "ProviderTest")

	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&providers.ConfigServiceProvider{EnvFiles: []string{"../config/testdata/empty.env"}})

	cfg := container.Resolve[*config.Config](c, "configuration")
	if cfg.App.Name != "ProviderTest" {
		t.Errorf("App.Name: got %q want ProviderTest", cfg.App.Name)
	}

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	reg.Boot()

	if slog.Default() != container.Resolve[*slog.Logger](c, "log") {
		t.Error("Boot should install the configured logger as slog default")
	}
}

func TestRoutingServiceProvider(t *testing.T) {
	c := container.New()
	container.NewProviderRegistry(c).Register(&providers.RoutingServiceProvider{})

	r := container.Resolve[*routing.Router](c, "router")
	if r != container.Resolve[*routing.Router](c, "router") {
		t.Error("router should be a singleton")
	}
}

func TestRoutingServiceProvider_TrustProxy(t *testing.T) {
	for _, trust := range []bool{false, true} {
		c := container.New()
		cfg := config.Load("../config/testdata/empty.env")
		cfg.HTTP.TrustProxy = trust
		c.Instance("config", cfg)
		container.NewProviderRegistry(c).Register(&providers.RoutingServiceProvider{})

		r := container.Resolve[*routing.Router](c, "router")
		r.Get("/ip", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(gohttp.NewRequest(req).IP()))
		})

		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = "192.0.2.7:4242"
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		want := "192.0.2.7"
		if trust {
			want = "203.0.113.9"
		}
		if got := rr.Body.String(); got != want {
			t.Errorf("trust=%v: IP got %q want %q", trust, got, want)
		}
	}
}

func TestViewServiceProvider(t *testing.T) {
	c := container.New()
	container.NewProviderRegistry(c).Register(&providers.ViewServiceProvider{
		FS:  fstest.MapFS{"views/ping.tmpl": {Data: []byte("pong")}},
		Ext: ".tmpl",
	})

	rr := httptest.NewRecorder()
	container.Resolve[*gohttp.ViewEngine](c, "view").View(rr, http.StatusOK, "views/ping", nil)
	if rr.Body.String() != "pong" {
		t.Errorf("body: got %q want pong", rr.Body.String())
	}
}
