package container_test

import (
	"testing"

	"github.com/km-arc/go-curp/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalled int
	bootCalled     bool
}

func (p *eagerProvider) Register(app *container.Container) {
	p.registerCalled++
	app.Singleton("eager-svc", func(c *container.Container) any { return "eager" })
}

func (p *eagerProvider) Boot(app *container.Container) {
	p.bootCalled = true
}

// multiProvider registers multiple abstracts.
type multiProvider struct {
	container.BaseProvider
}

func (p *multiProvider) Register(app *container.Container) {
	app.Singleton("alpha", func(c *container.Container) any { return "α" })
	app.Singleton("beta", func(c *container.Container) any { return "β" })
}

// dependentProvider resolves eager-svc during Boot.
type dependentProvider struct {
	container.BaseProvider
	seen string
}

func (p *dependentProvider) Register(app *container.Container) {}

func (p *dependentProvider) Boot(app *container.Container) {
	p.seen = container.Resolve[string](app, "eager-svc")
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_Provider_RegisterCalled(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	reg.Register(p)

	if p.registerCalled != 1 {
		t.Error("Register() should be called immediately")
	}
}

func TestRegistry_Provider_BootCalledAfterBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	reg.Register(p)

	if p.bootCalled {
		t.Error("Boot() should NOT be called before registry.Boot()")
	}

	reg.Boot()

	if !p.bootCalled {
		t.Error("Boot() should be called after registry.Boot()")
	}
}

func TestRegistry_Provider_ServiceResolvable(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&eagerProvider{})
	reg.Boot()

	got := c.Make("eager-svc").(string)
	if got != "eager" {
		t.Errorf("eager-svc: got %q, want 'eager'", got)
	}
}

func TestRegistry_Boot_IdempotentCallsAreIgnored(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&eagerProvider{})

	reg.Boot()
	reg.Boot() // second call should be no-op

	if !reg.Booted() {
		t.Error("Booted() should be true after Boot()")
	}
}

func TestRegistry_Booted_FalseBeforeBoot(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	if reg.Booted() {
		t.Error("Booted() should be false before Boot()")
	}
}

func TestRegistry_DuplicateRegister_Ignored(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	reg.Register(p)
	reg.Register(p) // second register of same instance

	if p.registerCalled != 1 {
		t.Errorf("Register() calls: got %d, want 1", p.registerCalled)
	}
	if len(reg.Providers()) != 1 {
		t.Errorf("Providers(): got %d, want 1", len(reg.Providers()))
	}
}

// ── Multiple providers ────────────────────────────────────────────────────────

func TestRegistry_MultipleProviders_AllServicesResolvable(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&multiProvider{})
	reg.Register(&eagerProvider{})
	reg.Boot()

	if got := c.Make("alpha").(string); got != "α" {
		t.Errorf("alpha: got %q, want 'α'", got)
	}
	if got := c.Make("beta").(string); got != "β" {
		t.Errorf("beta: got %q, want 'β'", got)
	}
	if got := c.Make("eager-svc").(string); got != "eager" {
		t.Errorf("eager-svc: got %q, want 'eager'", got)
	}
}

func TestRegistry_BootSeesBindingsOfLaterProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	dep := &dependentProvider{}
	reg.Register(dep) // registered before the provider it depends on
	reg.Register(&eagerProvider{})
	reg.Boot()

	if dep.seen != "eager" {
		t.Errorf("Boot() resolved %q, want 'eager'", dep.seen)
	}
}

// ── Boot after registration (late provider) ───────────────────────────────────

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Boot() // boot before registering

	p := &eagerProvider{}
	reg.Register(p) // register after boot

	if !p.bootCalled {
		t.Error("provider registered after Boot() should be booted immediately")
	}
}

func TestBaseProvider_Boot_NoOp(t *testing.T) {
	var p container.BaseProvider
	p.Boot(container.New()) // should not panic
}
