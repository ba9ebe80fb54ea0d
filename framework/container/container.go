package container

import (
	"fmt"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container the application resolves its services from.
//
// Every binding is a singleton: a factory runs on first Make and its result
// is reused. Pre-built values are registered with Instance.
type Container struct {
	mu sync.RWMutex

	// abstract → factory not yet resolved
	factories map[string]Factory

	// abstract → resolved instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		factories: make(map[string]Factory),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a factory whose result is cached after first resolution.
// Rebinding drops any cached instance.
//
//	c.Singleton("metrics", func(c *container.Container) any {
//	    return metrics.New(prometheus.NewRegistry())
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.factories[key] = factory
}

// Instance registers a pre-built value.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.factories, key)
	c.instances[key] = instance
}

// Alias registers an alternative name for an abstract.
//
//	c.Alias("config", "configuration")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container. It panics when nothing is
// bound under the name: a missing binding is a wiring bug.
//
// The factory runs without the lock held so it may resolve its own
// dependencies.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	inst, ok := c.instances[key]
	factory, bound := c.factories[key]
	c.mu.RUnlock()

	if ok {
		return inst
	}
	if !bound {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	inst = factory(c)
	c.mu.Lock()
	defer c.mu.Unlock()
	// A concurrent Make may have stored the instance first; keep that one.
	if existing, ok := c.instances[key]; ok {
		return existing
	}
	c.instances[key] = inst
	return inst
}

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasFactory := c.factories[key]
	_, hasInstance := c.instances[key]
	return hasFactory || hasInstance
}

// canonical resolves an alias to its canonical key. Callers hold mu.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	cfg := container.Resolve[*config.Config](c, "config")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// TryResolve is like Resolve but reports a missing binding or a type
// mismatch with ok=false instead of panicking.
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	var zero T
	if !c.Bound(abstract) {
		return zero, false
	}
	typed, ok := c.Make(abstract).(T)
	return typed, ok
}
