// Package container provides a small IoC (Inversion of Control) container
// and Service Provider system.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Serve requests
//
// # Bindings
//
//	// Singleton — created once, reused
//	c.Singleton("metrics", func(c *container.Container) any {
//	    return metrics.New(prometheus.NewRegistry())
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	raw := c.Make("metrics")                                  // untyped
//	m := container.Resolve[*metrics.Metrics](c, "metrics")    // typed, panics on mismatch
//	m, ok := container.TryResolve[*metrics.Metrics](c, "metrics")
//
// Go has no runtime constructor reflection, so auto-wiring is replaced by
// explicit factory functions.
package container
