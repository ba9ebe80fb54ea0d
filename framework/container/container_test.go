package container_test

import (
	"sync"
	"testing"

	"github.com/km-arc/go-curp/framework/container"
)

type counter struct{ n int }

func TestContainer_Singleton_Cached(t *testing.T) {
	c := container.New()
	calls := 0
	c.Singleton("counter", func(c *container.Container) any {
		calls++
		return &counter{}
	})

	if calls != 0 {
		t.Error("Singleton should not build before first Make")
	}
	a := c.Make("counter")
	b := c.Make("counter")
	if a != b {
		t.Error("Singleton should return the same instance")
	}
	if calls != 1 {
		t.Errorf("factory calls: got %d want 1", calls)
	}
}

func TestContainer_Singleton_RebindDropsInstance(t *testing.T) {
	c := container.New()
	c.Singleton("name", func(c *container.Container) any { return "first" })
	_ = c.Make("name")
	c.Singleton("name", func(c *container.Container) any { return "second" })

	if got := c.Make("name"); got != "second" {
		t.Errorf("got %v want second", got)
	}
}

func TestContainer_Singleton_ResolvesDependencies(t *testing.T) {
	c := container.New()
	c.Singleton("port", func(c *container.Container) any { return "8000" })
	c.Singleton("addr", func(c *container.Container) any {
		return ":" + container.Resolve[string](c, "port")
	})

	if got := container.Resolve[string](c, "addr"); got != ":8000" {
		t.Errorf("got %q want :8000", got)
	}
}

func TestContainer_Singleton_Concurrent(t *testing.T) {
	c := container.New()
	c.Singleton("counter", func(c *container.Container) any { return &counter{} })

	var wg sync.WaitGroup
	got := make([]any, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Make("counter")
		}(i)
	}
	wg.Wait()

	for _, v := range got[1:] {
		if v != got[0] {
			t.Fatal("concurrent Make returned different singleton instances")
		}
	}
}

func TestContainer_Instance(t *testing.T) {
	c := container.New()
	want := &counter{n: 7}
	c.Instance("counter", want)

	if got := container.Resolve[*counter](c, "counter"); got != want {
		t.Errorf("got %p want %p", got, want)
	}
	if !c.Bound("counter") {
		t.Error("Instance should be bound")
	}
}

func TestContainer_SelfBinding(t *testing.T) {
	c := container.New()
	if got := container.Resolve[*container.Container](c, "container"); got != c {
		t.Error("container should be bound to itself")
	}
}

func TestContainer_Alias(t *testing.T) {
	c := container.New()
	c.Instance("config", "cfg")
	c.Alias("config", "configuration")

	if got := c.Make("configuration"); got != "cfg" {
		t.Errorf("alias: got %v want cfg", got)
	}
	if !c.Bound("configuration") {
		t.Error("alias should report Bound")
	}
}

func TestContainer_Alias_SelfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for self alias")
		}
	}()
	container.New().Alias("x", "x")
}

func TestContainer_Make_UnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing binding")
		}
	}()
	container.New().Make("missing")
}

func TestResolve_TypeMismatchPanics(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on type mismatch")
		}
	}()
	_ = container.Resolve[string](c, "n")
}

func TestTryResolve(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	if v, ok := container.TryResolve[int](c, "n"); !ok || v != 42 {
		t.Errorf("TryResolve[int]: got (%v, %v) want (42, true)", v, ok)
	}
	if _, ok := container.TryResolve[string](c, "n"); ok {
		t.Error("TryResolve[string] on an int should report false")
	}
	if _, ok := container.TryResolve[int](c, "missing"); ok {
		t.Error("TryResolve on a missing binding should report false")
	}
}

func TestContainer_Instance_ReplacesFactory(t *testing.T) {
	c := container.New()
	c.Singleton("log", func(c *container.Container) any { return "from factory" })
	c.Instance("log", "override")

	if got := c.Make("log"); got != "override" {
		t.Errorf("got %v want override", got)
	}
}
