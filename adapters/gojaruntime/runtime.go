// Package gojaruntime evaluates module federation entry scripts in an embedded JavaScript VM.
//
// An entry script registers its container as a global named after the remote
// (window[scope]); the container exposes init(shareScope) and get(module).
package gojaruntime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/interfaces"
	"github.com/farism/mfe-host/service"

	"github.com/dop251/goja"
)

type runtime struct {
	timeout time.Duration
}

// NewRuntime creates an interfaces.ContainerRuntime. Script evaluation and every container call
// are interrupted after timeout. Panics on a non-positive timeout.
func NewRuntime(timeout time.Duration) *runtime {
	return &runtime{
		timeout: helpers.MustPositive(timeout, "gojaruntime.runtime.go: timeout must be positive"),
	}
}

// Evaluate runs src in a fresh VM, looks up the container registered as scope and initializes it
// with an empty share scope.
func (r *runtime) Evaluate(scope, url string, src []byte) (interfaces.Container, error) {
	vm := goja.New()
	global := vm.GlobalObject()
	for _, alias := range []string{"window", "self"} {
		if err := vm.Set(alias, global); err != nil {
			return nil, service.NewInternalServerError("can't prepare script runtime", err)
		}
	}

	c := &container{vm: vm, scope: scope, timeout: r.timeout}
	err := c.guard(func() error {
		if _, err := vm.RunScript(url, string(src)); err != nil {
			return service.NewUpstreamUnavailableError(fmt.Sprintf("remote entry %s failed to evaluate", url), err)
		}

		v := global.Get(scope)
		if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
			return service.NewUpstreamUnavailableError(fmt.Sprintf("remote entry %s registered no container %q", url, scope), nil)
		}
		c.obj = v.ToObject(vm)

		if init, ok := goja.AssertFunction(c.obj.Get("init")); ok {
			res, err := init(c.obj, vm.NewObject())
			if err == nil {
				_, err = settle(res)
			}
			if err != nil {
				return service.NewUpstreamUnavailableError(fmt.Sprintf("container %q failed to initialize", scope), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// container serializes access to its VM; goja runtimes are not goroutine safe.
type container struct {
	mu      sync.Mutex
	vm      *goja.Runtime
	obj     *goja.Object
	scope   string
	timeout time.Duration
}

func (c *container) Get(module string) (domain.ModuleFactory, error) {
	var factory goja.Callable
	err := c.guard(func() error {
		get, ok := goja.AssertFunction(c.obj.Get("get"))
		if !ok {
			return service.NewUpstreamUnavailableError(fmt.Sprintf("container %q has no get function", c.scope), nil)
		}
		res, err := get(c.obj, c.vm.ToValue(module))
		if err == nil {
			res, err = settle(res)
		}
		if err != nil {
			return service.NewEntityNotFoundError(fmt.Sprintf("container %q does not expose %s", c.scope, module), err)
		}
		factory, ok = goja.AssertFunction(res)
		if !ok {
			return service.NewEntityNotFoundError(fmt.Sprintf("container %q returned no factory for %s", c.scope, module), nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return func() (any, error) {
		var out any
		err := c.guard(func() error {
			v, err := factory(goja.Undefined())
			if err == nil {
				v, err = settle(v)
			}
			if err != nil {
				return fmt.Errorf("factory of %s/%s failed: %w", c.scope, module, err)
			}
			out = v.Export()
			return nil
		})
		return out, err
	}, nil
}

// guard runs fn holding the VM lock and interrupts the VM once the timeout elapses.
func (c *container) guard(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := startWatchdog(c.vm, c.timeout)
	defer w.stop()
	return fn()
}

// watchdog interrupts a VM after a timeout unless stopped first.
// A callback that fires late, after stop, leaves the VM untouched.
type watchdog struct {
	mu      sync.Mutex
	vm      *goja.Runtime
	timer   *time.Timer
	stopped bool
}

func startWatchdog(vm *goja.Runtime, timeout time.Duration) *watchdog {
	w := &watchdog{vm: vm}
	w.timer = time.AfterFunc(timeout, w.fire)
	return w
}

func (w *watchdog) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stopped {
		w.vm.Interrupt("timed out")
	}
}

func (w *watchdog) stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	w.timer.Stop()
	w.vm.ClearInterrupt()
}

// settle unwraps a promise that has already settled; pending promises are an error.
func settle(v goja.Value) (goja.Value, error) {
	if v == nil {
		return goja.Undefined(), nil
	}
	p, ok := v.Export().(*goja.Promise)
	if !ok {
		return v, nil
	}
	switch p.State() {
	case goja.PromiseStateFulfilled:
		return p.Result(), nil
	case goja.PromiseStateRejected:
		return nil, fmt.Errorf("promise rejected: %v", p.Result())
	default:
		return nil, errors.New("promise is still pending")
	}
}
