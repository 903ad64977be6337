package service

import (
	"context"
	"sync"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/singleflight"
)

var _ interfaces.RemoteLoader = (*RemoteLoader)(nil)

type remoteState struct {
	state     domain.LoadState
	container interfaces.Container
}

// RemoteLoader fetches and evaluates remote entry scripts on demand.
// Loads are deduplicated per URL; a failed URL is retried by the next Load.
type RemoteLoader struct {
	scripts     interfaces.ScriptSource
	runtime     interfaces.ContainerRuntime
	loadTimeout time.Duration
	metrics     *Metrics
	logger      log.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	remotes map[string]*remoteState
}

// NewRemoteLoader creates a RemoteLoader. Panics on nil dependencies or a non-positive timeout.
func NewRemoteLoader(
	scripts interfaces.ScriptSource,
	runtime interfaces.ContainerRuntime,
	loadTimeout time.Duration,
	metrics *Metrics,
	logger log.Logger,
) *RemoteLoader {
	return &RemoteLoader{
		scripts:     helpers.MustNonNil(scripts, "service.remote_loader.go: scripts is required"),
		runtime:     helpers.MustNonNil(runtime, "service.remote_loader.go: runtime is required"),
		loadTimeout: helpers.MustPositive(loadTimeout, "service.remote_loader.go: loadTimeout must be positive"),
		metrics:     helpers.MustNonNil(metrics, "service.remote_loader.go: metrics is required"),
		logger:      log.WithPrefix(helpers.MustNonNil(logger, "service.remote_loader.go: logger is required"), "component", "RemoteLoader"),
		remotes:     map[string]*remoteState{},
	}
}

func (l *RemoteLoader) Load(ctx context.Context, remote domain.ModuleDescriptor) (domain.ModuleFactory, error) {
	if remote.URL == "" {
		return nil, NewBadParameterError("remote "+remote.Name+" has no url", nil)
	}
	container, err := l.container(ctx, remote)
	if err != nil {
		return nil, err
	}
	factory, err := container.Get(remote.Module)
	if err != nil {
		return nil, NewEntityNotFoundError("remote "+remote.Name+" does not expose "+remote.Module, err)
	}
	return factory, nil
}

func (l *RemoteLoader) State(url string) domain.LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if st, ok := l.remotes[url]; ok {
		return st.state
	}
	return domain.LoadStateIdle
}

func (l *RemoteLoader) container(ctx context.Context, remote domain.ModuleDescriptor) (interfaces.Container, error) {
	if c := l.ready(remote.URL); c != nil {
		return c, nil
	}

	// The load outlives a canceled caller so that waiting callers still get the container.
	ch := l.group.DoChan(remote.URL, func() (any, error) {
		return l.load(remote)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(interfaces.Container), nil
	}
}

func (l *RemoteLoader) ready(url string) interfaces.Container {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if st, ok := l.remotes[url]; ok && st.state == domain.LoadStateReady {
		return st.container
	}
	return nil
}

func (l *RemoteLoader) load(remote domain.ModuleDescriptor) (interfaces.Container, error) {
	if c := l.ready(remote.URL); c != nil {
		return c, nil
	}
	l.setState(remote.URL, &remoteState{state: domain.LoadStateLoading})

	ctx, cancel := context.WithTimeout(context.Background(), l.loadTimeout)
	defer cancel()

	container, err := l.fetchAndEvaluate(ctx, remote)
	if err != nil {
		l.setState(remote.URL, &remoteState{state: domain.LoadStateFailed})
		l.metrics.RemoteLoads.WithLabelValues(string(domain.LoadStateFailed)).Inc()
		level.Warn(l.logger).Log("msg", "Remote entry failed to load", "remote", remote.Name, "url", remote.URL, "err", err)
		return nil, err
	}

	l.setState(remote.URL, &remoteState{state: domain.LoadStateReady, container: container})
	l.metrics.RemoteLoads.WithLabelValues(string(domain.LoadStateReady)).Inc()
	level.Info(l.logger).Log("msg", "Remote entry loaded", "remote", remote.Name, "url", remote.URL)
	return container, nil
}

func (l *RemoteLoader) fetchAndEvaluate(ctx context.Context, remote domain.ModuleDescriptor) (interfaces.Container, error) {
	src, err := l.scripts.FetchScript(ctx, remote.URL)
	if err != nil {
		return nil, NewUpstreamUnavailableError("can't fetch remote entry "+remote.URL, err)
	}
	container, err := l.runtime.Evaluate(remote.Name, remote.URL, src)
	if err != nil {
		return nil, NewUpstreamUnavailableError("can't evaluate remote entry "+remote.URL, err)
	}
	return container, nil
}

func (l *RemoteLoader) setState(url string, st *remoteState) {
	l.mu.Lock()
	l.remotes[url] = st
	l.mu.Unlock()
}
