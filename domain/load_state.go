package domain

// LoadState is the lifecycle state of a remote entry script.
type LoadState string

const (
	LoadStateIdle    LoadState = "idle" // never requested
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateFailed  LoadState = "failed"
)

// ModuleFactory yields the exposed module of a loaded federation container.
type ModuleFactory func() (any, error)
