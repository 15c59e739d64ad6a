package domain

// State is the lifecycle of a browsing session.
type State string

const (
	// StateLoading is the initial state while the index is fetched.
	StateLoading State = "loading"

	// StateReady means the index is loaded and queries are served.
	StateReady State = "ready"

	// StateFailed means the load failed. It is terminal for the session.
	StateFailed State = "failed"
)

// StatusText returns the text shown in the status indicator.
func (s State) StatusText() string {
	switch s {
	case StateLoading:
		return "loading…"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return string(s)
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == StateFailed
}
