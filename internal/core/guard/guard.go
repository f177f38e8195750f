// Package guard gates disclosure of administrator-only content.
//
// A Guard starts in Resolving and moves exactly once to either Denied or
// Authorized. Denied fires a single replace-navigation; Authorized reveals the
// protected content. Once terminal, the verdict is kept for the lifetime of
// the guard: it gates the initial disclosure and does not re-authorize.
package guard

import (
	"context"
	"sync"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// DefaultDestination is where denied viewers are sent.
const DefaultDestination = "/"

// State is the guard's position in its lifecycle.
type State uint8

const (
	Resolving State = iota
	Denied
	Authorized
)

func (s State) String() string {
	switch s {
	case Denied:
		return "denied"
	case Authorized:
		return "authorized"
	default:
		return "resolving"
	}
}

// Terminal reports whether s is Denied or Authorized.
func (s State) Terminal() bool { return s != Resolving }

// View is what the guarded tree should currently show.
type View uint8

const (
	Placeholder View = iota
	Children
)

// Navigator replaces the current location. Implementations must not call
// back into the Guard.
type Navigator interface {
	Replace(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Replace(path string) { f(path) }

// Source is anything that publishes AuthState snapshots.
type Source interface {
	Subscribe() (<-chan domain.AuthState, func())
}

// Option configures a Guard.
type Option func(*Guard)

// WithDestination overrides the denial destination.
func WithDestination(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.destination = path
		}
	}
}

// Guard is one mounted instance of the gate.
type Guard struct {
	nav         Navigator
	destination string

	mu        sync.Mutex
	state     State
	navigated bool
	unmounted bool
}

// New returns a mounted guard in the Resolving state.
func New(nav Navigator, opts ...Option) *Guard {
	g := &Guard{nav: nav, destination: DefaultDestination}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Observe feeds one derived state into the guard and returns the resulting
// state. Repeated or late observations never navigate twice, and nothing
// happens after Unmount.
func (g *Guard) Observe(s domain.AdminState) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unmounted || g.state.Terminal() || s.IsLoading {
		return g.state
	}

	if !s.IsAdmin {
		g.state = Denied
		if !g.navigated {
			g.navigated = true
			if g.nav != nil {
				g.nav.Replace(g.destination)
			}
		}
		return g.state
	}

	g.state = Authorized
	return g.state
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// View returns Children only once the guard has been Authorized.
func (g *Guard) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Authorized && !g.unmounted {
		return Children
	}
	return Placeholder
}

// Destination returns the denial destination.
func (g *Guard) Destination() string { return g.destination }

// Unmount discards the guard. Any observation delivered afterwards is a no-op.
func (g *Guard) Unmount() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unmounted = true
}

// Run subscribes to src and feeds every snapshot through DeriveAdminState
// into the guard until it reaches a terminal state, ctx is done or src closes
// the subscription. Cancellation unmounts the guard.
func (g *Guard) Run(ctx context.Context, src Source) State {
	updates, cancel := src.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			g.Unmount()
			return g.State()
		case s, ok := <-updates:
			if !ok {
				return g.State()
			}
			if ctx.Err() != nil {
				g.Unmount()
				return g.State()
			}
			if st := g.Observe(domain.DeriveAdminState(s)); st.Terminal() {
				return st
			}
		}
	}
}
