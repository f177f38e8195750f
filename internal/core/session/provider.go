// Package session owns the per-session AuthState. A Provider is created when a
// session starts, is the only writer of its state, and fans snapshots out to
// any number of readers until Close.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

const DefaultResolveTimeout = 5 * time.Second

// IdentitySource resolves who is behind the session. A nil identity with a
// nil error means the session is anonymous.
type IdentitySource interface {
	CurrentIdentity(ctx context.Context) (*domain.Identity, error)
}

// ProfileLoader fetches the profile of an identity.
type ProfileLoader interface {
	LoadProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// Option configures a Provider.
type Option func(*Provider)

// WithResolveTimeout bounds every resolution attempt.
func WithResolveTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger used for absorbed resolution failures.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provider) { p.log = log }
}

// Provider holds the AuthState of one session.
type Provider struct {
	identities IdentitySource
	profiles   ProfileLoader
	timeout    time.Duration
	log        zerolog.Logger

	mu     sync.Mutex
	state  domain.AuthState
	gen    uint64
	subs   map[uint64]chan domain.AuthState
	nextID uint64
	closed bool
}

// NewProvider returns a Provider in the initial loading state.
func NewProvider(identities IdentitySource, profiles ProfileLoader, opts ...Option) *Provider {
	p := &Provider{
		identities: identities,
		profiles:   profiles,
		timeout:    DefaultResolveTimeout,
		log:        zerolog.Nop(),
		state:      domain.AuthState{Loading: true},
		subs:       make(map[uint64]chan domain.AuthState),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Snapshot returns the current state.
func (p *Provider) Snapshot() domain.AuthState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe returns a channel carrying the current snapshot followed by every
// later one. A slow reader only ever misses intermediate snapshots, never the
// latest. The channel is closed by cancel or by Close.
func (p *Provider) Subscribe() (<-chan domain.AuthState, func()) {
	ch := make(chan domain.AuthState, 1)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	ch <- p.state
	p.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if sub, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(sub)
			}
		})
	}
}

// Start runs Resolve in the background.
func (p *Provider) Start(ctx context.Context) {
	go p.Resolve(ctx)
}

// Resolve performs the initial resolution. Whatever happens (errors, a
// source ignoring ctx, the timeout) it ends with Loading=false.
func (p *Provider) Resolve(ctx context.Context) domain.AuthState {
	gen := p.generation()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type result struct {
		identity *domain.Identity
		profile  *domain.Profile
	}
	done := make(chan result, 1)
	go func() {
		id, profile := p.load(ctx)
		done <- result{identity: id, profile: profile}
	}()

	var next domain.AuthState
	select {
	case r := <-done:
		next = domain.AuthState{Identity: r.identity, Profile: r.profile}
	case <-ctx.Done():
		p.log.Warn().Err(ctx.Err()).Msg("session resolution abandoned")
	}

	p.publishIf(gen, next)
	return p.Snapshot()
}

// SignIn replaces the identity and loads its profile.
func (p *Provider) SignIn(ctx context.Context, id *domain.Identity) {
	if id == nil {
		p.SignOut()
		return
	}
	gen := p.bump()
	profile := p.loadProfile(ctx, id)
	p.publishIf(gen, domain.AuthState{Identity: id, Profile: profile})
}

// TokenRefreshed is handled like a new sign-in: the profile is reloaded.
func (p *Provider) TokenRefreshed(ctx context.Context, id *domain.Identity) {
	p.SignIn(ctx, id)
}

// UserUpdated reloads the profile of the current identity.
func (p *Provider) UserUpdated(ctx context.Context) {
	p.mu.Lock()
	id := p.state.Identity
	gen := p.gen
	p.mu.Unlock()
	if id == nil {
		return
	}
	profile := p.loadProfile(ctx, id)
	p.publishIf(gen, domain.AuthState{Identity: id, Profile: profile})
}

// SignOut clears identity and profile.
func (p *Provider) SignOut() {
	gen := p.bump()
	p.publishIf(gen, domain.AuthState{})
}

// Close tears the session down. Later writes are dropped and all
// subscriptions are closed.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}

func (p *Provider) load(ctx context.Context) (*domain.Identity, *domain.Profile) {
	if p.identities == nil {
		return nil, nil
	}
	id, err := p.identities.CurrentIdentity(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("identity resolution failed")
		return nil, nil
	}
	if id == nil || ctx.Err() != nil {
		return nil, nil
	}
	return id, p.loadProfile(ctx, id)
}

// loadProfile returns nil on any failure so that a missing role never grants
// more than "user".
func (p *Provider) loadProfile(ctx context.Context, id *domain.Identity) *domain.Profile {
	if p.profiles == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	profile, err := p.profiles.LoadProfile(ctx, id.ID)
	if err != nil {
		p.log.Warn().Err(err).Str("user_id", id.ID).Msg("profile load failed")
		return nil
	}
	return profile
}

func (p *Provider) generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

func (p *Provider) bump() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	return p.gen
}

// publishIf installs next unless a newer write started after gen was read.
func (p *Provider) publishIf(gen uint64, next domain.AuthState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		return
	}
	p.gen++
	p.state = next
	for _, ch := range p.subs {
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}
}
