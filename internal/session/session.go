// ABOUTME: Session controller owning the authenticated/unauthenticated state
// ABOUTME: Derives role from the stored token and notifies subscribers on change

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/token"
	"github.com/smartsales365/console/internal/tokenstore"
)

// ErrInvalidCredentials is the single error surfaced for a rejected login.
// Wrong password and unreachable backend render the same message; the
// underlying cause goes to the log, never to the user.
var ErrInvalidCredentials = errors.New("invalid credentials or server error")

// State is a snapshot of the session. Role is derived from the stored access
// token and recomputed on every transition, never cached independently.
type State struct {
	Authenticated bool
	Role          token.Role
	RoleLabel     string // raw role claim for display
	Username      string
	ExpiresAt     time.Time
}

// Controller is the single source of truth for authentication state. It is
// constructed once and passed to the commands and views that need it.
type Controller struct {
	store  *tokenstore.Store
	client *api.Client

	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

// NewController creates a Controller over the given store and API client.
// Call Load before first use to compute the startup state.
func NewController(store *tokenstore.Store, client *api.Client) *Controller {
	return &Controller{store: store, client: client}
}

// Load computes the initial state from the persisted token pair. A stored
// token always yields an authenticated session; a token that fails to decode
// authenticates with an unknown role, since the guard checks only the
// boolean and the backend enforces real authorization.
func (c *Controller) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	pair, ok := c.store.Read()
	if !ok {
		c.state = State{}
		return
	}
	c.state = stateFromToken(pair.Access)
}

// State returns the current session snapshot
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Authenticated reports whether the session is authenticated
func (c *Controller) Authenticated() bool {
	return c.State().Authenticated
}

// Role returns the current role, RoleUnknown when unauthenticated
func (c *Controller) Role() token.Role {
	return c.State().Role
}

// Subscribe registers a listener invoked after every state transition.
// Listeners run synchronously on the transitioning goroutine.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Login exchanges credentials for a token pair, persists it, and moves to
// the authenticated state. Any backend rejection or transport failure maps
// to ErrInvalidCredentials.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	creds, err := c.client.Authenticate(ctx, username, password)
	if err != nil {
		slog.Debug("login rejected", "username", username, "error", err)
		return ErrInvalidCredentials
	}

	return c.Adopt(tokenstore.Pair{Access: creds.Access, Refresh: creds.Refresh})
}

// Adopt persists an already-issued token pair and transitions to the
// authenticated state. The token is decoded but not validated; a malformed
// token still authenticates, carrying the unknown role.
func (c *Controller) Adopt(pair tokenstore.Pair) error {
	if err := c.store.Write(pair); err != nil {
		return err
	}

	c.mu.Lock()
	c.state = stateFromToken(pair.Access)
	state := c.state
	listeners := c.listeners
	c.mu.Unlock()

	notify(listeners, state)
	return nil
}

// Logout clears the stored pair and moves to the unauthenticated state.
// Idempotent: logging out an unauthenticated session only re-clears the
// store. In-flight requests issued before Logout are not cancelled; callers
// must discard their results by re-checking Authenticated.
func (c *Controller) Logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}

	c.mu.Lock()
	c.state = State{}
	state := c.state
	listeners := c.listeners
	c.mu.Unlock()

	notify(listeners, state)
	return nil
}

func notify(listeners []func(State), state State) {
	for _, fn := range listeners {
		fn(state)
	}
}

// stateFromToken derives an authenticated State from an access token,
// downgrading decode failures to the unknown role.
func stateFromToken(access string) State {
	claims, err := token.Decode(access)
	if err != nil {
		slog.Debug("stored token failed to decode", "error", err)
		return State{
			Authenticated: true,
			Role:          token.RoleUnknown,
			RoleLabel:     token.FallbackRole,
		}
	}

	return State{
		Authenticated: true,
		Role:          token.ParseRole(claims.Role),
		RoleLabel:     claims.Role,
		Username:      claims.Username,
		ExpiresAt:     claims.ExpiresAt,
	}
}
