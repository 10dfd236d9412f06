// Package session owns the current authenticated identity. The identity
// is a single observable cell: only ResolveCurrentIdentity, Login,
// Logout and the transport's auth-failure hook may mutate it.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
	"github.com/hacsa-board/hacsa-cli/internal/ui"
	pkglogger "github.com/hacsa-board/hacsa-cli/pkg/logger"
)

// ErrPasswordMismatch is returned by Signup when the confirmation field
// does not match the password. Checked before any request is sent.
var ErrPasswordMismatch = errors.New("password confirmation mismatch")

// Manager resolves and caches the current identity.
type Manager struct {
	client *transport.Client
	cache  *fileCache

	mu       sync.RWMutex
	identity string
	username string
	resolved bool
	subs     []func(identity string)
}

// NewManager creates a Manager bound to the shared transport.
func NewManager(client *transport.Client) *Manager {
	return &Manager{
		client: client,
		cache:  newFileCache(),
	}
}

// Current returns the display nickname, or "" when unauthenticated.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// LoggedIn reports whether an identity is present.
func (m *Manager) LoggedIn() bool {
	return m.Current() != ""
}

// Ready reports whether the startup identity resolution has completed.
// Identity-gated affordances must not render before this is true.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolved
}

// Subscribe registers fn to run on every identity change.
func (m *Manager) Subscribe(fn func(identity string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// CachedNickname returns the advisory nickname from the previous run,
// usable for display only while resolution is in flight.
func (m *Manager) CachedNickname() string {
	user, ok := m.cache.load()
	if !ok {
		return ""
	}
	return user.Nickname
}

// ResolveCurrentIdentity asks the server who we are. Any failure,
// including an expired session, resolves to "no identity" rather than
// an error: absence of a session is a normal outcome.
func (m *Manager) ResolveCurrentIdentity(ctx context.Context) string {
	var info domain.UserInfo
	err := m.client.Get(ctx, "/api/auth/me", &info)

	m.mu.Lock()
	m.resolved = true
	m.mu.Unlock()

	if err != nil {
		pkglogger.GetLogger().Debug().Err(err).Msg("no active session")
		m.set("", "")
		return ""
	}

	m.set(info.Nickname, info.Username)
	return info.Nickname
}

// Login submits credentials. On success the identity cell and the
// advisory cache take the server-reported nickname; on failure the
// identity is left untouched and the error carries the server message.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	var info domain.UserInfo
	req := domain.LoginRequest{Username: username, Password: password}
	if err := m.client.Post(ctx, "/api/auth/login", req, &info); err != nil {
		return "", err
	}

	m.set(info.Nickname, info.Username)
	m.cache.store(cachedUser{Username: info.Username, Nickname: info.Nickname})
	return info.Nickname, nil
}

// Logout terminates the server-side session best-effort and always
// clears the local identity, so a failed network call can never leave
// a stale authenticated state on screen.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Post(ctx, "/api/auth/logout", nil, nil); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("logout request failed")
	}
	m.ClearIdentity()
}

// Signup registers a new account. The password confirmation is checked
// locally before any request is sent.
func (m *Manager) Signup(ctx context.Context, req domain.SignupRequest) error {
	if req.Password != req.PasswordConfirm {
		return ErrPasswordMismatch
	}
	return m.client.Post(ctx, "/api/auth/signup", req, nil)
}

// ClearIdentity drops the identity and the advisory cache. Used by
// Logout and the transport's auth-failure hook.
func (m *Manager) ClearIdentity() {
	m.set("", "")
	m.cache.clear()
}

// AuthFailureHook builds the transport's global 401 reaction: clear the
// identity, then force navigation to login with a notification unless
// the user is already on the login or signup view.
func (m *Manager) AuthFailureHook(nav ui.Navigator, notify ui.Notifier) func() {
	return func() {
		m.ClearIdentity()
		if v := nav.Current(); v != ui.ViewLogin && v != ui.ViewSignup {
			notify.Notify("로그인이 필요합니다.")
			nav.ToLogin()
		}
	}
}

func (m *Manager) set(nickname, username string) {
	m.mu.Lock()
	changed := m.identity != nickname
	m.identity = nickname
	m.username = username
	subs := make([]func(string), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(nickname)
	}
}
