// Package auth implements the admin gate: a single shared password that
// unlocks the admin surface for 24 hours per session. This is weak on
// purpose (no hashing, no per-admin identity, no rate limiting) and
// mirrors the storefront's historical behavior; do not harden it
// without changing the product decision first.
package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sinmabazaar/backend/internal/session"
)

// SessionTTL is how long an admin session stays valid after login.
const SessionTTL = 24 * time.Hour

// adminAuth is the session payload, kept wire-compatible with the
// legacy storefront: {"isAdmin":true,"timestamp":<epoch millis>}.
type adminAuth struct {
	IsAdmin   bool  `json:"isAdmin"`
	Timestamp int64 `json:"timestamp"`
}

// Gate guards the admin surface.
type Gate struct {
	password string
	sessions session.Store
	now      func() time.Time
}

// NewGate creates a gate that compares against password and stores the
// admin flag in sessions.
func NewGate(password string, sessions session.Store) *Gate {
	return &Gate{password: password, sessions: sessions, now: time.Now}
}

// Login verifies the password. On an exact match it marks the session
// authenticated and returns true; on a mismatch it returns false
// without touching the session.
func (g *Gate) Login(ctx context.Context, sessionID, password string) (bool, error) {
	if password != g.password {
		return false, nil
	}
	payload, err := json.Marshal(adminAuth{IsAdmin: true, Timestamp: g.now().UnixMilli()})
	if err != nil {
		return false, err
	}
	if err := g.sessions.Set(ctx, sessionID, session.KeyAdminAuth, string(payload)); err != nil {
		return false, err
	}
	return true, nil
}

// Check reports whether the session is authenticated. Expiry is lazy:
// an entry older than SessionTTL is deleted on read and treated as
// absent. A malformed entry is treated as absent without deletion.
func (g *Gate) Check(ctx context.Context, sessionID string) (bool, error) {
	raw, ok, err := g.sessions.Get(ctx, sessionID, session.KeyAdminAuth)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var a adminAuth
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return false, nil
	}
	if !a.IsAdmin {
		return false, nil
	}
	if g.now().UnixMilli()-a.Timestamp > SessionTTL.Milliseconds() {
		if err := g.sessions.Delete(ctx, sessionID, session.KeyAdminAuth); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// Logout clears the admin flag for the session.
func (g *Gate) Logout(ctx context.Context, sessionID string) error {
	return g.sessions.Delete(ctx, sessionID, session.KeyAdminAuth)
}
