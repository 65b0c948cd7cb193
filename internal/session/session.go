// Package session is the per-client session state store: the server-side
// home of the cart, the wishlist, the display language and the admin
// flag. Every value is written as a whole under its key, so a mutation
// either fully replaces the previous value or leaves it intact.
package session

import "context"

// Key enumerates the session state slots.
type Key string

const (
	KeyCart      Key = "cart"
	KeyWishlist  Key = "wishlist"
	KeyLanguage  Key = "language"
	KeyAdminAuth Key = "admin_auth"
)

// Store persists session values. Get returns ok=false for an absent
// key; callers must never assume presence.
type Store interface {
	Get(ctx context.Context, sessionID string, key Key) (value string, ok bool, err error)
	Set(ctx context.Context, sessionID string, key Key, value string) error
	Delete(ctx context.Context, sessionID string, key Key) error
}
