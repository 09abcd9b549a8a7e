// Package session persists the "current user" pointer so a restarted CLI
// resumes where the player left off.
package session

import (
	"context"

	"github.com/dmitrijs2005/cipherhunt/internal/repositories/kv"
)

// Key holds the username of the active session; absent or empty means
// logged out.
const Key = "current_user"

type Repository struct {
	kv kv.Repository
}

func NewRepository(store kv.Repository) *Repository {
	return &Repository{kv: store}
}

// Current returns the active username or "".
func (r *Repository) Current(ctx context.Context) (string, error) {
	v, err := r.kv.Get(ctx, Key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set makes username the active session.
func (r *Repository) Set(ctx context.Context, username string) error {
	return r.kv.Set(ctx, Key, []byte(username))
}

// Clear ends the session. Clearing twice is fine.
func (r *Repository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, Key)
}
