// Package notes keeps one free-text scratchpad per user under
// "notes_<username>".
package notes

import (
	"context"

	"github.com/dmitrijs2005/cipherhunt/internal/repositories/kv"
)

// KeyPrefix is prepended to the username to form the kv key.
const KeyPrefix = "notes_"

type Repository struct {
	kv kv.Repository
}

func NewRepository(store kv.Repository) *Repository {
	return &Repository{kv: store}
}

// Key returns the kv key for username's notes.
func Key(username string) string {
	return KeyPrefix + username
}

// Get returns the notes of username, "" if none were saved.
func (r *Repository) Get(ctx context.Context, username string) (string, error) {
	v, err := r.kv.Get(ctx, Key(username))
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set replaces the notes of username. Empty text removes the key.
func (r *Repository) Set(ctx context.Context, username, text string) error {
	if text == "" {
		return r.kv.Delete(ctx, Key(username))
	}
	return r.kv.Set(ctx, Key(username), []byte(text))
}
