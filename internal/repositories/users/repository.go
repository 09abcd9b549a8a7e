// Package users stores every user record as one JSON array under the
// "users" key.
package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"github.com/dmitrijs2005/cipherhunt/internal/repositories/kv"
)

// Key is the kv key holding the users array.
const Key = "users"

// Repository reads and writes the users array. Records come back in stored
// order and are not normalized; that is the caller's job.
type Repository struct {
	kv     kv.Repository
	logger logging.Logger
}

func NewRepository(store kv.Repository, logger logging.Logger) *Repository {
	return &Repository{kv: store, logger: logger}
}

// List decodes the stored array.
//
// A value that is not a JSON array fails with common.ErrCorruptedData and
// nothing is dropped. Inside a valid array, records that do not decode, have
// an empty username or repeat an earlier username are skipped with a
// warning; the next Save writes the cleaned list back.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	data, err := r.kv.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.User{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w: %v", Key, common.ErrCorruptedData, err)
	}

	out := make([]models.User, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, rec := range raw {
		var u models.User
		if err := json.Unmarshal(rec, &u); err != nil {
			r.logger.Warn(ctx, "dropping undecodable user record", "index", i, "error", err)
			continue
		}
		if u.Username == "" {
			r.logger.Warn(ctx, "dropping user record without username", "index", i)
			continue
		}
		if _, dup := seen[u.Username]; dup {
			r.logger.Warn(ctx, "dropping duplicate user record", "index", i, "username", u.Username)
			continue
		}
		seen[u.Username] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

// Find returns the user with exactly this username, or common.ErrorNotFound.
func (r *Repository) Find(ctx context.Context, username string) (*models.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Username == username {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
}

// Create appends u. It fails with common.ErrDuplicateUsername when the
// username is taken (case-sensitive).
func (r *Repository) Create(ctx context.Context, u models.User) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.Username == u.Username {
			return common.ErrDuplicateUsername
		}
	}
	return r.Save(ctx, append(all, u))
}

// Update replaces the stored record with u's username, or returns
// common.ErrorNotFound.
func (r *Repository) Update(ctx context.Context, u models.User) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Username == u.Username {
			all[i] = u
			return r.Save(ctx, all)
		}
	}
	return fmt.Errorf("user %q: %w", u.Username, common.ErrorNotFound)
}

// Save overwrites the whole array.
func (r *Repository) Save(ctx context.Context, all []models.User) error {
	if all == nil {
		all = []models.User{}
	}
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", Key, err)
	}
	return r.kv.Set(ctx, Key, data)
}
