package services

import (
	"github.com/dmitrijs2005/cipherhunt/internal/dbx"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/repositories/kv"
	"github.com/dmitrijs2005/cipherhunt/internal/repositories/notes"
	"github.com/dmitrijs2005/cipherhunt/internal/repositories/session"
	"github.com/dmitrijs2005/cipherhunt/internal/repositories/users"
)

// repos groups the repositories bound to one handle, either the database
// or an open transaction.
type repos struct {
	kv      kv.Repository
	users   *users.Repository
	session *session.Repository
	notes   *notes.Repository
}

func newRepos(db dbx.DBTX, logger logging.Logger) repos {
	store := kv.NewSQLiteRepository(db)
	return repos{
		kv:      store,
		users:   users.NewRepository(store, logger),
		session: session.NewRepository(store),
		notes:   notes.NewRepository(store),
	}
}
