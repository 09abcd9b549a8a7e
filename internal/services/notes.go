package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
)

// NotesService reads and saves the scratchpad of the session's user.
type NotesService interface {
	Get(ctx context.Context, sess *Session) (string, error)
	Save(ctx context.Context, sess *Session, text string) error
}

type notesService struct {
	db     *sql.DB
	logger logging.Logger
}

func NewNotesService(db *sql.DB, logger logging.Logger) NotesService {
	return &notesService{db: db, logger: logger.With("service", "notes")}
}

func (n *notesService) Get(ctx context.Context, sess *Session) (string, error) {
	if !sess.Active() {
		return "", common.ErrNotLoggedIn
	}
	text, err := newRepos(n.db, n.logger).notes.Get(ctx, sess.Username())
	if err != nil {
		return "", fmt.Errorf("notes: %w", err)
	}
	return text, nil
}

func (n *notesService) Save(ctx context.Context, sess *Session, text string) error {
	if !sess.Active() {
		return common.ErrNotLoggedIn
	}
	if err := newRepos(n.db, n.logger).notes.Set(ctx, sess.Username(), text); err != nil {
		return fmt.Errorf("notes: %w", err)
	}
	n.logger.Debug(ctx, "notes saved", "username", sess.Username(), "bytes", len(text))
	return nil
}
