package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/cryptox"
	"github.com/dmitrijs2005/cipherhunt/internal/levels"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
	"github.com/dmitrijs2005/cipherhunt/internal/storage"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type clock struct{ ms int64 }

func (c *clock) now() time.Time { return time.UnixMilli(c.ms) }

type fixture struct {
	db      *sql.DB
	clock   *clock
	tracker *progress.Tracker
	auth    AuthService
	game    GameService
	board   LeaderboardService
	notes   NotesService
}

func setup(t *testing.T, alg cryptox.Algorithm) *fixture {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := &clock{ms: 1_000}
	tr := progress.NewTracker(levels.Default()).WithClock(c.now)
	log := logging.NewNopLogger()

	return &fixture{
		db:      db,
		clock:   c,
		tracker: tr,
		auth:    NewAuthService(db, tr, alg, log),
		game:    NewGameService(db, tr, log),
		board:   NewLeaderboardService(db, tr, 0, log),
		notes:   NewNotesService(db, log),
	}
}

func (f *fixture) register(t *testing.T, name, pw string) *Session {
	t.Helper()
	s, err := f.auth.Register(context.Background(), name, []byte(pw))
	require.NoError(t, err)
	return s
}

func (f *fixture) nopLogger() *logging.SlogLogger { return logging.NewNopLogger() }
