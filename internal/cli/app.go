package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/config"
	"github.com/dmitrijs2005/cipherhunt/internal/cryptox"
	"github.com/dmitrijs2005/cipherhunt/internal/filex"
	"github.com/dmitrijs2005/cipherhunt/internal/levels"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
	"github.com/dmitrijs2005/cipherhunt/internal/services"
	"github.com/dmitrijs2005/cipherhunt/internal/storage"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	authService  services.AuthService
	gameService  services.GameService
	boardService services.LeaderboardService
	notesService services.NotesService
	session      *services.Session
	reader       *bufio.Reader
	out          io.Writer
	now          func() time.Time
}

// NewApp opens the database at c.DatabasePath, migrates it and wires the
// services. The caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	alg, err := cryptox.ParseAlgorithm(c.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	tracker := progress.NewTracker(levels.Default())
	return newApp(c, logger, db, tracker, alg, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, tracker *progress.Tracker, alg cryptox.Algorithm, in io.Reader, out io.Writer) *App {
	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		authService:  services.NewAuthService(db, tracker, alg, logger),
		gameService:  services.NewGameService(db, tracker, logger),
		boardService: services.NewLeaderboardService(db, tracker, c.LeaderboardSize, logger),
		notesService: services.NewNotesService(db, logger),
		reader:       bufio.NewReader(in),
		out:          out,
		now:          time.Now,
	}
}

// Run restores the previous session, if any, and serves the REPL until the
// user quits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("cipherhunt")+" (type 'help' for commands)")

	opCtx, cancel := a.opContext(ctx)
	s, err := a.authService.Restore(opCtx)
	cancel()
	if err != nil {
		a.report(ctx, err)
	}
	if s != nil {
		a.session = s
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.Username())
		a.showCurrent()
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s) ", a.session.Username(), a.gameService.Summary(a.session))
}

// opContext bounds a single storage operation.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.OpTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OpTimeout)
}

// report turns err into a one-line message for the player.
func (a *App) report(ctx context.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		msg = "Username already exists."
	case errors.Is(err, common.ErrInvalidCredentials):
		msg = "Invalid username or password."
	case errors.Is(err, common.ErrEmptyUsername):
		msg = "Username must not be empty."
	case errors.Is(err, common.ErrLevelLocked):
		msg = "That level is locked. Solve the previous one first."
	case errors.Is(err, common.ErrUnknownLevel):
		msg = "No such level."
	case errors.Is(err, common.ErrNotLoggedIn):
		msg = "Please login first."
	case errors.Is(err, common.ErrCorruptedData):
		msg = "Stored game data is corrupted and was left untouched."
	case errors.Is(err, context.DeadlineExceeded):
		msg = "Operation timed out."
	default:
		a.logger.Error(ctx, "command failed", "error", err)
		msg = "Something went wrong: " + err.Error()
	}
	a.logger.Debug(ctx, "command error", "error", err)
	fmt.Fprintln(a.out, renderError(msg))
}
