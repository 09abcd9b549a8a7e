package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/dbx"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
)

// LevelView is a level as seen by one player.
type LevelView struct {
	models.Level
	Unlocked bool
	Solved   bool
	SolvedAt *time.Time
}

// GameService drives level selection and answer submission for a session.
type GameService interface {
	// Levels lists every level with the session's unlocked/solved state.
	Levels(sess *Session) ([]LevelView, error)
	// Open makes level the session's current level if it is unlocked.
	Open(sess *Session, level int) (LevelView, error)
	// Current returns the level the session is playing.
	Current(sess *Session) (LevelView, error)
	// Submit checks answer for the current level and records a first solve.
	// On a correct answer the session moves on to the next level.
	Submit(ctx context.Context, sess *Session, answer string) (progress.Result, error)
	// Summary renders "solved / total".
	Summary(sess *Session) string
}

type gameService struct {
	db      *sql.DB
	tracker *progress.Tracker
	logger  logging.Logger
}

// NewGameService constructs a GameService.
func NewGameService(db *sql.DB, tracker *progress.Tracker, logger logging.Logger) GameService {
	return &gameService{db: db, tracker: tracker, logger: logger.With("service", "game")}
}

func (g *gameService) view(u *models.User, l models.Level) LevelView {
	p := u.Progress[l.ID]
	return LevelView{
		Level:    l,
		Unlocked: g.tracker.IsUnlocked(u, l.ID),
		Solved:   p.IsSolved,
		SolvedAt: p.SolvedAt,
	}
}

func (g *gameService) Levels(sess *Session) ([]LevelView, error) {
	if !sess.Active() {
		return nil, common.ErrNotLoggedIn
	}
	all := g.tracker.Catalog().All()
	out := make([]LevelView, 0, len(all))
	for _, l := range all {
		out = append(out, g.view(sess.User, l))
	}
	return out, nil
}

func (g *gameService) Open(sess *Session, level int) (LevelView, error) {
	if !sess.Active() {
		return LevelView{}, common.ErrNotLoggedIn
	}
	l, err := g.tracker.Catalog().Get(level)
	if err != nil {
		return LevelView{}, err
	}
	if !g.tracker.IsUnlocked(sess.User, level) {
		return LevelView{}, fmt.Errorf("level %d: %w", level, common.ErrLevelLocked)
	}
	sess.CurrentLevel = level
	return g.view(sess.User, l), nil
}

func (g *gameService) Current(sess *Session) (LevelView, error) {
	if !sess.Active() {
		return LevelView{}, common.ErrNotLoggedIn
	}
	l, err := g.tracker.Catalog().Get(sess.CurrentLevel)
	if err != nil {
		return LevelView{}, err
	}
	return g.view(sess.User, l), nil
}

func (g *gameService) Submit(ctx context.Context, sess *Session, answer string) (progress.Result, error) {
	if !sess.Active() {
		return progress.Incorrect, common.ErrNotLoggedIn
	}
	if strings.TrimSpace(answer) == "" {
		return progress.Incorrect, common.ErrEmptySubmission
	}

	level := sess.CurrentLevel
	if !g.tracker.IsUnlocked(sess.User, level) {
		return progress.Incorrect, fmt.Errorf("level %d: %w", level, common.ErrLevelLocked)
	}

	scratch := sess.User.Clone()
	res, _, err := g.tracker.RecordAttempt(&scratch, level, answer)
	if err != nil {
		return progress.Incorrect, err
	}
	if res != progress.Correct {
		g.logger.Debug(ctx, "wrong answer", "username", sess.Username(), "level", level)
		return progress.Incorrect, nil
	}

	// Apply to the stored record so a re-submission never restamps a solve.
	updated, err := dbx.WithTxValue(ctx, g.db, func(ctx context.Context, tx dbx.DBTX) (*models.User, error) {
		r := newRepos(tx, g.logger)
		u, err := r.users.Find(ctx, sess.Username())
		if err != nil {
			return nil, err
		}
		g.tracker.Normalize(u)

		_, changed, err := g.tracker.RecordAttempt(u, level, answer)
		if err != nil {
			return nil, err
		}
		if changed {
			if err := r.users.Update(ctx, *u); err != nil {
				return nil, err
			}
			g.logger.Info(ctx, "level solved", "username", u.Username, "level", level, "highest_solved", u.HighestSolved)
		}
		return u, nil
	})
	if err != nil {
		return progress.Incorrect, fmt.Errorf("submit: %w", err)
	}

	sess.User = updated
	if level < g.tracker.Catalog().Len() {
		sess.CurrentLevel = level + 1
	}
	return progress.Correct, nil
}

func (g *gameService) Summary(sess *Session) string {
	if !sess.Active() {
		return ""
	}
	return g.tracker.Describe(sess.User)
}
