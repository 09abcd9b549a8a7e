package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cipherhunt/internal/leaderboard"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
)

// LeaderboardService ranks every stored user.
type LeaderboardService interface {
	// Top returns the first rows of the ranking.
	Top(ctx context.Context) ([]leaderboard.Entry, error)
	// Position is the 1-based rank of username over all users, 0 if unknown.
	Position(ctx context.Context, username string) (int, error)
}

type leaderboardService struct {
	db      *sql.DB
	tracker *progress.Tracker
	limit   int
	logger  logging.Logger
}

// NewLeaderboardService constructs a LeaderboardService returning at most
// limit rows from Top, never more than leaderboard.DefaultLimit.
func NewLeaderboardService(db *sql.DB, tracker *progress.Tracker, limit int, logger logging.Logger) LeaderboardService {
	return &leaderboardService{db: db, tracker: tracker, limit: limit, logger: logger.With("service", "leaderboard")}
}

func (s *leaderboardService) rank(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	all, err := newRepos(s.db, s.logger).users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return leaderboard.Rank(all, s.tracker.Catalog().Len(), limit), nil
}

func (s *leaderboardService) Top(ctx context.Context) ([]leaderboard.Entry, error) {
	return s.rank(ctx, s.limit)
}

func (s *leaderboardService) Position(ctx context.Context, username string) (int, error) {
	all, err := newRepos(s.db, s.logger).users.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: %w", err)
	}
	return leaderboard.PositionOf(all, s.tracker.Catalog().Len(), username), nil
}
