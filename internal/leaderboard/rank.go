// Package leaderboard ranks players by progress. Ranking is a pure function
// of the user records: it never mutates them and gives the same order for
// the same input.
package leaderboard

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
)

// DefaultLimit is the number of rows shown when no limit is configured.
const DefaultLimit = 100

// Entry is one leaderboard row.
type Entry struct {
	Position int
	Username string
	Solved   int
	// SolvedAt is when the Solved level was first solved; nil if unknown or
	// nothing is solved.
	SolvedAt *time.Time
}

type ranked struct {
	entry    Entry
	tiebreak int64
}

// Rank orders users by highest solved level (desc), then by the time that
// level was solved (asc, unsolved or undated last), then by username (asc),
// and keeps the first limit rows. The board never shows more than
// DefaultLimit rows: limit <= 0 or limit > DefaultLimit means DefaultLimit.
func Rank(users []models.User, levelCount int, limit int) []Entry {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	out := order(users, levelCount)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PositionOf returns the 1-based rank of username among all users, including
// those below the board cut-off, or 0 when username is unknown.
func PositionOf(users []models.User, levelCount int, username string) int {
	return Position(order(users, levelCount), username)
}

func order(users []models.User, levelCount int) []Entry {
	rows := make([]ranked, 0, len(users))
	for i := range users {
		rows = append(rows, rankUser(&users[i], levelCount))
	}

	slices.SortStableFunc(rows, func(a, b ranked) int {
		if c := cmp.Compare(b.entry.Solved, a.entry.Solved); c != 0 {
			return c
		}
		if c := cmp.Compare(a.tiebreak, b.tiebreak); c != 0 {
			return c
		}
		return cmp.Compare(a.entry.Username, b.entry.Username)
	})

	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
		out[i].Position = i + 1
	}
	return out
}

func rankUser(u *models.User, levelCount int) ranked {
	solved := progress.Highest(u, levelCount)
	r := ranked{
		entry:    Entry{Username: u.Username, Solved: solved},
		tiebreak: math.MaxInt64,
	}
	if solved == 0 {
		return r
	}
	if at := u.Progress[solved].SolvedAt; at != nil {
		t := *at
		r.entry.SolvedAt = &t
		r.tiebreak = t.UnixNano()
	}
	return r
}

// Position returns the 1-based rank of username in entries, or 0 when the
// user is not listed.
func Position(entries []Entry, username string) int {
	for _, e := range entries {
		if e.Username == username {
			return e.Position
		}
	}
	return 0
}
