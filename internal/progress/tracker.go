// Package progress implements per-user level progression: normalization of
// stored progress, idempotent solve recording, and the unlock rule (level i
// is playable iff i <= highestSolved+1).
package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/levels"
	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the verdict on a submitted answer.
type Result int

const (
	Incorrect Result = iota
	Correct
)

func (r Result) String() string {
	if r == Correct {
		return "Correct"
	}
	return "Incorrect"
}

// Highest returns the greatest level in 1..n marked solved, or 0. It does
// not modify u.
func Highest(u *models.User, n int) int {
	highest := 0
	for lvl, p := range u.Progress {
		if lvl < 1 || lvl > n || !p.IsSolved {
			continue
		}
		highest = max(highest, lvl)
	}
	return highest
}

// Normalize makes u.Progress hold exactly the levels 1..n (missing ones
// default to unsolved, out-of-range ones are dropped) and recomputes
// HighestSolved. Applying it twice changes nothing.
func Normalize(u *models.User, n int) {
	if u.Progress == nil {
		u.Progress = make(map[int]models.LevelProgress, n)
	}
	for lvl := range u.Progress {
		if lvl < 1 || lvl > n {
			delete(u.Progress, lvl)
		}
	}
	for lvl := 1; lvl <= n; lvl++ {
		if _, ok := u.Progress[lvl]; !ok {
			u.Progress[lvl] = models.LevelProgress{}
		}
	}
	u.HighestSolved = Highest(u, n)
}

// NormalizeAnswer trims surrounding whitespace and lower-cases s.
func NormalizeAnswer(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Tracker applies the progression rules against a catalog.
type Tracker struct {
	catalog *levels.Catalog
	now     func() time.Time
}

// NewTracker returns a Tracker stamping solves with time.Now.
func NewTracker(c *levels.Catalog) *Tracker {
	return &Tracker{catalog: c, now: time.Now}
}

// WithClock replaces the solve-time source.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	return &Tracker{catalog: t.catalog, now: now}
}

// Catalog returns the catalog the tracker plays against.
func (t *Tracker) Catalog() *levels.Catalog {
	return t.catalog
}

// Normalize is Normalize against the tracker's catalog size.
func (t *Tracker) Normalize(u *models.User) {
	Normalize(u, t.catalog.Len())
}

// RecordAttempt checks answer against level and, on the first correct
// answer, marks the level solved, stamps the current time and raises
// HighestSolved. The returned bool reports whether u changed and must be
// persisted. A wrong answer or a re-submission of a solved level leaves u
// untouched.
func (t *Tracker) RecordAttempt(u *models.User, level int, answer string) (Result, bool, error) {
	l, err := t.catalog.Get(level)
	if err != nil {
		return Incorrect, false, err
	}

	if NormalizeAnswer(answer) != NormalizeAnswer(l.Answer) {
		return Incorrect, false, nil
	}

	t.Normalize(u)
	if u.Progress[level].IsSolved {
		return Correct, false, nil
	}

	at := t.now()
	u.Progress[level] = models.LevelProgress{IsSolved: true, SolvedAt: &at}
	u.HighestSolved = max(u.HighestSolved, level)
	return Correct, true, nil
}

// IsUnlocked reports whether level may be played by u.
func (t *Tracker) IsUnlocked(u *models.User, level int) bool {
	if level < 1 || level > t.catalog.Len() {
		return false
	}
	return level <= u.HighestSolved+1
}

// NextLevel is the level a fresh session opens at: the unlock frontier,
// capped at the last level.
func (t *Tracker) NextLevel(u *models.User) int {
	return min(u.HighestSolved+1, t.catalog.Len())
}

// Describe renders "3 / 10" style progress for u.
func (t *Tracker) Describe(u *models.User) string {
	return fmt.Sprintf("%d / %d", u.HighestSolved, t.catalog.Len())
}
