package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// User is a registered player. The JSON field names are part of the stored
// format and must not change.
type User struct {
	Username      string                `json:"username"`
	PasswordHash  string                `json:"passHash"`
	Progress      map[int]LevelProgress `json:"progress"`
	HighestSolved int                   `json:"highestSolved"`
}

// Clone returns a deep copy; the progress map is not shared.
func (u User) Clone() User {
	c := u
	if u.Progress != nil {
		c.Progress = make(map[int]LevelProgress, len(u.Progress))
		for k, v := range u.Progress {
			c.Progress[k] = v.clone()
		}
	}
	return c
}

// LevelProgress is the state of one level for one user. Once IsSolved is
// set it never reverts, and SolvedAt is written exactly once.
type LevelProgress struct {
	IsSolved bool
	SolvedAt *time.Time
}

func (p LevelProgress) clone() LevelProgress {
	if p.SolvedAt == nil {
		return p
	}
	t := *p.SolvedAt
	return LevelProgress{IsSolved: p.IsSolved, SolvedAt: &t}
}

type levelProgressJSON struct {
	IsSolved json.RawMessage `json:"is_solved"`
	SolvedAt *int64          `json:"solved_at"`
}

// MarshalJSON stores SolvedAt as Unix milliseconds.
func (p LevelProgress) MarshalJSON() ([]byte, error) {
	out := struct {
		IsSolved bool   `json:"is_solved"`
		SolvedAt *int64 `json:"solved_at"`
	}{IsSolved: p.IsSolved}
	if p.SolvedAt != nil {
		ms := p.SolvedAt.UnixMilli()
		out.SolvedAt = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts is_solved as a bool or as 0/1.
func (p *LevelProgress) UnmarshalJSON(b []byte) error {
	var raw levelProgressJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := string(bytes.TrimSpace(raw.IsSolved)); v {
	case "", "null", "false", "0":
		p.IsSolved = false
	case "true", "1":
		p.IsSolved = true
	default:
		return fmt.Errorf("invalid is_solved value %s", v)
	}

	p.SolvedAt = nil
	if raw.SolvedAt != nil {
		t := time.UnixMilli(*raw.SolvedAt).UTC()
		p.SolvedAt = &t
	}
	return nil
}
