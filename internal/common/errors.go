// Package common defines sentinel errors and small helpers shared by every
// layer of cipherhunt. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrCorruptedData = errors.New("corrupted stored data")

	// Credential errors.
	ErrDuplicateUsername  = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Game errors.
	ErrEmptySubmission = errors.New("empty submission")
	ErrUnknownLevel    = errors.New("unknown level")
	ErrLevelLocked     = errors.New("level is locked")
)
