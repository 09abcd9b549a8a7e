// Package services contains the application services of cipherhunt:
// authentication, game progression, the leaderboard and per-user notes.
//
// State is explicit. A *Session returned by AuthService is the only handle
// on the logged-in player; it is passed into every game and notes call
// instead of living in a package-level variable.
//
// All writes that read-modify-write the users array run inside one SQLite
// transaction (dbx.WithTx).
package services
