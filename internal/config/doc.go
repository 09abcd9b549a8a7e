// Package config loads runtime configuration for the cipherhunt CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with CIPHERHUNT_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local game database
//	-n int      number of leaderboard rows to show
//	-a string   password digest algorithm: sha256 or argon2id
//	-t int      per-command timeout (seconds)
//	-v          verbose (debug) logging
//
// # JSON schema
//
// Durations accept strings like "5s" or integer nanoseconds (timex.Duration):
//
//	{
//	  "database_path": "cipherhunt.db",
//	  "leaderboard_size": 100,
//	  "hash_algorithm": "sha256",
//	  "op_timeout": "5s",
//	  "verbose": false
//	}
package config
