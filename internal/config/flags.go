package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/cipherhunt/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database path
//	-n int      leaderboard size
//	-a string   password digest algorithm
//	-t int      per-command timeout (seconds)
//	-v          verbose logging
//
// Only these flags are considered (see flagx.FilterArgs); -c/-config belongs
// to parseJson.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n", "-a", "-t"}, "-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local game database")
	fs.IntVar(&cfg.LeaderboardSize, "n", cfg.LeaderboardSize, "number of leaderboard rows")
	fs.StringVar(&cfg.HashAlgorithm, "a", cfg.HashAlgorithm, "password digest algorithm (sha256|argon2id)")
	opTimeout := fs.Int("t", int(cfg.OpTimeout.Seconds()), "per-command timeout (in seconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only wins when given; otherwise JSON/env values keep their precision.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OpTimeout = time.Duration(*opTimeout) * time.Second
		}
	})
}
