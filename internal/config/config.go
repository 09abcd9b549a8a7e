package config

import "time"

// Config holds runtime settings for the cipherhunt CLI.
type Config struct {
	DatabasePath    string        `env:"CIPHERHUNT_DB_PATH"`
	LeaderboardSize int           `env:"CIPHERHUNT_LEADERBOARD_SIZE"`
	HashAlgorithm   string        `env:"CIPHERHUNT_HASH_ALGORITHM"`
	OpTimeout       time.Duration `env:"CIPHERHUNT_OP_TIMEOUT"`
	Verbose         bool          `env:"CIPHERHUNT_VERBOSE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "cipherhunt.db"
	c.LeaderboardSize = 100
	c.HashAlgorithm = "sha256"
	c.OpTimeout = 5 * time.Second
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
