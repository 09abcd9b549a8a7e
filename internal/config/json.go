package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cipherhunt/internal/flagx"
	"github.com/dmitrijs2005/cipherhunt/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// keep their zero value and leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	LeaderboardSize int            `json:"leaderboard_size"`
	HashAlgorithm   string         `json:"hash_algorithm"`
	OpTimeout       timex.Duration `json:"op_timeout"`
	Verbose         *bool          `json:"verbose"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LeaderboardSize != 0 {
		cfg.LeaderboardSize = jc.LeaderboardSize
	}
	if jc.HashAlgorithm != "" {
		cfg.HashAlgorithm = jc.HashAlgorithm
	}
	if jc.OpTimeout.Duration != 0 {
		cfg.OpTimeout = jc.OpTimeout.Duration
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
