package models

// Level is one riddle of the catalog. Levels are numbered densely from 1.
type Level struct {
	ID     int    `yaml:"id"`
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}
