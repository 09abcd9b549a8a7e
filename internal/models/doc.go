// Package models defines the data persisted by cipherhunt: users with their
// per-level progress, and the immutable levels of the catalog.
package models
