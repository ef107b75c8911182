package models

// Column is a single player's (name, score) pair within a row.
// Name is free-form text and may be empty; Score is unbounded and never clamped.
type Column struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
