// Package types contains common types used across the application
package types

// Entry represents a ranking report row.
type Entry struct {
	Rank      int    `json:"rank"`
	PlayerID  string `json:"player_id"`
	MeanScore int64  `json:"mean_score"`
}
