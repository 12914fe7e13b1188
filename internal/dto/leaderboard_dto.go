package dto

// RankingEntry is one row of a leaderboard. Score is null only in the
// single-game view, where players who have not played are still listed.
type RankingEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score *int   `json:"score"`
}
