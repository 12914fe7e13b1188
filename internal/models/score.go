package models

// Attempt value bounds. Submissions outside the range are dropped.
const (
	MinScoreValue = 1
	MaxScoreValue = 7
)

// Score is one attempt count for one player, game and calendar date.
// The date is the server-local calendar date as YYYY-MM-DD; string
// comparison on that format is date comparison, which keeps every
// aggregation query portable across dialects.
type Score struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PlayerID uint   `gorm:"not null;uniqueIndex:idx_scores_player_game_date" json:"player_id"`
	GameID   uint   `gorm:"not null;uniqueIndex:idx_scores_player_game_date" json:"game_id"`
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_scores_player_game_date;index" json:"date"`
	Value    int    `gorm:"not null" json:"value"`
}
