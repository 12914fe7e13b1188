package dto

type GameResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Group        string `json:"group"`
	DisplayOrder int    `json:"display_order"`
}

// GameScoreEntry is one player's value for a single game on a date.
// Value is null when the player has not played that game.
type GameScoreEntry struct {
	Name  string `json:"name"`
	Value *int   `json:"value"`
}

type SaveScoresResponse struct {
	Saved int    `json:"saved"`
	Date  string `json:"date"`
}

type DayCompletionEntry struct {
	Date     string `json:"date"`
	PlayerID uint   `json:"player_id"`
	Games    int    `json:"c"`
}

type RevealResponse struct {
	Monday bool `json:"monday"`
}
