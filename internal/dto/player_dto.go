package dto

type CreatePlayerRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CodeRequest carries the shared access code presented on login and on
// player deletion.
type CodeRequest struct {
	Code string `json:"code"`
}

type PlayerResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlayerStatusResponse is a player plus whether they have completed
// every game today.
type PlayerStatusResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// PlayerScoresResponse is a player's submissions for today, keyed by
// game id. Locked means the day is complete.
type PlayerScoresResponse struct {
	Player PlayerResponse `json:"player"`
	Date   string         `json:"date"`
	Scores map[uint]int   `json:"scores"`
	Locked bool           `json:"locked"`
}
