package dto

type PodiumCounts struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

type PlayerStatsResponse struct {
	PodiumDay  PodiumCounts `json:"podium_day"`
	PodiumWeek PodiumCounts `json:"podium_week"`
}

// GameStatsResponse reports the complete-day average and the best
// player for one game. Both are null when no eligible rows exist.
type GameStatsResponse struct {
	Game       string   `json:"game"`
	AvgScore   *float64 `json:"avg_score"`
	BestPlayer *string  `json:"best_player"`
}

type PlayerAverageEntry struct {
	Player string  `json:"player"`
	Avg    float64 `json:"avg"`
}
