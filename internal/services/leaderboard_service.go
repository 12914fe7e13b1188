package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gavtech/classement-backend/internal/dates"
	"github.com/gavtech/classement-backend/internal/models"
)

// LeaderboardService computes rankings over date windows. Global
// rankings only admit players with a complete window: their distinct
// game count over the window must equal the catalog size. The
// single-game view lists everyone.
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// RankedPlayer is one row of a global ranking. Lower total is better;
// ranks are 1-based in sort order, ties broken by player id ascending.
type RankedPlayer struct {
	Rank     int
	PlayerID uint
	Name     string
	Total    int
}

// DailyGlobal ranks complete-day players for one date by summed value.
func (s *LeaderboardService) DailyGlobal(date string) ([]RankedPlayer, error) {
	return s.globalRange(date, date)
}

// YesterdayGlobal ranks complete-day players for the date before now.
func (s *LeaderboardService) YesterdayGlobal(now time.Time) ([]RankedPlayer, error) {
	d := dates.Yesterday(now)
	return s.globalRange(d, d)
}

// WeekGlobal ranks players over the Monday-anchored current week,
// recomputed from now on every call. Completeness counts distinct
// games over the whole window.
func (s *LeaderboardService) WeekGlobal(now time.Time) ([]RankedPlayer, error) {
	return s.globalRange(dates.WeekStart(now), dates.Today(now))
}

func (s *LeaderboardService) globalRange(from, to string) ([]RankedPlayer, error) {
	var totalGames int64
	if err := s.db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}
	if totalGames == 0 {
		return []RankedPlayer{}, nil
	}

	var rows []struct {
		PlayerID uint
		Name     string
		Total    int
	}
	err := s.db.Table("scores").
		Select("players.id AS player_id, players.name AS name, SUM(scores.value) AS total").
		Joins("JOIN players ON players.id = scores.player_id").
		Where("scores.date BETWEEN ? AND ?", from, to).
		Group("players.id, players.name").
		Having("COUNT(DISTINCT scores.game_id) = ?", totalGames).
		Order("total ASC, players.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute global ranking: %w", err)
	}

	ranking := make([]RankedPlayer, len(rows))
	for i, r := range rows {
		ranking[i] = RankedPlayer{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Total:    r.Total,
		}
	}
	return ranking, nil
}

// GameRankedPlayer is one row of a single-game ranking. Value is nil
// for players who have not played; they rank after everyone who has.
type GameRankedPlayer struct {
	Rank     int
	PlayerID uint
	Name     string
	Value    *int
}

// DailyGame ranks all players for one game and date, lowest value
// first, missing values last. Ranks are positional and include the
// missing entries.
func (s *LeaderboardService) DailyGame(gameID uint, date string) ([]GameRankedPlayer, error) {
	var game models.Game
	err := s.db.First(&game, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var rows []struct {
		PlayerID uint
		Name     string
		Value    *int
	}
	err = s.db.Table("players").
		Select("players.id AS player_id, players.name AS name, scores.value AS value").
		Joins("LEFT JOIN scores ON scores.player_id = players.id AND scores.game_id = ? AND scores.date = ?", gameID, date).
		Order("CASE WHEN scores.value IS NULL THEN 1 ELSE 0 END, scores.value ASC, players.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute game ranking: %w", err)
	}

	ranking := make([]GameRankedPlayer, len(rows))
	for i, r := range rows {
		ranking[i] = GameRankedPlayer{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Value:    r.Value,
		}
	}
	return ranking, nil
}
