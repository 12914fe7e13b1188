package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/gavtech/classement-backend/internal/dates"
	"github.com/gavtech/classement-backend/internal/models"
)

// StatsService derives podium tallies and averages from complete-day
// rankings.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type PodiumCounts struct {
	First  int
	Second int
	Third  int
}

// PlayerPodiums are a player's lifetime and current-week podium
// tallies.
type PlayerPodiums struct {
	Day  PodiumCounts
	Week PodiumCounts
}

type completeDayRow struct {
	Date     string
	PlayerID uint
	Total    int
}

// PlayerPodiums counts how often the player placed first, second or
// third among complete-day competitors, lifetime and within the
// Monday-anchored week of now. A date awards a podium only when at
// least 2 players completed it. Players with no complete-day history
// get all zeroes.
func (s *StatsService) PlayerPodiums(playerID uint, now time.Time) (*PlayerPodiums, error) {
	var totalGames int64
	if err := s.db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	result := &PlayerPodiums{}
	if totalGames == 0 {
		return result, nil
	}

	var rows []completeDayRow
	err := s.db.Model(&models.Score{}).
		Select("date, player_id, SUM(value) AS total").
		Group("date, player_id").
		Having("COUNT(DISTINCT game_id) = ?", totalGames).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute complete days: %w", err)
	}

	appears := false
	for _, r := range rows {
		if r.PlayerID == playerID {
			appears = true
			break
		}
	}
	if !appears {
		return result, nil
	}

	byDate := make(map[string][]completeDayRow)
	for _, r := range rows {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	weekStart := dates.WeekStart(now)

	for date, ranking := range byDate {
		// A podium needs at least 2 competitors.
		if len(ranking) < 2 {
			continue
		}

		sort.Slice(ranking, func(i, j int) bool {
			if ranking[i].Total != ranking[j].Total {
				return ranking[i].Total < ranking[j].Total
			}
			return ranking[i].PlayerID < ranking[j].PlayerID
		})

		top := ranking
		if len(top) > 3 {
			top = top[:3]
		}

		inWeek := date >= weekStart

		for idx, r := range top {
			if r.PlayerID != playerID {
				continue
			}
			switch idx {
			case 0:
				result.Day.First++
				if inWeek {
					result.Week.First++
				}
			case 1:
				result.Day.Second++
				if inWeek {
					result.Week.Second++
				}
			case 2:
				result.Day.Third++
				if inWeek {
					result.Week.Third++
				}
			}
		}
	}

	return result, nil
}

// GameStats is the complete-day average and best player for one game.
// AvgScore and BestPlayer are nil when no eligible rows exist.
type GameStats struct {
	Game       string
	AvgScore   *float64
	BestPlayer *string
}

// completeDayFilter restricts scores s to rows where the owning
// (player, date) pair completed every game.
const completeDayFilter = `EXISTS (
		SELECT 1 FROM scores s2
		WHERE s2.date = s.date AND s2.player_id = s.player_id
		GROUP BY s2.date, s2.player_id
		HAVING COUNT(DISTINCT s2.game_id) = ?
	)`

// Game computes the average value of a game over complete-day rows and
// the player with the lowest such average.
func (s *StatsService) Game(gameID uint) (*GameStats, error) {
	var game models.Game
	err := s.db.First(&game, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var totalGames int64
	if err := s.db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	stats := &GameStats{Game: game.Name}

	var avg sql.NullFloat64
	row := s.db.Raw(
		"SELECT AVG(s.value) FROM scores s WHERE s.game_id = ? AND "+completeDayFilter,
		gameID, totalGames,
	).Row()
	if err := row.Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to compute game average: %w", err)
	}
	if avg.Valid {
		v := avg.Float64
		stats.AvgScore = &v
	}

	var best []struct {
		Name     string
		AvgScore float64
	}
	err = s.db.Raw(
		"SELECT players.name AS name, AVG(s.value) AS avg_score "+
			"FROM scores s JOIN players ON players.id = s.player_id "+
			"WHERE s.game_id = ? AND "+completeDayFilter+" "+
			"GROUP BY players.id, players.name "+
			"ORDER BY avg_score ASC, players.id ASC LIMIT 1",
		gameID, totalGames,
	).Scan(&best).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute best player: %w", err)
	}
	if len(best) > 0 {
		name := best[0].Name
		stats.BestPlayer = &name
	}

	return stats, nil
}

// PlayerAverage is one player's mean attempt count over every recorded
// score, with no completeness filter. It measures raw play, not
// leaderboard standing.
type PlayerAverage struct {
	PlayerID uint
	Player   string
	Avg      float64
}

// GlobalAverages returns per-player mean attempts across all games and
// dates, best first.
func (s *StatsService) GlobalAverages() ([]PlayerAverage, error) {
	var rows []PlayerAverage
	err := s.db.Table("scores").
		Select("players.id AS player_id, players.name AS player, AVG(scores.value) AS avg").
		Joins("JOIN players ON players.id = scores.player_id").
		Group("players.id, players.name").
		Having("COUNT(scores.id) > 0").
		Order("avg ASC, players.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute global averages: %w", err)
	}
	return rows, nil
}
