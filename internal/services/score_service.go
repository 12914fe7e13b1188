package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gavtech/classement-backend/internal/models"
)

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// Games returns the catalog in fixed group precedence (SUTOM, LE_MOT,
// WORDLE) then display order. Stable across calls.
func (s *ScoreService) Games() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order(models.GroupOrderExpr).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// SaveScores upserts the submitted values for the given date, one row
// per (player, game, date). Entries for unknown game ids or with
// values outside [1,7] are dropped silently; resubmitting overwrites
// via an atomic ON CONFLICT update. Returns how many values were
// stored.
func (s *ScoreService) SaveScores(playerID uint, values map[uint]int, date string) (int, error) {
	var player models.Player
	err := s.db.First(&player, playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrPlayerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get player: %w", err)
	}

	games, err := s.Games()
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, game := range games {
		value, ok := values[game.ID]
		if !ok {
			continue
		}
		if value < models.MinScoreValue || value > models.MaxScoreValue {
			continue
		}

		score := models.Score{
			PlayerID: playerID,
			GameID:   game.ID,
			Date:     date,
			Value:    value,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "player_id"},
				{Name: "game_id"},
				{Name: "date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
		}).Create(&score).Error
		if err != nil {
			return saved, fmt.Errorf("failed to save score for game %d: %w", game.ID, err)
		}
		saved++
	}
	return saved, nil
}

// PlayerScores returns a player's values for one date keyed by game
// id, plus whether the day is complete (one score per existing game).
func (s *ScoreService) PlayerScores(playerID uint, date string) (map[uint]int, bool, error) {
	if _, err := s.playerExists(playerID); err != nil {
		return nil, false, err
	}

	var scores []models.Score
	err := s.db.Where("player_id = ? AND date = ?", playerID, date).Find(&scores).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to get scores: %w", err)
	}

	var totalGames int64
	if err := s.db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, false, fmt.Errorf("failed to count games: %w", err)
	}

	byGame := make(map[uint]int, len(scores))
	for _, sc := range scores {
		byGame[sc.GameID] = sc.Value
	}

	locked := totalGames > 0 && int64(len(byGame)) == totalGames
	return byGame, locked, nil
}

// GameScoreRow is one player's value for a single game on a date.
type GameScoreRow struct {
	PlayerID uint
	Name     string
	Value    *int
}

// GameScores returns every player's value for one game on a date,
// ordered by player name. Players who have not played appear with a
// nil value.
func (s *ScoreService) GameScores(gameID uint, date string) ([]GameScoreRow, error) {
	var game models.Game
	err := s.db.First(&game, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var rows []GameScoreRow
	err = s.db.Table("players").
		Select("players.id AS player_id, players.name AS name, scores.value AS value").
		Joins("LEFT JOIN scores ON scores.player_id = players.id AND scores.game_id = ? AND scores.date = ?", gameID, date).
		Order("players.name ASC, players.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get game scores: %w", err)
	}
	return rows, nil
}

// DayCompletionRow counts the distinct games one player recorded on
// one date.
type DayCompletionRow struct {
	Date     string
	PlayerID uint
	Games    int
}

// DayCompletion lists (date, player, distinct game count) across all
// history, for completion debugging.
func (s *ScoreService) DayCompletion() ([]DayCompletionRow, error) {
	var rows []DayCompletionRow
	err := s.db.Model(&models.Score{}).
		Select("date, player_id, COUNT(DISTINCT game_id) AS games").
		Group("date, player_id").
		Order("date ASC, player_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get day completion: %w", err)
	}
	return rows, nil
}

func (s *ScoreService) playerExists(id uint) (*models.Player, error) {
	var player models.Player
	err := s.db.First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}
