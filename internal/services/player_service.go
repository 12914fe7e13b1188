package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gavtech/classement-backend/internal/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidCode    = errors.New("invalid access code")
	ErrEmptyField     = errors.New("name and code are required")
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// PlayerStatus is a player with their completion flag for one date.
type PlayerStatus struct {
	Player models.Player
	Done   bool
}

// List returns all players ordered by name.
func (s *PlayerService) List() ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Order("name ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// ListWithStatus returns all players ordered by name, each flagged
// done when they have a score for every game on the given date.
func (s *PlayerService) ListWithStatus(date string) ([]PlayerStatus, error) {
	players, err := s.List()
	if err != nil {
		return nil, err
	}

	var totalGames int64
	if err := s.db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	var counts []struct {
		PlayerID uint
		Played   int64
	}
	err = s.db.Model(&models.Score{}).
		Select("player_id, COUNT(DISTINCT game_id) AS played").
		Where("date = ?", date).
		Group("player_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count played games: %w", err)
	}

	playedByID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		playedByID[c.PlayerID] = c.Played
	}

	statuses := make([]PlayerStatus, len(players))
	for i, p := range players {
		statuses[i] = PlayerStatus{
			Player: p,
			Done:   totalGames > 0 && playedByID[p.ID] == totalGames,
		}
	}
	return statuses, nil
}

// Create registers a new player with a display name and access code.
func (s *PlayerService) Create(name, code string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || code == "" {
		return nil, ErrEmptyField
	}

	player := models.Player{Name: name, Code: code}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &player, nil
}

// Get returns one player by id.
func (s *PlayerService) Get(id uint) (*models.Player, error) {
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

// Authenticate checks the presented access code against the stored one.
// Codes are plaintext shared secrets, compared as-is.
func (s *PlayerService) Authenticate(id uint, code string) (*models.Player, error) {
	player, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if player.Code != code {
		return nil, ErrInvalidCode
	}
	return player, nil
}

// Delete removes a player and all their scores in one transaction.
// The correct access code must be presented; a wrong code never
// mutates the store.
func (s *PlayerService) Delete(id uint, code string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		err := tx.First(&player, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get player: %w", err)
		}

		if player.Code != code {
			return ErrInvalidCode
		}

		if err := tx.Where("player_id = ?", id).Delete(&models.Score{}).Error; err != nil {
			return fmt.Errorf("failed to delete scores: %w", err)
		}
		if err := tx.Delete(&player).Error; err != nil {
			return fmt.Errorf("failed to delete player: %w", err)
		}
		return nil
	})
}
