package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gavtech/classement-backend/internal/dates"
	"github.com/gavtech/classement-backend/internal/dto"
	"github.com/gavtech/classement-backend/internal/services"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// ListGames handles GET /games - the fixed catalog in display order.
func (h *ScoreHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.scoreService.Games()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list games",
		})
	}

	out := make([]dto.GameResponse, len(games))
	for i, g := range games {
		out[i] = dto.GameResponse{
			ID:           g.ID,
			Name:         g.Name,
			Group:        g.GroupName,
			DisplayOrder: g.DisplayOrder,
		}
	}
	return c.JSON(out)
}

// SaveScores handles POST /players/:id/scores - upserts today's values
// from a JSON object of game id to attempt count. Malformed or
// out-of-range entries are dropped, not rejected.
func (h *ScoreHandler) SaveScores(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player ID",
		})
	}

	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	values := make(map[uint]int, len(raw))
	for key, v := range raw {
		gameID, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		if value, ok := coerceValue(v); ok {
			values[uint(gameID)] = value
		}
	}

	today := dates.Today(time.Now())
	saved, err := h.scoreService.SaveScores(uint(id), values, today)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Player not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save scores",
		})
	}

	return c.JSON(dto.SaveScoresResponse{Saved: saved, Date: today})
}

// GetPlayerScores handles GET /players/:id/scores - today's
// submissions keyed by game id, with the locked flag.
func (h *ScoreHandler) GetPlayerScores(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player ID",
		})
	}

	today := dates.Today(time.Now())
	scores, locked, err := h.scoreService.PlayerScores(uint(id), today)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Player not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch scores",
		})
	}

	return c.JSON(fiber.Map{
		"date":   today,
		"scores": scores,
		"locked": locked,
	})
}

// GetGameScores handles GET /games/:id/scores - every player's value
// for one game today, by name, null for non-participants.
func (h *ScoreHandler) GetGameScores(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	rows, err := h.scoreService.GameScores(uint(id), dates.Today(time.Now()))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch game scores",
		})
	}

	out := make([]dto.GameScoreEntry, len(rows))
	for i, r := range rows {
		out[i] = dto.GameScoreEntry{Name: r.Name, Value: r.Value}
	}
	return c.JSON(out)
}

// Reveal handles GET /reveal - whether today is the weekly reveal day.
func (h *ScoreHandler) Reveal(c *fiber.Ctx) error {
	return c.JSON(dto.RevealResponse{Monday: dates.IsMonday(time.Now())})
}

// DebugDays handles GET /debug/days - per (date, player) distinct game
// counts, for checking the completeness predicate.
func (h *ScoreHandler) DebugDays(c *fiber.Ctx) error {
	rows, err := h.scoreService.DayCompletion()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch day completion",
		})
	}

	out := make([]dto.DayCompletionEntry, len(rows))
	for i, r := range rows {
		out[i] = dto.DayCompletionEntry{Date: r.Date, PlayerID: r.PlayerID, Games: r.Games}
	}
	return c.JSON(out)
}

// coerceValue accepts whole JSON numbers and digit strings; anything
// else is ignored, mirroring the lenient form parsing of score
// submissions.
func coerceValue(v interface{}) (int, bool) {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) {
			return int(x), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}
