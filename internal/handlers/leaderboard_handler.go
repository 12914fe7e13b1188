package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gavtech/classement-backend/internal/dates"
	"github.com/gavtech/classement-backend/internal/dto"
	"github.com/gavtech/classement-backend/internal/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// DayGlobal handles GET /leaderboard/day/global - today's complete-day
// ranking over all games.
func (h *LeaderboardHandler) DayGlobal(c *fiber.Ctx) error {
	ranking, err := h.leaderboardService.DailyGlobal(dates.Today(time.Now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute leaderboard",
		})
	}
	return c.JSON(globalEntries(ranking))
}

// YesterdayGlobal handles GET /leaderboard/yesterday/global.
func (h *LeaderboardHandler) YesterdayGlobal(c *fiber.Ctx) error {
	ranking, err := h.leaderboardService.YesterdayGlobal(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute leaderboard",
		})
	}
	return c.JSON(globalEntries(ranking))
}

// WeekGlobal handles GET /leaderboard/week/global - the
// Monday-anchored current week.
func (h *LeaderboardHandler) WeekGlobal(c *fiber.Ctx) error {
	ranking, err := h.leaderboardService.WeekGlobal(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute leaderboard",
		})
	}
	return c.JSON(globalEntries(ranking))
}

// DayGame handles GET /leaderboard/day/game/:id - today's ranking for
// one game, all players listed, non-participants last.
func (h *LeaderboardHandler) DayGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	ranking, err := h.leaderboardService.DailyGame(uint(id), dates.Today(time.Now()))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute leaderboard",
		})
	}

	out := make([]dto.RankingEntry, len(ranking))
	for i, r := range ranking {
		out[i] = dto.RankingEntry{Rank: r.Rank, Name: r.Name, Score: r.Value}
	}
	return c.JSON(out)
}

func globalEntries(ranking []services.RankedPlayer) []dto.RankingEntry {
	out := make([]dto.RankingEntry, len(ranking))
	for i, r := range ranking {
		total := r.Total
		out[i] = dto.RankingEntry{Rank: r.Rank, Name: r.Name, Score: &total}
	}
	return out
}
