package handlers

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gavtech/classement-backend/internal/dto"
	"github.com/gavtech/classement-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// PlayerStats handles GET /stats/player/:id - lifetime and
// current-week podium tallies.
func (h *StatsHandler) PlayerStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player ID",
		})
	}

	podiums, err := h.statsService.PlayerPodiums(uint(id), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute player stats",
		})
	}

	return c.JSON(dto.PlayerStatsResponse{
		PodiumDay: dto.PodiumCounts{
			First:  podiums.Day.First,
			Second: podiums.Day.Second,
			Third:  podiums.Day.Third,
		},
		PodiumWeek: dto.PodiumCounts{
			First:  podiums.Week.First,
			Second: podiums.Week.Second,
			Third:  podiums.Week.Third,
		},
	})
}

// GameStats handles GET /stats/game/:id - complete-day average and
// best player for one game.
func (h *StatsHandler) GameStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	stats, err := h.statsService.Game(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute game stats",
		})
	}

	resp := dto.GameStatsResponse{Game: stats.Game}
	if stats.AvgScore != nil {
		v := round2(*stats.AvgScore)
		resp.AvgScore = &v
	}
	resp.BestPlayer = stats.BestPlayer
	return c.JSON(resp)
}

// GlobalAverages handles GET /stats/chart/avg-global - per-player mean
// attempts over all recorded scores, best first.
func (h *StatsHandler) GlobalAverages(c *fiber.Ctx) error {
	rows, err := h.statsService.GlobalAverages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute averages",
		})
	}

	out := make([]dto.PlayerAverageEntry, len(rows))
	for i, r := range rows {
		out[i] = dto.PlayerAverageEntry{Player: r.Player, Avg: round2(r.Avg)}
	}
	return c.JSON(out)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
