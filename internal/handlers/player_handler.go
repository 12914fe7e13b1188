package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gavtech/classement-backend/internal/dates"
	"github.com/gavtech/classement-backend/internal/dto"
	"github.com/gavtech/classement-backend/internal/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	scoreService  *services.ScoreService
}

func NewPlayerHandler(playerService *services.PlayerService, scoreService *services.ScoreService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, scoreService: scoreService}
}

// List handles GET /players - all players ordered by name, each with a
// done-today flag.
func (h *PlayerHandler) List(c *fiber.Ctx) error {
	statuses, err := h.playerService.ListWithStatus(dates.Today(time.Now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list players",
		})
	}

	out := make([]dto.PlayerStatusResponse, len(statuses))
	for i, st := range statuses {
		out[i] = dto.PlayerStatusResponse{
			ID:   st.Player.ID,
			Name: st.Player.Name,
			Done: st.Done,
		}
	}
	return c.JSON(out)
}

// Create handles POST /players - registers a new player.
func (h *PlayerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	player, err := h.playerService.Create(req.Name, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrEmptyField) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name and code are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create player",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.PlayerResponse{
		ID:   player.ID,
		Name: player.Name,
	})
}

// Login handles POST /players/:id/login - verifies the access code and
// returns the player's submissions for today with the locked flag.
func (h *PlayerHandler) Login(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player ID",
		})
	}

	var req dto.CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	player, err := h.playerService.Authenticate(uint(id), req.Code)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Player not found",
			})
		}
		if errors.Is(err, services.ErrInvalidCode) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid access code",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Login failed",
		})
	}

	today := dates.Today(time.Now())
	scores, locked, err := h.scoreService.PlayerScores(player.ID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch scores",
		})
	}

	return c.JSON(dto.PlayerScoresResponse{
		Player: dto.PlayerResponse{ID: player.ID, Name: player.Name},
		Date:   today,
		Scores: scores,
		Locked: locked,
	})
}

// Delete handles DELETE /players/:id - removes a player and their
// scores when the correct access code is presented.
func (h *PlayerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player ID",
		})
	}

	var req dto.CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.playerService.Delete(uint(id), req.Code); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Player not found",
			})
		}
		if errors.Is(err, services.ErrInvalidCode) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid access code, deletion refused",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete player",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Player deleted"})
}
