package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/gavtech/classement-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	playerHandler *handlers.PlayerHandler,
	scoreHandler *handlers.ScoreHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Players
	api.Get("/players", playerHandler.List)
	api.Post("/players", playerHandler.Create)
	api.Post("/players/:id/login", playerHandler.Login)
	api.Delete("/players/:id", playerHandler.Delete)
	api.Get("/players/:id/scores", scoreHandler.GetPlayerScores)
	api.Post("/players/:id/scores", scoreHandler.SaveScores)

	// Games
	api.Get("/games", scoreHandler.ListGames)
	api.Get("/games/:id/scores", scoreHandler.GetGameScores)

	// Leaderboards
	api.Get("/leaderboard/day/global", leaderboardHandler.DayGlobal)
	api.Get("/leaderboard/day/game/:id", leaderboardHandler.DayGame)
	api.Get("/leaderboard/yesterday/global", leaderboardHandler.YesterdayGlobal)
	api.Get("/leaderboard/week/global", leaderboardHandler.WeekGlobal)

	// Stats
	api.Get("/stats/player/:id", statsHandler.PlayerStats)
	api.Get("/stats/game/:id", statsHandler.GameStats)
	api.Get("/stats/chart/avg-global", statsHandler.GlobalAverages)

	// Weekly reveal flag
	api.Get("/reveal", scoreHandler.Reveal)

	// Completion debugging
	api.Get("/debug/days", scoreHandler.DebugDays)
}
