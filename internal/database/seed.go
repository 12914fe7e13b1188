package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/gavtech/classement-backend/internal/models"
)

// Catalog is the fixed set of daily games. Seeded once, immutable
// afterwards in normal operation.
var Catalog = []models.Game{
	{Name: "SUTOM", GroupName: models.GroupSutom, DisplayOrder: 1},
	{Name: "Le Mot – 4 lettres", GroupName: models.GroupLeMot, DisplayOrder: 1},
	{Name: "Le Mot – 5 lettres", GroupName: models.GroupLeMot, DisplayOrder: 2},
	{Name: "Le Mot – 6 lettres", GroupName: models.GroupLeMot, DisplayOrder: 3},
	{Name: "Wordle – Anglais", GroupName: models.GroupWordle, DisplayOrder: 1},
	{Name: "Wordle – Français", GroupName: models.GroupWordle, DisplayOrder: 2},
}

// SeedGames inserts the game catalog, skipping entries that already
// exist by unique name. Safe to run on every startup.
func SeedGames(db *gorm.DB) error {
	seeded := 0

	for _, g := range Catalog {
		var existing models.Game
		err := db.Where("name = ?", g.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		game := g
		if err := db.Create(&game).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded game catalog", "new", seeded, "total", len(Catalog))
	}
	return nil
}
