package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gavtech/classement-backend/internal/database"
	"github.com/gavtech/classement-backend/internal/models"
)

// newTestDB opens an isolated in-memory database, migrates the domain
// models and seeds the game catalog. The aggregation queries are
// dialect-portable, so the sqlite driver runs the same SQL as the
// production postgres driver.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Player{}, &models.Game{}, &models.Score{}))
	require.NoError(t, database.SeedGames(db))

	return db
}

func createPlayer(t *testing.T, db *gorm.DB, name, code string) *models.Player {
	t.Helper()
	player, err := NewPlayerService(db).Create(name, code)
	require.NoError(t, err)
	return player
}

func catalog(t *testing.T, db *gorm.DB) []models.Game {
	t.Helper()
	games, err := NewScoreService(db).Games()
	require.NoError(t, err)
	require.Len(t, games, len(database.Catalog))
	return games
}

// submitValues records one value per game, in catalog order. Fewer
// values than games leaves the day incomplete.
func submitValues(t *testing.T, db *gorm.DB, playerID uint, date string, values []int) {
	t.Helper()
	games := catalog(t, db)
	require.LessOrEqual(t, len(values), len(games))

	m := make(map[uint]int, len(values))
	for i, v := range values {
		m[games[i].ID] = v
	}
	saved, err := NewScoreService(db).SaveScores(playerID, m, date)
	require.NoError(t, err)
	require.Equal(t, len(values), saved)
}
