package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday; the current week starts Monday 2026-08-24.
var statsNow = time.Date(2026, 8, 26, 15, 0, 0, 0, time.Local)

func TestPlayerPodiumsZeroHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")

	// Alice has an incomplete day only; Bob has nothing.
	submitValues(t, db, alice.ID, "2026-08-25", []int{1, 2, 3})

	podiums, err := svc.PlayerPodiums(alice.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{}, podiums.Day)
	assert.Equal(t, PodiumCounts{}, podiums.Week)

	podiums, err = svc.PlayerPodiums(bob.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{}, podiums.Day)
	assert.Equal(t, PodiumCounts{}, podiums.Week)
}

func TestPodiumRequiresTwoCompetitors(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	submitValues(t, db, alice.ID, "2026-08-25", []int{1, 1, 1, 1, 1, 1})

	// Alice is the only complete-day player that date: no podium.
	podiums, err := svc.PlayerPodiums(alice.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{}, podiums.Day)
}

func TestPodiumLifetimeAndWeekTallies(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")

	// Old date (outside current week): Alice wins.
	submitValues(t, db, alice.ID, "2026-08-10", []int{1, 1, 1, 1, 1, 1}) // 6
	submitValues(t, db, bob.ID, "2026-08-10", []int{2, 2, 2, 2, 2, 2})   // 12

	// Inside current week: Bob wins, Alice second.
	submitValues(t, db, alice.ID, "2026-08-25", []int{2, 2, 2, 2, 2, 2}) // 12
	submitValues(t, db, bob.ID, "2026-08-25", []int{1, 1, 1, 1, 1, 1})   // 6

	podiums, err := svc.PlayerPodiums(alice.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{First: 1, Second: 1}, podiums.Day)
	assert.Equal(t, PodiumCounts{Second: 1}, podiums.Week, "the old win predates Monday")

	podiums, err = svc.PlayerPodiums(bob.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{First: 1, Second: 1}, podiums.Day)
	assert.Equal(t, PodiumCounts{First: 1}, podiums.Week)
}

func TestPodiumTieNeverDemotesLoser(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")
	carol := createPlayer(t, db, "Carol", "c1")

	// Totals 8, 8, 12: the 12-scorer is always third.
	submitValues(t, db, alice.ID, "2026-08-25", []int{1, 1, 1, 1, 2, 2}) // 8
	submitValues(t, db, bob.ID, "2026-08-25", []int{2, 2, 1, 1, 1, 1})   // 8
	submitValues(t, db, carol.ID, "2026-08-25", []int{2, 2, 2, 2, 2, 2}) // 12

	podiums, err := svc.PlayerPodiums(carol.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{Third: 1}, podiums.Day)

	// The tied 8-scorers take first and second, id order.
	podiums, err = svc.PlayerPodiums(alice.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{First: 1}, podiums.Day)

	podiums, err = svc.PlayerPodiums(bob.ID, statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{Second: 1}, podiums.Day)
}

func TestPodiumFourthPlaceGetsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	players := make([]uint, 4)
	for i, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		p := createPlayer(t, db, name, "x")
		players[i] = p.ID
		v := i + 1 // totals 6, 12, 18, 24
		submitValues(t, db, p.ID, "2026-08-25", []int{v, v, v, v, v, v})
	}

	podiums, err := svc.PlayerPodiums(players[3], statsNow)
	require.NoError(t, err)
	assert.Equal(t, PodiumCounts{}, podiums.Day)
	assert.Equal(t, PodiumCounts{}, podiums.Week)
}

func TestGameStatsCompleteDayFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	games := catalog(t, db)
	scoreSvc := NewScoreService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")

	// Alice: complete day, SUTOM value 3.
	submitValues(t, db, alice.ID, "2026-08-25", []int{3, 1, 1, 1, 1, 1})
	// Bob: incomplete day, SUTOM value 7 must not count.
	_, err := scoreSvc.SaveScores(bob.ID, map[uint]int{games[0].ID: 7}, "2026-08-25")
	require.NoError(t, err)

	stats, err := svc.Game(games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "SUTOM", stats.Game)
	require.NotNil(t, stats.AvgScore)
	assert.InDelta(t, 3.0, *stats.AvgScore, 0.001)
	require.NotNil(t, stats.BestPlayer)
	assert.Equal(t, "Alice", *stats.BestPlayer)
}

func TestGameStatsBestPlayerLowestAverage(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	games := catalog(t, db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")

	submitValues(t, db, alice.ID, "2026-08-24", []int{2, 1, 1, 1, 1, 1})
	submitValues(t, db, alice.ID, "2026-08-25", []int{4, 1, 1, 1, 1, 1}) // SUTOM avg 3
	submitValues(t, db, bob.ID, "2026-08-24", []int{2, 1, 1, 1, 1, 1})
	submitValues(t, db, bob.ID, "2026-08-25", []int{2, 1, 1, 1, 1, 1}) // SUTOM avg 2

	stats, err := svc.Game(games[0].ID)
	require.NoError(t, err)
	require.NotNil(t, stats.AvgScore)
	assert.InDelta(t, 2.5, *stats.AvgScore, 0.001)
	require.NotNil(t, stats.BestPlayer)
	assert.Equal(t, "Bob", *stats.BestPlayer)
}

func TestGameStatsEmptyAndUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	games := catalog(t, db)

	stats, err := svc.Game(games[0].ID)
	require.NoError(t, err)
	assert.Nil(t, stats.AvgScore)
	assert.Nil(t, stats.BestPlayer)

	_, err = svc.Game(9999)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGlobalAveragesIgnoreCompleteness(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	games := catalog(t, db)
	scoreSvc := NewScoreService(db)

	alice := createPlayer(t, db, "Alice", "a1")
	bob := createPlayer(t, db, "Bob", "b1")

	// Alice: two rows, incomplete day, still counted.
	_, err := scoreSvc.SaveScores(alice.ID, map[uint]int{games[0].ID: 2, games[1].ID: 4}, "2026-08-25")
	require.NoError(t, err)
	// Bob: one row.
	_, err = scoreSvc.SaveScores(bob.ID, map[uint]int{games[0].ID: 5}, "2026-08-25")
	require.NoError(t, err)

	rows, err := svc.GlobalAverages()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ascending by average: Alice 3.0 then Bob 5.0.
	assert.Equal(t, "Alice", rows[0].Player)
	assert.InDelta(t, 3.0, rows[0].Avg, 0.001)
	assert.Equal(t, "Bob", rows[1].Player)
	assert.InDelta(t, 5.0, rows[1].Avg, 0.001)
}
