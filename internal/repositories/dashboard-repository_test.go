package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardRepository_ProsekPratiPoslednjuUnetuPlatu(t *testing.T) {
	pool := testPool(t)
	repo := NewDashboardRepository(pool, zap.NewNop())

	prvi := testZaposleni(t, pool, "dashboard.prvi@example.com")
	drugi := testZaposleni(t, pool, "dashboard.drugi@example.com")

	ubaciPlatu := func(zaposleniID int, period string, osnovna, bonusi, otkazi float64, createdAt time.Time) {
		t.Helper()
		_, err := pool.Exec(context.Background(),
			`INSERT INTO plate (zaposleni_id, period, osnovna, bonusi, otkazi, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			zaposleniID, period, osnovna, bonusi, otkazi, createdAt)
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(),
			`DELETE FROM plate WHERE zaposleni_id IN ($1, $2)`, prvi.ID, drugi.ID)
	})

	// Plata sa starijim periodom je uneta kasnije; prosek mora da prati
	// created_at, ne oznaku perioda.
	sada := time.Now()
	ubaciPlatu(prvi.ID, "2025-07", 1000, 0, 0, sada.Add(-2*time.Hour))
	ubaciPlatu(prvi.ID, "2025-06", 1200.50, 100.25, 50, sada.Add(-time.Hour))
	ubaciPlatu(drugi.ID, "2025-07", 900, 0, 0, sada.Add(-time.Hour))

	stats, err := repo.GetStatistics(context.Background())
	require.NoError(t, err)

	// (1250.75 + 900.00) / 2 = 1075.375, zaokruženo na 1075.38.
	require.InDelta(t, 1075.38, stats.ProsecnaPlata, 0.001)
	require.InDelta(t, 2150.75, stats.UkupanFondPlata, 0.001)
}
