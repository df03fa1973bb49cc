package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/entities"
)

// Integracioni testovi rade samo uz TEST_DATABASE_URL sa izvršenim
// migracijama; bez njega se preskaču.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL nije postavljen")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(context.Background()))
	t.Cleanup(pool.Close)
	return pool
}

func testZaposleni(t *testing.T, pool *pgxpool.Pool, email string) *entities.Zaposleni {
	t.Helper()
	repo := NewZaposleniRepository(pool, zap.NewNop())

	z, err := repo.CreateZaposleni(context.Background(), entities.Zaposleni{
		Ime:             "Test",
		Prezime:         "Testić",
		Email:           email,
		DatumZaposlenja: time.Now().AddDate(-1, 0, 0),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM zaposleni WHERE id = $1`, z.ID)
	})
	return z
}
