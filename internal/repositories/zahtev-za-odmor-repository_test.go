package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
)

func TestZahtevRepository_UpdateStatusSamoNaCekanju(t *testing.T) {
	pool := testPool(t)
	repo := NewZahtevZaOdmorRepository(pool, zap.NewNop())
	ctx := context.Background()

	z := testZaposleni(t, pool, fmt.Sprintf("zahtev-%d@test.local", time.Now().UnixNano()))

	var korisnikID int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT id FROM korisnici ORDER BY id LIMIT 1`).Scan(&korisnikID))

	zahtev, err := repo.CreateZahtev(ctx, entities.ZahtevZaOdmor{
		ZaposleniID: z.ID,
		DatumOd:     time.Now().AddDate(0, 1, 0),
		DatumDo:     time.Now().AddDate(0, 1, 5),
		TipOdmora:   constants.TipOdmoraGodisnji,
		Status:      constants.StatusNaCekanju,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM zahtevi_za_odmor WHERE id = $1`, zahtev.ID)
	})

	require.NoError(t, repo.UpdateStatus(ctx, zahtev.ID, constants.StatusOdobren, korisnikID, nil))

	// Drugi pokušaj pada: zahtev više nije na čekanju.
	err = repo.UpdateStatus(ctx, zahtev.ID, constants.StatusOdbacen, korisnikID, nil)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	nadjen, err := repo.FindZahtev(ctx, zahtev.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusOdobren, nadjen.Status)
	assert.NotNil(t, nadjen.DatumOdgovora)
}

func TestZahtevRepository_SumOdobrenihDana(t *testing.T) {
	pool := testPool(t)
	repo := NewZahtevZaOdmorRepository(pool, zap.NewNop())
	ctx := context.Background()

	z := testZaposleni(t, pool, fmt.Sprintf("fond-%d@test.local", time.Now().UnixNano()))

	godina := time.Now().Year() + 1
	zahtev, err := repo.CreateZahtev(ctx, entities.ZahtevZaOdmor{
		ZaposleniID: z.ID,
		DatumOd:     time.Date(godina, 7, 1, 0, 0, 0, 0, time.UTC),
		DatumDo:     time.Date(godina, 7, 5, 0, 0, 0, 0, time.UTC),
		TipOdmora:   constants.TipOdmoraGodisnji,
		Status:      constants.StatusNaCekanju,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM zahtevi_za_odmor WHERE id = $1`, zahtev.ID)
	})

	// Na čekanju se ne računa u fond.
	suma, err := repo.SumOdobrenihDanaUGodini(ctx, z.ID, godina)
	require.NoError(t, err)
	assert.Equal(t, 0, suma)

	var korisnikID int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT id FROM korisnici ORDER BY id LIMIT 1`).Scan(&korisnikID))
	require.NoError(t, repo.UpdateStatus(ctx, zahtev.ID, constants.StatusOdobren, korisnikID, nil))

	suma, err = repo.SumOdobrenihDanaUGodini(ctx, z.ID, godina)
	require.NoError(t, err)
	assert.Equal(t, 5, suma)
}
