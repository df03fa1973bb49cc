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

	apperrors "hr-system/pkg/errors"
)

func TestZaposleniRepository_SoftDelete(t *testing.T) {
	pool := testPool(t)
	repo := NewZaposleniRepository(pool, zap.NewNop())
	ctx := context.Background()

	email := fmt.Sprintf("soft-delete-%d@test.local", time.Now().UnixNano())
	z := testZaposleni(t, pool, email)

	require.NoError(t, repo.DeleteZaposleni(ctx, z.ID))

	// Soft delete: zapis ostaje dostupan preko Find, samo je neaktivan.
	nadjen, err := repo.FindZaposleni(ctx, z.ID)
	require.NoError(t, err)
	assert.False(t, nadjen.IsActive)

	// Ali ispada iz aktivne liste.
	aktivni, err := repo.GetSviAktivni(ctx)
	require.NoError(t, err)
	for i := range aktivni {
		assert.NotEqual(t, z.ID, aktivni[i].ID)
	}
}

func TestZaposleniRepository_FindNepostojeci(t *testing.T) {
	pool := testPool(t)
	repo := NewZaposleniRepository(pool, zap.NewNop())

	_, err := repo.FindZaposleni(context.Background(), -1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestZaposleniRepository_UpdateHijerarhija(t *testing.T) {
	pool := testPool(t)
	repo := NewZaposleniRepository(pool, zap.NewNop())
	ctx := context.Background()

	suffix := time.Now().UnixNano()
	sef := testZaposleni(t, pool, fmt.Sprintf("sef-%d@test.local", suffix))
	clan := testZaposleni(t, pool, fmt.Sprintf("clan-%d@test.local", suffix))

	require.NoError(t, repo.UpdateHijerarhija(ctx, clan.ID, &sef.ID, nil, true, false))

	nadjen, err := repo.FindZaposleni(ctx, clan.ID)
	require.NoError(t, err)
	require.NotNil(t, nadjen.NadredjeniID)
	assert.Equal(t, sef.ID, *nadjen.NadredjeniID)

	// Null nadređeni uklanja vezu.
	require.NoError(t, repo.UpdateHijerarhija(ctx, clan.ID, nil, nil, true, false))
	nadjen, err = repo.FindZaposleni(ctx, clan.ID)
	require.NoError(t, err)
	assert.Nil(t, nadjen.NadredjeniID)
}
