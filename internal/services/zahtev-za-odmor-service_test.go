package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

// Stubovi pokrivaju samo metode koje servis zaista zove; ostale bi
// izazvale panic preko ugrađenog nil interfejsa.
type stubZahtevRepo struct {
	repositories.ZahtevZaOdmorRepositoryInterface

	findFn         func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error)
	odobreniFn     func(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error)
	createFn       func(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error)
	updateStatusFn func(ctx context.Context, id int, status string, korisnikID int, napomena *string) error
	deleteFn       func(ctx context.Context, id int) error
}

func (s *stubZahtevRepo) FindZahtev(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
	return s.findFn(ctx, id)
}

func (s *stubZahtevRepo) GetOdobreneZahteve(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error) {
	return s.odobreniFn(ctx, zaposleniID)
}

func (s *stubZahtevRepo) CreateZahtev(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error) {
	return s.createFn(ctx, z)
}

func (s *stubZahtevRepo) UpdateStatus(ctx context.Context, id int, status string, korisnikID int, napomena *string) error {
	return s.updateStatusFn(ctx, id, status, korisnikID, napomena)
}

func (s *stubZahtevRepo) DeleteZahtev(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

type stubZaposleniRepo struct {
	repositories.ZaposleniRepositoryInterface

	findFn func(ctx context.Context, id int) (*entities.Zaposleni, error)
}

func (s *stubZaposleniRepo) FindZaposleni(ctx context.Context, id int) (*entities.Zaposleni, error) {
	return s.findFn(ctx, id)
}

func noviZahtevServis(zahtevRepo *stubZahtevRepo, zaposleniRepo *stubZaposleniRepo, danas string) *ZahtevZaOdmorService {
	svc := NewZahtevZaOdmorService(zahtevRepo, zaposleniRepo, zap.NewNop())
	svc.now = func() time.Time {
		t, _ := time.Parse("2006-01-02", danas)
		return t
	}
	return svc
}

func zaposleniActor(zaposleniID int) *utils.Actor {
	return &utils.Actor{UserID: 10, UserName: "petar", Role: constants.RoleZaposleni, ZaposleniID: &zaposleniID}
}

func hrActor() *utils.Actor {
	return &utils.Actor{UserID: 1, UserName: "jelena", Role: constants.RoleHRManager}
}

func postojeciZaposleni(ctx context.Context, id int) (*entities.Zaposleni, error) {
	return &entities.Zaposleni{ID: id, Ime: "Petar", Prezime: "Petrović"}, nil
}

func bezOdobrenih(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error) {
	return nil, nil
}

func TestCreateZahtev_BrojDana(t *testing.T) {
	var sacuvan entities.ZahtevZaOdmor
	zahtevRepo := &stubZahtevRepo{
		odobreniFn: bezOdobrenih,
		createFn: func(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error) {
			sacuvan = z
			z.ID = 1
			z.DatumZahteva = time.Now()
			return &z, nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{findFn: postojeciZaposleni}, "2025-10-01")

	resp, err := svc.CreateZahtev(context.Background(), zaposleniActor(5), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 5,
		DatumOd:     "2025-10-15",
		DatumDo:     "2025-10-17",
		Razlog:      "porodično putovanje",
		TipOdmora:   constants.TipOdmoraGodisnji,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.BrojDana)
	assert.Equal(t, constants.StatusNaCekanju, sacuvan.Status)
	assert.Equal(t, constants.StatusNaCekanju, resp.Status)
}

func TestCreateZahtev_KrajPrePocetka(t *testing.T) {
	svc := noviZahtevServis(&stubZahtevRepo{}, &stubZaposleniRepo{}, "2025-10-01")

	_, err := svc.CreateZahtev(context.Background(), zaposleniActor(5), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 5,
		DatumOd:     "2025-10-17",
		DatumDo:     "2025-10-15",
		TipOdmora:   constants.TipOdmoraGodisnji,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateZahtev_PocetakUProslosti(t *testing.T) {
	svc := noviZahtevServis(&stubZahtevRepo{}, &stubZaposleniRepo{}, "2025-10-20")

	_, err := svc.CreateZahtev(context.Background(), zaposleniActor(5), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 5,
		DatumOd:     "2025-10-15",
		DatumDo:     "2025-10-17",
		TipOdmora:   constants.TipOdmoraGodisnji,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "prošlosti")
}

func TestCreateZahtev_ZaposleniSamoZaSebe(t *testing.T) {
	svc := noviZahtevServis(&stubZahtevRepo{}, &stubZaposleniRepo{}, "2025-10-01")

	// Akter je zaposleni 5, a podnosi zahtev za zaposlenog 6.
	_, err := svc.CreateZahtev(context.Background(), zaposleniActor(5), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 6,
		DatumOd:     "2025-10-15",
		DatumDo:     "2025-10-17",
		TipOdmora:   constants.TipOdmoraGodisnji,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}

func TestCreateZahtev_HRPodnosiZaDrugog(t *testing.T) {
	zahtevRepo := &stubZahtevRepo{
		odobreniFn: bezOdobrenih,
		createFn: func(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error) {
			z.ID = 2
			return &z, nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{findFn: postojeciZaposleni}, "2025-10-01")

	_, err := svc.CreateZahtev(context.Background(), hrActor(), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 6,
		DatumOd:     "2025-10-15",
		DatumDo:     "2025-10-17",
		TipOdmora:   constants.TipOdmoraBolovanje,
	})

	require.NoError(t, err)
}

func TestCreateZahtev_PreklapanjeSaOdobrenim(t *testing.T) {
	odobren := entities.ZahtevZaOdmor{
		ID:          9,
		ZaposleniID: 5,
		DatumOd:     time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		DatumDo:     time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		Status:      constants.StatusOdobren,
	}
	zahtevRepo := &stubZahtevRepo{
		odobreniFn: func(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error) {
			return []entities.ZahtevZaOdmor{odobren}, nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{findFn: postojeciZaposleni}, "2025-10-01")

	_, err := svc.CreateZahtev(context.Background(), zaposleniActor(5), dto.CreateZahtevZaOdmorDTO{
		ZaposleniID: 5,
		DatumOd:     "2025-10-15",
		DatumDo:     "2025-10-17",
		TipOdmora:   constants.TipOdmoraGodisnji,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "preklapa")
}

func naCekanju(id, zaposleniID int) *entities.ZahtevZaOdmor {
	return &entities.ZahtevZaOdmor{
		ID:          id,
		ZaposleniID: zaposleniID,
		DatumOd:     time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		DatumDo:     time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC),
		Status:      constants.StatusNaCekanju,
	}
}

func TestOdobri_MenjaStatus(t *testing.T) {
	zahtev := naCekanju(1, 5)
	var noviStatus string
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			z := *zahtev
			z.Status = firstNonEmpty(noviStatus, z.Status)
			return &z, nil
		},
		updateStatusFn: func(ctx context.Context, id int, status string, korisnikID int, napomena *string) error {
			noviStatus = status
			assert.Equal(t, 1, korisnikID)
			return nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	resp, err := svc.Odobri(context.Background(), hrActor(), 1, dto.OdgovorNaZahtevDTO{})

	require.NoError(t, err)
	assert.Equal(t, constants.StatusOdobren, resp.Status)
}

func TestOdobri_VecObradjen(t *testing.T) {
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			z := naCekanju(1, 5)
			z.Status = constants.StatusOdobren
			return z, nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	_, err := svc.Odobri(context.Background(), hrActor(), 1, dto.OdgovorNaZahtevDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "već obrađen")
}

func TestOdobri_TrkaSaDrugimOdgovorom(t *testing.T) {
	// Između čitanja i izmene neko drugi obradi zahtev: repo vraća ErrNotFound.
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			return naCekanju(1, 5), nil
		},
		updateStatusFn: func(ctx context.Context, id int, status string, korisnikID int, napomena *string) error {
			return apperrors.ErrNotFound
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	_, err := svc.Odobri(context.Background(), hrActor(), 1, dto.OdgovorNaZahtevDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "već obrađen")
}

func TestOdbaci_ZahtevaNapomenu(t *testing.T) {
	svc := noviZahtevServis(&stubZahtevRepo{}, &stubZaposleniRepo{}, "2025-10-01")

	_, err := svc.Odbaci(context.Background(), hrActor(), 1, dto.OdgovorNaZahtevDTO{Napomena: "   "})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "obrazloženje")
}

func TestOdobri_ZaposleniNemaPravo(t *testing.T) {
	svc := noviZahtevServis(&stubZahtevRepo{}, &stubZaposleniRepo{}, "2025-10-01")

	_, err := svc.Odobri(context.Background(), zaposleniActor(5), 1, dto.OdgovorNaZahtevDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}

func TestDeleteZahtev_VlasnikSamoNaCekanju(t *testing.T) {
	zahtev := naCekanju(1, 5)
	zahtev.Status = constants.StatusOdobren
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			return zahtev, nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	err := svc.DeleteZahtev(context.Background(), zaposleniActor(5), 1)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestDeleteZahtev_HRBriseObradjen(t *testing.T) {
	zahtev := naCekanju(1, 5)
	zahtev.Status = constants.StatusOdbacen
	obrisan := false
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			return zahtev, nil
		},
		deleteFn: func(ctx context.Context, id int) error {
			obrisan = true
			return nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	err := svc.DeleteZahtev(context.Background(), hrActor(), 1)

	require.NoError(t, err)
	assert.True(t, obrisan)
}

func TestDeleteZahtev_TudjiZahtev(t *testing.T) {
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			return naCekanju(1, 6), nil
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	err := svc.DeleteZahtev(context.Background(), zaposleniActor(5), 1)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}

func TestDeleteZahtev_NePostoji(t *testing.T) {
	zahtevRepo := &stubZahtevRepo{
		findFn: func(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	svc := noviZahtevServis(zahtevRepo, &stubZaposleniRepo{}, "2025-10-01")

	err := svc.DeleteZahtev(context.Background(), hrActor(), 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
