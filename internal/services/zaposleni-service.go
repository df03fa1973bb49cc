package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

type ZaposleniServiceInterface interface {
	GetZaposleni(ctx context.Context, params types.ListParams) ([]dto.ZaposleniResponseDTO, uint64, error)
	FindZaposleni(ctx context.Context, id int) (*dto.ZaposleniResponseDTO, error)
	CreateZaposleni(ctx context.Context, payload dto.CreateZaposleniDTO) (*dto.ZaposleniResponseDTO, error)
	UpdateZaposleni(ctx context.Context, id int, payload dto.UpdateZaposleniDTO) (*dto.ZaposleniResponseDTO, error)
	DeleteZaposleni(ctx context.Context, id int) error
}

type ZaposleniService struct {
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	odsekRepo     repositories.OdsekRepositoryInterface
	pozicijaRepo  repositories.PozicijaRepositoryInterface
	logger        *zap.Logger
}

func NewZaposleniService(
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	odsekRepo repositories.OdsekRepositoryInterface,
	pozicijaRepo repositories.PozicijaRepositoryInterface,
	logger *zap.Logger,
) ZaposleniServiceInterface {
	return &ZaposleniService{
		zaposleniRepo: zaposleniRepo,
		odsekRepo:     odsekRepo,
		pozicijaRepo:  pozicijaRepo,
		logger:        logger,
	}
}

func mapZaposleniToResponse(z *entities.Zaposleni) dto.ZaposleniResponseDTO {
	resp := dto.ZaposleniResponseDTO{
		ID:              z.ID,
		Ime:             z.Ime,
		Prezime:         z.Prezime,
		Email:           z.Email,
		Telefon:         z.Telefon,
		Adresa:          z.Adresa,
		Pol:             z.Pol,
		JMBG:            z.JMBG,
		DatumZaposlenja: z.DatumZaposlenja.Format("2006-01-02"),
		Pozicija:        z.NazivPozicije(),
		PozicijaID:      z.PozicijaID,
		NadredjeniID:    z.NadredjeniID,
		OdsekID:         z.OdsekID,
		OdsekNaziv:      z.OdsekNaziv,
		SlikaURL:        z.SlikaURL,
		IsActive:        z.IsActive,
	}
	if z.DatumRodjenja != nil {
		rodjenje := z.DatumRodjenja.Format("2006-01-02")
		resp.DatumRodjenja = &rodjenje
	}
	return resp
}

func (s *ZaposleniService) GetZaposleni(ctx context.Context, params types.ListParams) ([]dto.ZaposleniResponseDTO, uint64, error) {
	zaposleni, total, err := s.zaposleniRepo.GetZaposleni(ctx, params)
	if err != nil {
		s.logger.Error("Dohvatanje liste zaposlenih nije uspelo", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ZaposleniResponseDTO, 0, len(zaposleni))
	for i := range zaposleni {
		result = append(result, mapZaposleniToResponse(&zaposleni[i]))
	}
	return result, total, nil
}

func (s *ZaposleniService) FindZaposleni(ctx context.Context, id int) (*dto.ZaposleniResponseDTO, error) {
	zaposleni, err := s.zaposleniRepo.FindZaposleni(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapZaposleniToResponse(zaposleni)
	return &resp, nil
}

// validateReference proverava da navedeni nadređeni, odsek i pozicija postoje.
func (s *ZaposleniService) validateReferences(ctx context.Context, nadredjeniID, odsekID, pozicijaID *int) error {
	if nadredjeniID != nil {
		if _, err := s.zaposleniRepo.FindZaposleni(ctx, *nadredjeniID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError("navedeni nadređeni ne postoji", nil)
			}
			return err
		}
	}
	if odsekID != nil {
		if _, err := s.odsekRepo.FindOdsek(ctx, *odsekID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError("navedeni odsek ne postoji", nil)
			}
			return err
		}
	}
	if pozicijaID != nil {
		if _, err := s.pozicijaRepo.FindPozicija(ctx, *pozicijaID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError("navedena pozicija ne postoji", nil)
			}
			return err
		}
	}
	return nil
}

func (s *ZaposleniService) CreateZaposleni(ctx context.Context, payload dto.CreateZaposleniDTO) (*dto.ZaposleniResponseDTO, error) {
	if err := s.validateReferences(ctx, payload.NadredjeniID, payload.OdsekID, payload.PozicijaID); err != nil {
		return nil, err
	}

	datumZaposlenja, err := time.Parse("2006-01-02", payload.DatumZaposlenja)
	if err != nil {
		return nil, apperrors.NewBadRequestError("neispravan datum zaposlenja", err)
	}
	var datumRodjenja *time.Time
	if payload.DatumRodjenja != nil {
		parsed, err := time.Parse("2006-01-02", *payload.DatumRodjenja)
		if err != nil {
			return nil, apperrors.NewBadRequestError("neispravan datum rođenja", err)
		}
		datumRodjenja = &parsed
	}

	zaposleni, err := s.zaposleniRepo.CreateZaposleni(ctx, entities.Zaposleni{
		Ime:             payload.Ime,
		Prezime:         payload.Prezime,
		Email:           payload.Email,
		Telefon:         payload.Telefon,
		Adresa:          payload.Adresa,
		Pol:             payload.Pol,
		JMBG:            payload.JMBG,
		DatumZaposlenja: datumZaposlenja,
		DatumRodjenja:   datumRodjenja,
		Pozicija:        payload.Pozicija,
		PozicijaID:      payload.PozicijaID,
		NadredjeniID:    payload.NadredjeniID,
		OdsekID:         payload.OdsekID,
		SlikaURL:        payload.SlikaURL,
	})
	if err != nil {
		s.logger.Error("Kreiranje zaposlenog nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Kreiran nov zaposleni", zap.Int("zaposleniID", zaposleni.ID))
	resp := mapZaposleniToResponse(zaposleni)
	return &resp, nil
}

func (s *ZaposleniService) UpdateZaposleni(ctx context.Context, id int, payload dto.UpdateZaposleniDTO) (*dto.ZaposleniResponseDTO, error) {
	if err := s.validateReferences(ctx, payload.NadredjeniID, payload.OdsekID, payload.PozicijaID); err != nil {
		return nil, err
	}

	zaposleni, err := s.zaposleniRepo.UpdateZaposleni(ctx, id, payload)
	if err != nil {
		s.logger.Error("Izmena zaposlenog nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	resp := mapZaposleniToResponse(zaposleni)
	return &resp, nil
}

func (s *ZaposleniService) DeleteZaposleni(ctx context.Context, id int) error {
	err := s.zaposleniRepo.DeleteZaposleni(ctx, id)
	if err != nil {
		s.logger.Error("Brisanje zaposlenog nije uspelo", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("Zaposleni je deaktiviran", zap.Int("id", id))
	return nil
}
