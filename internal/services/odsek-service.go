package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
)

type OdsekServiceInterface interface {
	GetOdseci(ctx context.Context) ([]dto.OdsekResponseDTO, error)
	FindOdsek(ctx context.Context, id int) (*dto.OdsekResponseDTO, error)
	GetZaposleniOdseka(ctx context.Context, id int) ([]dto.ZaposleniResponseDTO, error)
	CreateOdsek(ctx context.Context, payload dto.CreateOdsekDTO) (*dto.OdsekResponseDTO, error)
	UpdateOdsek(ctx context.Context, id int, payload dto.UpdateOdsekDTO) (*dto.OdsekResponseDTO, error)
	DeleteOdsek(ctx context.Context, id int) error
}

type OdsekService struct {
	odsekRepo     repositories.OdsekRepositoryInterface
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	logger        *zap.Logger
}

func NewOdsekService(
	odsekRepo repositories.OdsekRepositoryInterface,
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	logger *zap.Logger,
) OdsekServiceInterface {
	return &OdsekService{
		odsekRepo:     odsekRepo,
		zaposleniRepo: zaposleniRepo,
		logger:        logger,
	}
}

func mapOdsekToResponse(o *entities.Odsek) dto.OdsekResponseDTO {
	return dto.OdsekResponseDTO{
		ID:             o.ID,
		Naziv:          o.Naziv,
		Opis:           o.Opis,
		BrojZaposlenih: o.BrojZaposlenih,
		IsActive:       o.IsActive,
	}
}

func (s *OdsekService) GetOdseci(ctx context.Context) ([]dto.OdsekResponseDTO, error) {
	odseci, err := s.odsekRepo.GetOdseci(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje odseka nije uspelo", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OdsekResponseDTO, 0, len(odseci))
	for i := range odseci {
		result = append(result, mapOdsekToResponse(&odseci[i]))
	}
	return result, nil
}

func (s *OdsekService) FindOdsek(ctx context.Context, id int) (*dto.OdsekResponseDTO, error) {
	odsek, err := s.odsekRepo.FindOdsek(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapOdsekToResponse(odsek)
	return &resp, nil
}

func (s *OdsekService) GetZaposleniOdseka(ctx context.Context, id int) ([]dto.ZaposleniResponseDTO, error) {
	if _, err := s.odsekRepo.FindOdsek(ctx, id); err != nil {
		return nil, err
	}

	zaposleni, err := s.zaposleniRepo.GetZaposleniOdseka(ctx, id)
	if err != nil {
		s.logger.Error("Dohvatanje zaposlenih odseka nije uspelo", zap.Int("odsekID", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ZaposleniResponseDTO, 0, len(zaposleni))
	for i := range zaposleni {
		result = append(result, mapZaposleniToResponse(&zaposleni[i]))
	}
	return result, nil
}

func (s *OdsekService) CreateOdsek(ctx context.Context, payload dto.CreateOdsekDTO) (*dto.OdsekResponseDTO, error) {
	if _, err := s.odsekRepo.FindOdsekByNaziv(ctx, payload.Naziv); err == nil {
		return nil, apperrors.NewBadRequestError("odsek sa tim nazivom već postoji", nil)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	odsek, err := s.odsekRepo.CreateOdsek(ctx, entities.Odsek{
		Naziv: payload.Naziv,
		Opis:  payload.Opis,
	})
	if err != nil {
		s.logger.Error("Kreiranje odseka nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Kreiran nov odsek", zap.Int("odsekID", odsek.ID), zap.String("naziv", odsek.Naziv))
	resp := mapOdsekToResponse(odsek)
	return &resp, nil
}

func (s *OdsekService) UpdateOdsek(ctx context.Context, id int, payload dto.UpdateOdsekDTO) (*dto.OdsekResponseDTO, error) {
	if payload.Naziv != nil {
		if postojeci, err := s.odsekRepo.FindOdsekByNaziv(ctx, *payload.Naziv); err == nil && postojeci.ID != id {
			return nil, apperrors.NewBadRequestError("odsek sa tim nazivom već postoji", nil)
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	odsek, err := s.odsekRepo.UpdateOdsek(ctx, id, payload)
	if err != nil {
		s.logger.Error("Izmena odseka nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := mapOdsekToResponse(odsek)
	return &resp, nil
}

// DeleteOdsek odbija brisanje dok odsek ima aktivne zaposlene.
func (s *OdsekService) DeleteOdsek(ctx context.Context, id int) error {
	count, err := s.odsekRepo.CountAktivnihZaposlenih(ctx, id)
	if err != nil {
		s.logger.Error("Brojanje zaposlenih odseka nije uspelo", zap.Int("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return apperrors.NewBadRequestError("odsek ne može da se obriše dok ima aktivne zaposlene", nil)
	}

	if err := s.odsekRepo.DeleteOdsek(ctx, id); err != nil {
		s.logger.Error("Brisanje odseka nije uspelo", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("Odsek je deaktiviran", zap.Int("odsekID", id))
	return nil
}
