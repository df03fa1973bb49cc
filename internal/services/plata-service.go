package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

type PlataServiceInterface interface {
	GetPlate(ctx context.Context, params types.ListParams) ([]dto.PlataResponseDTO, uint64, error)
	GetPlateZaposlenog(ctx context.Context, zaposleniID int) ([]dto.PlataResponseDTO, error)
	FindPlata(ctx context.Context, id int) (*dto.PlataResponseDTO, error)
	CreatePlata(ctx context.Context, payload dto.CreatePlataDTO) (*dto.PlataResponseDTO, error)
	UpdatePlata(ctx context.Context, id int, payload dto.UpdatePlataDTO) (*dto.PlataResponseDTO, error)
	DeletePlata(ctx context.Context, id int) error
}

type PlataService struct {
	plataRepo     repositories.PlataRepositoryInterface
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	logger        *zap.Logger
}

func NewPlataService(
	plataRepo repositories.PlataRepositoryInterface,
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	logger *zap.Logger,
) PlataServiceInterface {
	return &PlataService{
		plataRepo:     plataRepo,
		zaposleniRepo: zaposleniRepo,
		logger:        logger,
	}
}

// mapPlataToResponse izvodi neto iz komponenti; neto se nigde ne čuva.
func mapPlataToResponse(p *entities.Plata) dto.PlataResponseDTO {
	return dto.PlataResponseDTO{
		ID:                  p.ID,
		ZaposleniID:         p.ZaposleniID,
		ZaposleniImePrezime: p.ZaposleniImePrezime,
		Osnovna:             p.Osnovna,
		Bonusi:              p.Bonusi,
		Otkazi:              p.Otkazi,
		Neto:                p.Neto(),
		Period:              p.Period,
		Napomena:            p.Napomena,
	}
}

func (s *PlataService) GetPlate(ctx context.Context, params types.ListParams) ([]dto.PlataResponseDTO, uint64, error) {
	plate, total, err := s.plataRepo.GetPlate(ctx, params)
	if err != nil {
		s.logger.Error("Dohvatanje liste plata nije uspelo", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PlataResponseDTO, 0, len(plate))
	for i := range plate {
		result = append(result, mapPlataToResponse(&plate[i]))
	}
	return result, total, nil
}

func (s *PlataService) GetPlateZaposlenog(ctx context.Context, zaposleniID int) ([]dto.PlataResponseDTO, error) {
	plate, err := s.plataRepo.GetPlateZaposlenog(ctx, zaposleniID)
	if err != nil {
		s.logger.Error("Dohvatanje plata zaposlenog nije uspelo",
			zap.Int("zaposleniID", zaposleniID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PlataResponseDTO, 0, len(plate))
	for i := range plate {
		result = append(result, mapPlataToResponse(&plate[i]))
	}
	return result, nil
}

func (s *PlataService) FindPlata(ctx context.Context, id int) (*dto.PlataResponseDTO, error) {
	plata, err := s.plataRepo.FindPlata(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPlataToResponse(plata)
	return &resp, nil
}

func (s *PlataService) CreatePlata(ctx context.Context, payload dto.CreatePlataDTO) (*dto.PlataResponseDTO, error) {
	if _, err := s.zaposleniRepo.FindZaposleni(ctx, payload.ZaposleniID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("navedeni zaposleni ne postoji", nil)
		}
		return nil, err
	}

	plata, err := s.plataRepo.CreatePlata(ctx, entities.Plata{
		ZaposleniID: payload.ZaposleniID,
		Osnovna:     payload.Osnovna,
		Bonusi:      payload.Bonusi,
		Otkazi:      payload.Otkazi,
		Period:      payload.Period,
		Napomena:    payload.Napomena,
	})
	if err != nil {
		s.logger.Error("Kreiranje plate nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Uneta plata",
		zap.Int("plataID", plata.ID),
		zap.Int("zaposleniID", plata.ZaposleniID),
		zap.String("period", plata.Period))
	resp := mapPlataToResponse(plata)
	return &resp, nil
}

func (s *PlataService) UpdatePlata(ctx context.Context, id int, payload dto.UpdatePlataDTO) (*dto.PlataResponseDTO, error) {
	plata, err := s.plataRepo.UpdatePlata(ctx, id, payload)
	if err != nil {
		s.logger.Error("Izmena plate nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := mapPlataToResponse(plata)
	return &resp, nil
}

func (s *PlataService) DeletePlata(ctx context.Context, id int) error {
	err := s.plataRepo.DeletePlata(ctx, id)
	if err != nil {
		s.logger.Error("Brisanje plate nije uspelo", zap.Int("id", id), zap.Error(err))
	}
	return err
}
