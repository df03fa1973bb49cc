package services

import (
	"context"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/types"
)

type VestServiceInterface interface {
	GetVesti(ctx context.Context, params types.ListParams) ([]dto.VestResponseDTO, uint64, error)
	FindVest(ctx context.Context, id int) (*dto.VestResponseDTO, error)
	CreateVest(ctx context.Context, autor string, payload dto.CreateVestDTO) (*dto.VestResponseDTO, error)
	UpdateVest(ctx context.Context, id int, payload dto.UpdateVestDTO) (*dto.VestResponseDTO, error)
	DeleteVest(ctx context.Context, id int) error
}

type VestService struct {
	vestRepo repositories.VestRepositoryInterface
	logger   *zap.Logger
}

func NewVestService(vestRepo repositories.VestRepositoryInterface, logger *zap.Logger) VestServiceInterface {
	return &VestService{vestRepo: vestRepo, logger: logger}
}

func mapVestToResponse(v *entities.Vest) dto.VestResponseDTO {
	return dto.VestResponseDTO{
		ID:          v.ID,
		Naslov:      v.Naslov,
		Sadrzaj:     v.Sadrzaj,
		Autor:       v.Autor,
		DatumObjave: v.DatumObjave.Format("2006-01-02 15:04"),
	}
}

func (s *VestService) GetVesti(ctx context.Context, params types.ListParams) ([]dto.VestResponseDTO, uint64, error) {
	vesti, total, err := s.vestRepo.GetVesti(ctx, params)
	if err != nil {
		s.logger.Error("Dohvatanje vesti nije uspelo", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.VestResponseDTO, 0, len(vesti))
	for i := range vesti {
		result = append(result, mapVestToResponse(&vesti[i]))
	}
	return result, total, nil
}

func (s *VestService) FindVest(ctx context.Context, id int) (*dto.VestResponseDTO, error) {
	vest, err := s.vestRepo.FindVest(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapVestToResponse(vest)
	return &resp, nil
}

func (s *VestService) CreateVest(ctx context.Context, autor string, payload dto.CreateVestDTO) (*dto.VestResponseDTO, error) {
	if payload.Autor != "" {
		autor = payload.Autor
	}

	vest, err := s.vestRepo.CreateVest(ctx, entities.Vest{
		Naslov:  payload.Naslov,
		Sadrzaj: payload.Sadrzaj,
		Autor:   autor,
	})
	if err != nil {
		s.logger.Error("Kreiranje vesti nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Objavljena nova vest", zap.Int("vestID", vest.ID))
	resp := mapVestToResponse(vest)
	return &resp, nil
}

func (s *VestService) UpdateVest(ctx context.Context, id int, payload dto.UpdateVestDTO) (*dto.VestResponseDTO, error) {
	vest, err := s.vestRepo.UpdateVest(ctx, id, payload)
	if err != nil {
		s.logger.Error("Izmena vesti nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := mapVestToResponse(vest)
	return &resp, nil
}

func (s *VestService) DeleteVest(ctx context.Context, id int) error {
	err := s.vestRepo.DeleteVest(ctx, id)
	if err != nil {
		s.logger.Error("Brisanje vesti nije uspelo", zap.Int("id", id), zap.Error(err))
	}
	return err
}
