package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

type InventarServiceInterface interface {
	GetStavke(ctx context.Context, params types.ListParams, filter dto.InventarFilterDTO) ([]dto.InventarResponseDTO, uint64, error)
	FindStavka(ctx context.Context, id int) (*dto.InventarResponseDTO, error)
	GetStavkeZaposlenog(ctx context.Context, zaposleniID int) ([]dto.InventarResponseDTO, error)
	GetKategorije(ctx context.Context) ([]string, error)
	GetLokacije(ctx context.Context) ([]string, error)
	GetStatistike(ctx context.Context) (*dto.InventarStatistikeDTO, error)
	CreateStavka(ctx context.Context, payload dto.CreateInventarDTO) (*dto.InventarResponseDTO, error)
	UpdateStavka(ctx context.Context, id int, payload dto.UpdateInventarDTO) (*dto.InventarResponseDTO, error)
	Dodeli(ctx context.Context, id int, payload dto.DodeliInventarDTO) (*dto.InventarResponseDTO, error)
	Vrati(ctx context.Context, id int, payload dto.VratiInventarDTO) (*dto.InventarResponseDTO, error)
	DeleteStavka(ctx context.Context, id int) error
}

type InventarService struct {
	inventarRepo  repositories.InventarRepositoryInterface
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	logger        *zap.Logger
}

func NewInventarService(
	inventarRepo repositories.InventarRepositoryInterface,
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	logger *zap.Logger,
) InventarServiceInterface {
	return &InventarService{
		inventarRepo:  inventarRepo,
		zaposleniRepo: zaposleniRepo,
		logger:        logger,
	}
}

func mapInventarToResponse(s *entities.InventarStavka) dto.InventarResponseDTO {
	resp := dto.InventarResponseDTO{
		ID:                  s.ID,
		Naziv:               s.Naziv,
		Opis:                s.Opis,
		Kategorija:          s.Kategorija,
		SerijskiBroj:        s.SerijskiBroj,
		Vrednost:            s.Vrednost,
		Stanje:              s.Stanje,
		Lokacija:            s.Lokacija,
		DatumNabavke:        s.DatumNabavke.Format("2006-01-02"),
		ZaposleniID:         s.ZaposleniID,
		ZaposleniImePrezime: s.ZaposleniImePrezime,
		Dodeljena:           s.Dodeljena(),
		QRKod:               s.QRKod,
		IsActive:            s.IsActive,
	}
	if s.DatumDodele != nil {
		d := s.DatumDodele.Format("2006-01-02")
		resp.DatumDodele = &d
	}
	if s.DatumVracanja != nil {
		d := s.DatumVracanja.Format("2006-01-02")
		resp.DatumVracanja = &d
	}
	return resp
}

func (s *InventarService) GetStavke(ctx context.Context, params types.ListParams, filter dto.InventarFilterDTO) ([]dto.InventarResponseDTO, uint64, error) {
	stavke, total, err := s.inventarRepo.GetStavke(ctx, params, filter)
	if err != nil {
		s.logger.Error("Dohvatanje stavki inventara nije uspelo", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InventarResponseDTO, 0, len(stavke))
	for i := range stavke {
		result = append(result, mapInventarToResponse(&stavke[i]))
	}
	return result, total, nil
}

func (s *InventarService) FindStavka(ctx context.Context, id int) (*dto.InventarResponseDTO, error) {
	stavka, err := s.inventarRepo.FindStavka(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapInventarToResponse(stavka)
	return &resp, nil
}

func (s *InventarService) GetStavkeZaposlenog(ctx context.Context, zaposleniID int) ([]dto.InventarResponseDTO, error) {
	stavke, err := s.inventarRepo.GetStavkeZaposlenog(ctx, zaposleniID)
	if err != nil {
		s.logger.Error("Dohvatanje inventara zaposlenog nije uspelo",
			zap.Int("zaposleniID", zaposleniID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.InventarResponseDTO, 0, len(stavke))
	for i := range stavke {
		result = append(result, mapInventarToResponse(&stavke[i]))
	}
	return result, nil
}

func (s *InventarService) GetKategorije(ctx context.Context) ([]string, error) {
	return s.inventarRepo.GetKategorije(ctx)
}

func (s *InventarService) GetLokacije(ctx context.Context) ([]string, error) {
	return s.inventarRepo.GetLokacije(ctx)
}

func (s *InventarService) GetStatistike(ctx context.Context) (*dto.InventarStatistikeDTO, error) {
	stats, err := s.inventarRepo.GetStatistike(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje statistike inventara nije uspelo", zap.Error(err))
	}
	return stats, err
}

func (s *InventarService) CreateStavka(ctx context.Context, payload dto.CreateInventarDTO) (*dto.InventarResponseDTO, error) {
	datumNabavke, err := time.Parse("2006-01-02", payload.DatumNabavke)
	if err != nil {
		return nil, apperrors.NewBadRequestError("neispravan datum nabavke", err)
	}

	stavka, err := s.inventarRepo.CreateStavka(ctx, entities.InventarStavka{
		Naziv:        payload.Naziv,
		Opis:         payload.Opis,
		Kategorija:   payload.Kategorija,
		SerijskiBroj: payload.SerijskiBroj,
		Vrednost:     payload.Vrednost,
		Stanje:       payload.Stanje,
		Lokacija:     payload.Lokacija,
		DatumNabavke: datumNabavke,
		QRKod:        fmt.Sprintf("hr-system://inventar/%s", uuid.NewString()),
	})
	if err != nil {
		s.logger.Error("Kreiranje stavke inventara nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Kreirana nova stavka inventara", zap.Int("stavkaID", stavka.ID))
	resp := mapInventarToResponse(stavka)
	return &resp, nil
}

func (s *InventarService) UpdateStavka(ctx context.Context, id int, payload dto.UpdateInventarDTO) (*dto.InventarResponseDTO, error) {
	stavka, err := s.inventarRepo.UpdateStavka(ctx, id, payload)
	if err != nil {
		s.logger.Error("Izmena stavke inventara nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := mapInventarToResponse(stavka)
	return &resp, nil
}

func (s *InventarService) Dodeli(ctx context.Context, id int, payload dto.DodeliInventarDTO) (*dto.InventarResponseDTO, error) {
	stavka, err := s.inventarRepo.FindStavka(ctx, id)
	if err != nil {
		return nil, err
	}
	if stavka.Dodeljena() {
		return nil, apperrors.NewBadRequestError("stavka je već dodeljena drugom zaposlenom", nil)
	}

	if _, err := s.zaposleniRepo.FindZaposleni(ctx, payload.ZaposleniID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("navedeni zaposleni ne postoji", nil)
		}
		return nil, err
	}

	if err := s.inventarRepo.Dodeli(ctx, id, payload.ZaposleniID); err != nil {
		s.logger.Error("Dodela stavke inventara nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Stavka inventara je dodeljena",
		zap.Int("stavkaID", id), zap.Int("zaposleniID", payload.ZaposleniID))
	return s.FindStavka(ctx, id)
}

func (s *InventarService) Vrati(ctx context.Context, id int, payload dto.VratiInventarDTO) (*dto.InventarResponseDTO, error) {
	stavka, err := s.inventarRepo.FindStavka(ctx, id)
	if err != nil {
		return nil, err
	}
	if !stavka.Dodeljena() {
		return nil, apperrors.NewBadRequestError("stavka trenutno nije dodeljena", nil)
	}

	if err := s.inventarRepo.Vrati(ctx, id, payload.NovoStanje, payload.Napomena); err != nil {
		s.logger.Error("Vraćanje stavke inventara nije uspelo", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Stavka inventara je vraćena", zap.Int("stavkaID", id))
	return s.FindStavka(ctx, id)
}

func (s *InventarService) DeleteStavka(ctx context.Context, id int) error {
	stavka, err := s.inventarRepo.FindStavka(ctx, id)
	if err != nil {
		return err
	}
	if stavka.Dodeljena() {
		return apperrors.NewBadRequestError("dodeljena stavka ne može da se obriše; prvo je razdužite", nil)
	}

	if err := s.inventarRepo.DeleteStavka(ctx, id); err != nil {
		s.logger.Error("Brisanje stavke inventara nije uspelo", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("Stavka inventara je deaktivirana", zap.Int("stavkaID", id))
	return nil
}
