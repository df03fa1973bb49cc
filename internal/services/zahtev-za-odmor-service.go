package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"hr-system/internal/authz"
	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

type ZahtevZaOdmorServiceInterface interface {
	GetZahtevi(ctx context.Context, params types.ListParams, status string) ([]dto.ZahtevZaOdmorResponseDTO, uint64, error)
	FindZahtev(ctx context.Context, id int) (*dto.ZahtevZaOdmorResponseDTO, error)
	CreateZahtev(ctx context.Context, actor *utils.Actor, payload dto.CreateZahtevZaOdmorDTO) (*dto.ZahtevZaOdmorResponseDTO, error)
	Odobri(ctx context.Context, actor *utils.Actor, id int, payload dto.OdgovorNaZahtevDTO) (*dto.ZahtevZaOdmorResponseDTO, error)
	Odbaci(ctx context.Context, actor *utils.Actor, id int, payload dto.OdgovorNaZahtevDTO) (*dto.ZahtevZaOdmorResponseDTO, error)
	DeleteZahtev(ctx context.Context, actor *utils.Actor, id int) error
}

type ZahtevZaOdmorService struct {
	zahtevRepo    repositories.ZahtevZaOdmorRepositoryInterface
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	logger        *zap.Logger

	// now postoji radi determinističkih testova; podrazumevano time.Now.
	now func() time.Time
}

func NewZahtevZaOdmorService(
	zahtevRepo repositories.ZahtevZaOdmorRepositoryInterface,
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	logger *zap.Logger,
) *ZahtevZaOdmorService {
	return &ZahtevZaOdmorService{
		zahtevRepo:    zahtevRepo,
		zaposleniRepo: zaposleniRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func mapZahtevToResponse(z *entities.ZahtevZaOdmor) dto.ZahtevZaOdmorResponseDTO {
	resp := dto.ZahtevZaOdmorResponseDTO{
		ID:                   z.ID,
		ZaposleniID:          z.ZaposleniID,
		ZaposleniImePrezime:  z.ZaposleniImePrezime,
		DatumOd:              z.DatumOd.Format("2006-01-02"),
		DatumDo:              z.DatumDo.Format("2006-01-02"),
		BrojDana:             z.BrojDana(),
		Razlog:               z.Razlog,
		TipOdmora:            z.TipOdmora,
		Status:               z.Status,
		DatumZahteva:         z.DatumZahteva.Format("2006-01-02 15:04"),
		OdobrioKorisnikID:    z.OdobrioKorisnikID,
		OdobrioKorisnickoIme: z.OdobrioKorisnickoIme,
		Napomena:             z.Napomena,
	}
	if z.DatumOdgovora != nil {
		resp.DatumOdgovora = utils.StringPtr(z.DatumOdgovora.Format("2006-01-02 15:04"))
	}
	return resp
}

// GetZahtevi za privilegovane uloge vraća sve zahteve; običan zaposleni
// dobija samo svoje.
func (s *ZahtevZaOdmorService) GetZahtevi(ctx context.Context, params types.ListParams, status string) ([]dto.ZahtevZaOdmorResponseDTO, uint64, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	var zaposleniID *int
	if actor.Role == constants.RoleZaposleni {
		if actor.ZaposleniID == nil {
			return []dto.ZahtevZaOdmorResponseDTO{}, 0, nil
		}
		zaposleniID = actor.ZaposleniID
	}

	zahtevi, total, err := s.zahtevRepo.GetZahtevi(ctx, params, zaposleniID, status)
	if err != nil {
		s.logger.Error("Dohvatanje zahteva za odmor nije uspelo", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ZahtevZaOdmorResponseDTO, 0, len(zahtevi))
	for i := range zahtevi {
		result = append(result, mapZahtevToResponse(&zahtevi[i]))
	}
	return result, total, nil
}

func (s *ZahtevZaOdmorService) FindZahtev(ctx context.Context, id int) (*dto.ZahtevZaOdmorResponseDTO, error) {
	zahtev, err := s.zahtevRepo.FindZahtev(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapZahtevToResponse(zahtev)
	return &resp, nil
}

// CreateZahtev sprovodi pravila redom: kraj strogo posle početka, početak
// nije u prošlosti, običan zaposleni podnosi samo za sebe, bez preklapanja
// sa već odobrenim zahtevima istog zaposlenog.
func (s *ZahtevZaOdmorService) CreateZahtev(ctx context.Context, actor *utils.Actor, payload dto.CreateZahtevZaOdmorDTO) (*dto.ZahtevZaOdmorResponseDTO, error) {
	datumOd, err := time.Parse("2006-01-02", payload.DatumOd)
	if err != nil {
		return nil, apperrors.NewBadRequestError("neispravan datum početka", err)
	}
	datumDo, err := time.Parse("2006-01-02", payload.DatumDo)
	if err != nil {
		return nil, apperrors.NewBadRequestError("neispravan datum kraja", err)
	}

	if !utils.DateOnly(datumDo).After(utils.DateOnly(datumOd)) {
		return nil, apperrors.NewBadRequestError("datum kraja mora biti posle datuma početka", nil)
	}

	danas := utils.DateOnly(s.now())
	if utils.DateOnly(datumOd).Before(danas) {
		return nil, apperrors.NewBadRequestError("datum početka ne sme biti u prošlosti", nil)
	}

	if !authz.CanDo(actor.Role, &payload.ZaposleniID, actor.ZaposleniID, authz.ActionCreateZahtev) {
		return nil, apperrors.NewForbiddenError("zahtev možete podneti samo za sebe")
	}

	if _, err := s.zaposleniRepo.FindZaposleni(ctx, payload.ZaposleniID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("navedeni zaposleni ne postoji", nil)
		}
		return nil, err
	}

	odobreni, err := s.zahtevRepo.GetOdobreneZahteve(ctx, payload.ZaposleniID)
	if err != nil {
		s.logger.Error("Provera preklapanja odmora nije uspela", zap.Error(err))
		return nil, err
	}
	for i := range odobreni {
		if utils.DatumiSePoklapaju(datumOd, datumDo, odobreni[i].DatumOd, odobreni[i].DatumDo) {
			return nil, apperrors.NewBadRequestError("traženi period se preklapa sa već odobrenim odmorom", nil)
		}
	}

	zahtev, err := s.zahtevRepo.CreateZahtev(ctx, entities.ZahtevZaOdmor{
		ZaposleniID: payload.ZaposleniID,
		DatumOd:     datumOd,
		DatumDo:     datumDo,
		Razlog:      payload.Razlog,
		TipOdmora:   payload.TipOdmora,
		Status:      constants.StatusNaCekanju,
	})
	if err != nil {
		s.logger.Error("Kreiranje zahteva za odmor nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Podnet zahtev za odmor",
		zap.Int("zahtevID", zahtev.ID),
		zap.Int("zaposleniID", zahtev.ZaposleniID),
		zap.Int("brojDana", zahtev.BrojDana()))
	resp := mapZahtevToResponse(zahtev)
	return &resp, nil
}

func (s *ZahtevZaOdmorService) Odobri(ctx context.Context, actor *utils.Actor, id int, payload dto.OdgovorNaZahtevDTO) (*dto.ZahtevZaOdmorResponseDTO, error) {
	var napomena *string
	if strings.TrimSpace(payload.Napomena) != "" {
		napomena = &payload.Napomena
	}
	return s.respond(ctx, actor, id, constants.StatusOdobren, napomena)
}

// Odbaci zahteva neprazno obrazloženje.
func (s *ZahtevZaOdmorService) Odbaci(ctx context.Context, actor *utils.Actor, id int, payload dto.OdgovorNaZahtevDTO) (*dto.ZahtevZaOdmorResponseDTO, error) {
	if strings.TrimSpace(payload.Napomena) == "" {
		return nil, apperrors.NewBadRequestError("za odbacivanje zahteva obavezno je obrazloženje", nil)
	}
	return s.respond(ctx, actor, id, constants.StatusOdbacen, &payload.Napomena)
}

func (s *ZahtevZaOdmorService) respond(ctx context.Context, actor *utils.Actor, id int, status string, napomena *string) (*dto.ZahtevZaOdmorResponseDTO, error) {
	if !authz.CanRespond(actor.Role) {
		return nil, apperrors.NewForbiddenError("nemate pravo da odlučujete o zahtevima za odmor")
	}

	zahtev, err := s.zahtevRepo.FindZahtev(ctx, id)
	if err != nil {
		return nil, err
	}
	if zahtev.Status != constants.StatusNaCekanju {
		return nil, apperrors.NewBadRequestError("zahtev je već obrađen", nil)
	}

	if err := s.zahtevRepo.UpdateStatus(ctx, id, status, actor.UserID, napomena); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Zahtev je u međuvremenu obrađen.
			return nil, apperrors.NewBadRequestError("zahtev je već obrađen", nil)
		}
		s.logger.Error("Izmena statusa zahteva nije uspela", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Zahtev za odmor je obrađen",
		zap.Int("zahtevID", id),
		zap.String("status", status),
		zap.Int("korisnikID", actor.UserID))
	return s.FindZahtev(ctx, id)
}

// DeleteZahtev: vlasnik sme da obriše samo zahtev na čekanju;
// HRManager i SuperAdmin brišu bez obzira na status.
func (s *ZahtevZaOdmorService) DeleteZahtev(ctx context.Context, actor *utils.Actor, id int) error {
	zahtev, err := s.zahtevRepo.FindZahtev(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanDo(actor.Role, &zahtev.ZaposleniID, actor.ZaposleniID, authz.ActionDeleteZahtev) {
		return apperrors.NewForbiddenError("nemate pravo da obrišete ovaj zahtev")
	}
	if !authz.IsPrivileged(actor.Role) && zahtev.Status != constants.StatusNaCekanju {
		return apperrors.NewBadRequestError("obrađen zahtev više ne može da se obriše", nil)
	}

	if err := s.zahtevRepo.DeleteZahtev(ctx, id); err != nil {
		s.logger.Error("Brisanje zahteva nije uspelo", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("Zahtev za odmor je obrisan", zap.Int("zahtevID", id), zap.Int("korisnikID", actor.UserID))
	return nil
}
