package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/repositories"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, actor *utils.Actor) (*dto.ProfileResponseDTO, error)
	UpdateEmail(ctx context.Context, actor *utils.Actor, payload dto.UpdateProfileDTO) error
	ChangePassword(ctx context.Context, actor *utils.Actor, payload dto.ChangePasswordDTO) error
}

type ProfileService struct {
	korisnikRepo  repositories.KorisnikRepositoryInterface
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	plataRepo     repositories.PlataRepositoryInterface
	zahtevRepo    repositories.ZahtevZaOdmorRepositoryInterface
	inventarRepo  repositories.InventarRepositoryInterface
	logger        *zap.Logger
}

func NewProfileService(
	korisnikRepo repositories.KorisnikRepositoryInterface,
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	plataRepo repositories.PlataRepositoryInterface,
	zahtevRepo repositories.ZahtevZaOdmorRepositoryInterface,
	inventarRepo repositories.InventarRepositoryInterface,
	logger *zap.Logger,
) ProfileServiceInterface {
	return &ProfileService{
		korisnikRepo:  korisnikRepo,
		zaposleniRepo: zaposleniRepo,
		plataRepo:     plataRepo,
		zahtevRepo:    zahtevRepo,
		inventarRepo:  inventarRepo,
		logger:        logger,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, actor *utils.Actor) (*dto.ProfileResponseDTO, error) {
	if actor.ZaposleniID == nil {
		return nil, apperrors.NewNotFoundError("nalog nije povezan sa zaposlenim")
	}

	zaposleni, err := s.zaposleniRepo.FindZaposleni(ctx, *actor.ZaposleniID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponseDTO{
		ID:              zaposleni.ID,
		Ime:             zaposleni.Ime,
		Prezime:         zaposleni.Prezime,
		Email:           zaposleni.Email,
		Telefon:         zaposleni.Telefon,
		Adresa:          zaposleni.Adresa,
		Pozicija:        zaposleni.NazivPozicije(),
		OdsekNaziv:      zaposleni.OdsekNaziv,
		DatumZaposlenja: zaposleni.DatumZaposlenja.Format("2006-01-02"),
		StazTekst:       utils.FormatStaz(zaposleni.DatumZaposlenja, time.Now()),
		SlikaURL:        zaposleni.SlikaURL,
		Inventar:        []dto.InventarResponseDTO{},
	}

	// Poslednja uneta plata, ne najveći period.
	plate, err := s.plataRepo.GetPlateZaposlenog(ctx, zaposleni.ID)
	if err != nil {
		s.logger.Warn("Dohvatanje plata za profil nije uspelo", zap.Error(err))
	} else if len(plate) > 0 {
		poslednja := plate[0]
		for i := range plate {
			if plate[i].CreatedAt != nil && poslednja.CreatedAt != nil &&
				plate[i].CreatedAt.After(*poslednja.CreatedAt) {
				poslednja = plate[i]
			}
		}
		neto := poslednja.Neto()
		profile.TrenutnaPlata = &neto
	}

	iskorisceno, err := s.zahtevRepo.SumOdobrenihDanaUGodini(ctx, zaposleni.ID, time.Now().Year())
	if err != nil {
		s.logger.Warn("Računanje iskorišćenih dana odmora nije uspelo", zap.Error(err))
	}
	preostalo := constants.GodisnjiFondDana - iskorisceno
	if preostalo < 0 {
		preostalo = 0
	}
	profile.PreostaliDani = preostalo

	if zaposleni.NadredjeniID != nil {
		nadredjeni, err := s.zaposleniRepo.FindZaposleni(ctx, *zaposleni.NadredjeniID)
		if err == nil {
			profile.Nadredjeni = &dto.ShortZaposleniDTO{
				ID:      nadredjeni.ID,
				Ime:     nadredjeni.Ime,
				Prezime: nadredjeni.Prezime,
			}
			if nadredjeni.NadredjeniID != nil {
				visi, err := s.zaposleniRepo.FindZaposleni(ctx, *nadredjeni.NadredjeniID)
				if err == nil {
					profile.NadredjeniNadredjenog = &dto.ShortZaposleniDTO{
						ID:      visi.ID,
						Ime:     visi.Ime,
						Prezime: visi.Prezime,
					}
				}
			}
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	stavke, err := s.inventarRepo.GetStavkeZaposlenog(ctx, zaposleni.ID)
	if err != nil {
		s.logger.Warn("Dohvatanje inventara za profil nije uspelo", zap.Error(err))
	} else {
		for i := range stavke {
			profile.Inventar = append(profile.Inventar, mapInventarToResponse(&stavke[i]))
		}
	}

	return profile, nil
}

func (s *ProfileService) UpdateEmail(ctx context.Context, actor *utils.Actor, payload dto.UpdateProfileDTO) error {
	if postojeci, err := s.korisnikRepo.FindByEmail(ctx, payload.Email); err == nil && postojeci.ID != actor.UserID {
		return apperrors.NewBadRequestError("email adresa je zauzeta", nil)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if err := s.korisnikRepo.UpdateEmail(ctx, actor.UserID, payload.Email); err != nil {
		s.logger.Error("Izmena email adrese nije uspela", zap.Int("korisnikID", actor.UserID), zap.Error(err))
		return err
	}
	s.logger.Info("Email adresa je izmenjena", zap.Int("korisnikID", actor.UserID))
	return nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, actor *utils.Actor, payload dto.ChangePasswordDTO) error {
	korisnik, err := s.korisnikRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if err := utils.ComparePasswords(korisnik.Lozinka, payload.StaraLozinka); err != nil {
		return apperrors.NewBadRequestError("stara lozinka nije ispravna", nil)
	}

	hash, err := utils.HashPassword(payload.NovaLozinka)
	if err != nil {
		s.logger.Error("Heširanje nove lozinke nije uspelo", zap.Error(err))
		return err
	}

	if err := s.korisnikRepo.UpdateLozinka(ctx, actor.UserID, hash); err != nil {
		s.logger.Error("Izmena lozinke nije uspela", zap.Int("korisnikID", actor.UserID), zap.Error(err))
		return err
	}
	s.logger.Info("Lozinka je izmenjena", zap.Int("korisnikID", actor.UserID))
	return nil
}
