package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/config"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/service"
	"hr-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Korisnik, error)
}

type AuthService struct {
	korisnikRepo repositories.KorisnikRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	jwtService   service.JWTService
	cfg          *config.AuthConfig
	logger       *zap.Logger
}

func NewAuthService(
	korisnikRepo repositories.KorisnikRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		korisnikRepo: korisnikRepo,
		cacheRepo:    cacheRepo,
		jwtService:   jwtService,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("korisnickoIme", payload.UserName))

	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.UserName)
	attemptsStr, _ := s.cacheRepo.Get(ctx, lockoutKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		logger.Warn("Nalog je privremeno zaključan zbog previše neuspelih prijava")
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Previše neuspelih pokušaja. Pokušajte ponovo za %.0f minuta.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	korisnik, err := s.korisnikRepo.FindByKorisnickoIme(ctx, payload.UserName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, lockoutKey)
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error("Pretraga korisnika nije uspela", zap.Error(err))
		return nil, err
	}
	if !korisnik.IsActive {
		logger.Warn("Pokušaj prijave na deaktiviran nalog")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(korisnik.Lozinka, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, lockoutKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	_ = s.cacheRepo.Del(ctx, lockoutKey)

	token, expiresAt, err := s.jwtService.GenerateToken(
		korisnik.ID, korisnik.KorisnickoIme, korisnik.Email, korisnik.Uloga, korisnik.ZaposleniID)
	if err != nil {
		logger.Error("Generisanje tokena nije uspelo", zap.Error(err))
		return nil, err
	}

	if err := s.korisnikRepo.StampPrijavljivanje(ctx, korisnik.ID); err != nil {
		logger.Warn("Upis vremena prijave nije uspeo", zap.Error(err))
	}

	logger.Info("Korisnik se uspešno prijavio", zap.Int("korisnikID", korisnik.ID))
	return &dto.AuthResponseDTO{
		Token:       token,
		UserName:    korisnik.KorisnickoIme,
		Email:       korisnik.Email,
		Role:        korisnik.Uloga,
		ZaposleniID: korisnik.ZaposleniID,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, lockoutKey string) {
	attempts, err := s.cacheRepo.Incr(ctx, lockoutKey)
	if err != nil {
		s.logger.Warn("Upis neuspelog pokušaja prijave nije uspeo", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, lockoutKey, s.cfg.LockoutDuration); err != nil {
			s.logger.Warn("Postavljanje isteka brojača prijava nije uspelo", zap.Error(err))
		}
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Korisnik, error) {
	if _, err := s.korisnikRepo.FindByKorisnickoIme(ctx, payload.UserName); err == nil {
		return nil, apperrors.NewBadRequestError("korisničko ime je zauzeto", nil)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.korisnikRepo.FindByEmail(ctx, payload.Email); err == nil {
		return nil, apperrors.NewBadRequestError("email adresa je zauzeta", nil)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Heširanje lozinke nije uspelo", zap.Error(err))
		return nil, err
	}

	uloga := payload.Uloga
	if uloga == "" {
		uloga = constants.RoleZaposleni
	}

	korisnik, err := s.korisnikRepo.CreateKorisnik(ctx, entities.Korisnik{
		KorisnickoIme: payload.UserName,
		Email:         payload.Email,
		Lozinka:       hash,
		Uloga:         uloga,
		ZaposleniID:   payload.ZaposleniID,
	})
	if err != nil {
		s.logger.Error("Kreiranje korisnika nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Kreiran nov korisnik",
		zap.Int("korisnikID", korisnik.ID),
		zap.String("uloga", korisnik.Uloga))
	return korisnik, nil
}
