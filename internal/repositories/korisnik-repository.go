package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
)

const korisnikTable = "korisnici"

const korisnikSelectColumns = `id, korisnicko_ime, email, lozinka, uloga, zaposleni_id,
	is_active, poslednje_prijavljivanje, created_at, updated_at`

type KorisnikRepositoryInterface interface {
	FindByID(ctx context.Context, id int) (*entities.Korisnik, error)
	FindByKorisnickoIme(ctx context.Context, korisnickoIme string) (*entities.Korisnik, error)
	FindByEmail(ctx context.Context, email string) (*entities.Korisnik, error)
	CreateKorisnik(ctx context.Context, k entities.Korisnik) (*entities.Korisnik, error)
	CreateKorisnikTx(ctx context.Context, tx pgx.Tx, k entities.Korisnik) (*entities.Korisnik, error)
	UpdateEmail(ctx context.Context, id int, email string) error
	UpdateLozinka(ctx context.Context, id int, hash string) error
	StampPrijavljivanje(ctx context.Context, id int) error
}

type KorisnikRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewKorisnikRepository(storage *pgxpool.Pool, logger *zap.Logger) KorisnikRepositoryInterface {
	return &KorisnikRepository{storage: storage, logger: logger}
}

func scanKorisnik(row pgx.Row) (*entities.Korisnik, error) {
	var k entities.Korisnik
	err := row.Scan(&k.ID, &k.KorisnickoIme, &k.Email, &k.Lozinka, &k.Uloga, &k.ZaposleniID,
		&k.IsActive, &k.PoslednjePrijavljivanje, &k.CreatedAt, &k.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje korisnika nije uspelo: %w", err)
	}
	return &k, nil
}

func (r *KorisnikRepository) FindByID(ctx context.Context, id int) (*entities.Korisnik, error) {
	query := `SELECT ` + korisnikSelectColumns + ` FROM korisnici WHERE id = $1`
	return scanKorisnik(r.storage.QueryRow(ctx, query, id))
}

func (r *KorisnikRepository) FindByKorisnickoIme(ctx context.Context, korisnickoIme string) (*entities.Korisnik, error) {
	query := `SELECT ` + korisnikSelectColumns + ` FROM korisnici WHERE LOWER(korisnicko_ime) = LOWER($1)`
	return scanKorisnik(r.storage.QueryRow(ctx, query, korisnickoIme))
}

func (r *KorisnikRepository) FindByEmail(ctx context.Context, email string) (*entities.Korisnik, error) {
	query := `SELECT ` + korisnikSelectColumns + ` FROM korisnici WHERE LOWER(email) = LOWER($1)`
	return scanKorisnik(r.storage.QueryRow(ctx, query, email))
}

func insertKorisnik(ctx context.Context, q querier, k entities.Korisnik) (*entities.Korisnik, error) {
	query := `INSERT INTO korisnici (korisnicko_ime, email, lozinka, uloga, zaposleni_id, is_active)
	VALUES ($1, $2, $3, $4, $5, TRUE)
	RETURNING ` + korisnikSelectColumns
	return scanKorisnik(q.QueryRow(ctx, query,
		k.KorisnickoIme, k.Email, k.Lozinka, k.Uloga, k.ZaposleniID))
}

func (r *KorisnikRepository) CreateKorisnik(ctx context.Context, k entities.Korisnik) (*entities.Korisnik, error) {
	return insertKorisnik(ctx, r.storage, k)
}

// CreateKorisnikTx upisuje korisnika unutar postojeće transakcije.
func (r *KorisnikRepository) CreateKorisnikTx(ctx context.Context, tx pgx.Tx, k entities.Korisnik) (*entities.Korisnik, error) {
	return insertKorisnik(ctx, tx, k)
}

func (r *KorisnikRepository) UpdateEmail(ctx context.Context, id int, email string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE korisnici SET email = $1, updated_at = NOW() WHERE id = $2`, email, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *KorisnikRepository) UpdateLozinka(ctx context.Context, id int, hash string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE korisnici SET lozinka = $1, updated_at = NOW() WHERE id = $2`, hash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *KorisnikRepository) StampPrijavljivanje(ctx context.Context, id int) error {
	_, err := r.storage.Exec(ctx,
		`UPDATE korisnici SET poslednje_prijavljivanje = NOW() WHERE id = $1`, id)
	return err
}
