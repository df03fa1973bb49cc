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

const pozicijaSelectColumns = `id, naziv, nivo, boja, opis, is_active, created_at, updated_at`

type PozicijaRepositoryInterface interface {
	GetPozicije(ctx context.Context) ([]entities.Pozicija, error)
	FindPozicija(ctx context.Context, id int) (*entities.Pozicija, error)
	FindPozicijaByNaziv(ctx context.Context, naziv string) (*entities.Pozicija, error)
	CreatePozicija(ctx context.Context, p entities.Pozicija) (*entities.Pozicija, error)
}

type PozicijaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPozicijaRepository(storage *pgxpool.Pool, logger *zap.Logger) PozicijaRepositoryInterface {
	return &PozicijaRepository{storage: storage, logger: logger}
}

func scanPozicija(row pgx.Row) (*entities.Pozicija, error) {
	var p entities.Pozicija
	err := row.Scan(&p.ID, &p.Naziv, &p.Nivo, &p.Boja, &p.Opis, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje pozicije nije uspelo: %w", err)
	}
	return &p, nil
}

func (r *PozicijaRepository) GetPozicije(ctx context.Context) ([]entities.Pozicija, error) {
	query := `SELECT ` + pozicijaSelectColumns + ` FROM pozicije WHERE is_active = TRUE ORDER BY nivo ASC, naziv ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pozicije := make([]entities.Pozicija, 0)
	for rows.Next() {
		p, err := scanPozicija(rows)
		if err != nil {
			return nil, err
		}
		pozicije = append(pozicije, *p)
	}
	return pozicije, rows.Err()
}

func (r *PozicijaRepository) FindPozicija(ctx context.Context, id int) (*entities.Pozicija, error) {
	query := `SELECT ` + pozicijaSelectColumns + ` FROM pozicije WHERE id = $1`
	return scanPozicija(r.storage.QueryRow(ctx, query, id))
}

func (r *PozicijaRepository) FindPozicijaByNaziv(ctx context.Context, naziv string) (*entities.Pozicija, error) {
	query := `SELECT ` + pozicijaSelectColumns + ` FROM pozicije WHERE LOWER(naziv) = LOWER($1) AND is_active = TRUE`
	return scanPozicija(r.storage.QueryRow(ctx, query, naziv))
}

func (r *PozicijaRepository) CreatePozicija(ctx context.Context, p entities.Pozicija) (*entities.Pozicija, error) {
	query := `INSERT INTO pozicije (naziv, nivo, boja, opis, is_active)
	VALUES ($1, $2, $3, $4, TRUE)
	RETURNING ` + pozicijaSelectColumns
	return scanPozicija(r.storage.QueryRow(ctx, query, p.Naziv, p.Nivo, p.Boja, p.Opis))
}
