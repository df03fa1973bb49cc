package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
)

const odsekTable = "odseci"

type OdsekRepositoryInterface interface {
	GetOdseci(ctx context.Context) ([]entities.Odsek, error)
	FindOdsek(ctx context.Context, id int) (*entities.Odsek, error)
	FindOdsekByNaziv(ctx context.Context, naziv string) (*entities.Odsek, error)
	CountAktivnihZaposlenih(ctx context.Context, odsekID int) (int64, error)
	CreateOdsek(ctx context.Context, o entities.Odsek) (*entities.Odsek, error)
	UpdateOdsek(ctx context.Context, id int, payload dto.UpdateOdsekDTO) (*entities.Odsek, error)
	DeleteOdsek(ctx context.Context, id int) error
}

type OdsekRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOdsekRepository(storage *pgxpool.Pool, logger *zap.Logger) OdsekRepositoryInterface {
	return &OdsekRepository{storage: storage, logger: logger}
}

func scanOdsek(row pgx.Row) (*entities.Odsek, error) {
	var o entities.Odsek
	err := row.Scan(&o.ID, &o.Naziv, &o.Opis, &o.IsActive, &o.CreatedAt, &o.UpdatedAt, &o.BrojZaposlenih)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje odseka nije uspelo: %w", err)
	}
	return &o, nil
}

const odsekSelectQuery = `SELECT o.id, o.naziv, o.opis, o.is_active, o.created_at, o.updated_at,
	COUNT(z.id) FILTER (WHERE z.is_active) AS broj_zaposlenih
	FROM odseci o
	LEFT JOIN zaposleni z ON z.odsek_id = o.id`

func (r *OdsekRepository) GetOdseci(ctx context.Context) ([]entities.Odsek, error) {
	query := odsekSelectQuery + `
	WHERE o.is_active = TRUE
	GROUP BY o.id
	ORDER BY o.naziv ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	odseci := make([]entities.Odsek, 0)
	for rows.Next() {
		o, err := scanOdsek(rows)
		if err != nil {
			return nil, err
		}
		odseci = append(odseci, *o)
	}
	return odseci, rows.Err()
}

func (r *OdsekRepository) FindOdsek(ctx context.Context, id int) (*entities.Odsek, error) {
	query := odsekSelectQuery + ` WHERE o.id = $1 GROUP BY o.id`
	return scanOdsek(r.storage.QueryRow(ctx, query, id))
}

func (r *OdsekRepository) FindOdsekByNaziv(ctx context.Context, naziv string) (*entities.Odsek, error) {
	query := odsekSelectQuery + ` WHERE LOWER(o.naziv) = LOWER($1) AND o.is_active = TRUE GROUP BY o.id`
	return scanOdsek(r.storage.QueryRow(ctx, query, naziv))
}

func (r *OdsekRepository) CountAktivnihZaposlenih(ctx context.Context, odsekID int) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM zaposleni WHERE odsek_id = $1 AND is_active = TRUE`, odsekID).Scan(&count)
	return count, err
}

func (r *OdsekRepository) CreateOdsek(ctx context.Context, o entities.Odsek) (*entities.Odsek, error) {
	var id int
	err := r.storage.QueryRow(ctx,
		`INSERT INTO odseci (naziv, opis, is_active) VALUES ($1, $2, TRUE) RETURNING id`,
		o.Naziv, o.Opis).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upis odseka nije uspeo: %w", err)
	}
	return r.FindOdsek(ctx, id)
}

func (r *OdsekRepository) UpdateOdsek(ctx context.Context, id int, payload dto.UpdateOdsekDTO) (*entities.Odsek, error) {
	builder := sq.Update(odsekTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Naziv != nil {
		builder = builder.Set("naziv", *payload.Naziv)
		hasChanges = true
	}
	if payload.Opis != nil {
		builder = builder.Set("opis", *payload.Opis)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindOdsek(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindOdsek(ctx, id)
}

func (r *OdsekRepository) DeleteOdsek(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE odseci SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
