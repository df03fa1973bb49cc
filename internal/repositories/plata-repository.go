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
	"hr-system/pkg/types"
)

const plataTable = "plate"

var plataAllowedSortFields = map[string]string{
	"id":         "p.id",
	"period":     "p.period",
	"osnovna":    "p.osnovna",
	"created_at": "p.created_at",
}

const plataSelectColumns = `p.id, p.zaposleni_id, p.osnovna, p.bonusi, p.otkazi, p.period,
	p.napomena, p.created_at, p.updated_at, z.ime || ' ' || z.prezime AS zaposleni_ime_prezime`

type PlataRepositoryInterface interface {
	GetPlate(ctx context.Context, params types.ListParams) ([]entities.Plata, uint64, error)
	GetPlateZaposlenog(ctx context.Context, zaposleniID int) ([]entities.Plata, error)
	FindPlata(ctx context.Context, id int) (*entities.Plata, error)
	CreatePlata(ctx context.Context, p entities.Plata) (*entities.Plata, error)
	UpdatePlata(ctx context.Context, id int, payload dto.UpdatePlataDTO) (*entities.Plata, error)
	DeletePlata(ctx context.Context, id int) error
}

type PlataRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPlataRepository(storage *pgxpool.Pool, logger *zap.Logger) PlataRepositoryInterface {
	return &PlataRepository{storage: storage, logger: logger}
}

func scanPlata(row pgx.Row) (*entities.Plata, error) {
	var p entities.Plata
	err := row.Scan(&p.ID, &p.ZaposleniID, &p.Osnovna, &p.Bonusi, &p.Otkazi, &p.Period,
		&p.Napomena, &p.CreatedAt, &p.UpdatedAt, &p.ZaposleniImePrezime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje plate nije uspelo: %w", err)
	}
	return &p, nil
}

func (r *PlataRepository) GetPlate(ctx context.Context, params types.ListParams) ([]entities.Plata, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").
		From(plataTable + " p").
		Join("zaposleni z ON z.id = p.zaposleni_id").
		PlaceholderFormat(sq.Dollar)
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		countBuilder = countBuilder.Where(sq.Or{
			sq.ILike{"z.ime": pattern},
			sq.ILike{"z.prezime": pattern},
			sq.ILike{"p.period": pattern},
		})
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Plata{}, 0, nil
	}

	orderBy := "p.period DESC, p.id DESC"
	if col, ok := plataAllowedSortFields[params.SortBy]; ok {
		direction := "DESC"
		if params.Ascending {
			direction = "ASC"
		}
		orderBy = col + " " + direction
	}

	builder := sq.Select(plataSelectColumns).
		From(plataTable + " p").
		Join("zaposleni z ON z.id = p.zaposleni_id").
		OrderBy(orderBy).
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset())).
		PlaceholderFormat(sq.Dollar)
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"z.ime": pattern},
			sq.ILike{"z.prezime": pattern},
			sq.ILike{"p.period": pattern},
		})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	plate := make([]entities.Plata, 0, params.PageSize)
	for rows.Next() {
		p, err := scanPlata(rows)
		if err != nil {
			return nil, 0, err
		}
		plate = append(plate, *p)
	}
	return plate, total, rows.Err()
}

func (r *PlataRepository) GetPlateZaposlenog(ctx context.Context, zaposleniID int) ([]entities.Plata, error) {
	query := `SELECT ` + plataSelectColumns + `
	FROM plate p
	JOIN zaposleni z ON z.id = p.zaposleni_id
	WHERE p.zaposleni_id = $1
	ORDER BY p.period DESC, p.id DESC`

	rows, err := r.storage.Query(ctx, query, zaposleniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plate := make([]entities.Plata, 0)
	for rows.Next() {
		p, err := scanPlata(rows)
		if err != nil {
			return nil, err
		}
		plate = append(plate, *p)
	}
	return plate, rows.Err()
}

func (r *PlataRepository) FindPlata(ctx context.Context, id int) (*entities.Plata, error) {
	query := `SELECT ` + plataSelectColumns + `
	FROM plate p
	JOIN zaposleni z ON z.id = p.zaposleni_id
	WHERE p.id = $1`
	return scanPlata(r.storage.QueryRow(ctx, query, id))
}

func (r *PlataRepository) CreatePlata(ctx context.Context, p entities.Plata) (*entities.Plata, error) {
	var id int
	err := r.storage.QueryRow(ctx,
		`INSERT INTO plate (zaposleni_id, osnovna, bonusi, otkazi, period, napomena)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.ZaposleniID, p.Osnovna, p.Bonusi, p.Otkazi, p.Period, p.Napomena).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upis plate nije uspeo: %w", err)
	}
	return r.FindPlata(ctx, id)
}

func (r *PlataRepository) UpdatePlata(ctx context.Context, id int, payload dto.UpdatePlataDTO) (*entities.Plata, error) {
	builder := sq.Update(plataTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Osnovna != nil {
		builder = builder.Set("osnovna", *payload.Osnovna)
		hasChanges = true
	}
	if payload.Bonusi != nil {
		builder = builder.Set("bonusi", *payload.Bonusi)
		hasChanges = true
	}
	if payload.Otkazi != nil {
		builder = builder.Set("otkazi", *payload.Otkazi)
		hasChanges = true
	}
	if payload.Period != nil {
		builder = builder.Set("period", *payload.Period)
		hasChanges = true
	}
	if payload.Napomena != nil {
		builder = builder.Set("napomena", *payload.Napomena)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindPlata(ctx, id)
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
	return r.FindPlata(ctx, id)
}

func (r *PlataRepository) DeletePlata(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM plate WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
