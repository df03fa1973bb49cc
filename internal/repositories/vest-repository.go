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

const vestTable = "vesti"

const vestSelectColumns = `id, naslov, sadrzaj, autor, datum_objave, is_active, created_at, updated_at`

type VestRepositoryInterface interface {
	GetVesti(ctx context.Context, params types.ListParams) ([]entities.Vest, uint64, error)
	FindVest(ctx context.Context, id int) (*entities.Vest, error)
	CreateVest(ctx context.Context, v entities.Vest) (*entities.Vest, error)
	UpdateVest(ctx context.Context, id int, payload dto.UpdateVestDTO) (*entities.Vest, error)
	DeleteVest(ctx context.Context, id int) error
}

type VestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVestRepository(storage *pgxpool.Pool, logger *zap.Logger) VestRepositoryInterface {
	return &VestRepository{storage: storage, logger: logger}
}

func scanVest(row pgx.Row) (*entities.Vest, error) {
	var v entities.Vest
	err := row.Scan(&v.ID, &v.Naslov, &v.Sadrzaj, &v.Autor, &v.DatumObjave, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje vesti nije uspelo: %w", err)
	}
	return &v, nil
}

func (r *VestRepository) GetVesti(ctx context.Context, params types.ListParams) ([]entities.Vest, uint64, error) {
	where := sq.And{sq.Eq{"is_active": true}}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"naslov": pattern},
			sq.ILike{"sadrzaj": pattern},
		})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(vestTable).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Vest{}, 0, nil
	}

	query, args, err := sq.Select(vestSelectColumns).
		From(vestTable).
		Where(where).
		OrderBy("datum_objave DESC").
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vesti := make([]entities.Vest, 0, params.PageSize)
	for rows.Next() {
		v, err := scanVest(rows)
		if err != nil {
			return nil, 0, err
		}
		vesti = append(vesti, *v)
	}
	return vesti, total, rows.Err()
}

func (r *VestRepository) FindVest(ctx context.Context, id int) (*entities.Vest, error) {
	query := `SELECT ` + vestSelectColumns + ` FROM vesti WHERE id = $1`
	return scanVest(r.storage.QueryRow(ctx, query, id))
}

func (r *VestRepository) CreateVest(ctx context.Context, v entities.Vest) (*entities.Vest, error) {
	query := `INSERT INTO vesti (naslov, sadrzaj, autor, datum_objave, is_active)
	VALUES ($1, $2, $3, NOW(), TRUE)
	RETURNING ` + vestSelectColumns
	return scanVest(r.storage.QueryRow(ctx, query, v.Naslov, v.Sadrzaj, v.Autor))
}

func (r *VestRepository) UpdateVest(ctx context.Context, id int, payload dto.UpdateVestDTO) (*entities.Vest, error) {
	builder := sq.Update(vestTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Naslov != nil {
		builder = builder.Set("naslov", *payload.Naslov)
		hasChanges = true
	}
	if payload.Sadrzaj != nil {
		builder = builder.Set("sadrzaj", *payload.Sadrzaj)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindVest(ctx, id)
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
	return r.FindVest(ctx, id)
}

func (r *VestRepository) DeleteVest(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE vesti SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
