package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	"hr-system/pkg/constants"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

const zahtevTable = "zahtevi_za_odmor"

var zahtevAllowedSortFields = map[string]string{
	"id":            "zo.id",
	"datum_od":      "zo.datum_od",
	"datum_zahteva": "zo.datum_zahteva",
	"status":        "zo.status",
}

const zahtevSelectColumns = `zo.id, zo.zaposleni_id, zo.datum_od, zo.datum_do, zo.razlog,
	zo.tip_odmora, zo.status, zo.datum_zahteva, zo.datum_odgovora, zo.odobrio_korisnik_id,
	zo.napomena, zo.created_at, zo.updated_at,
	z.ime || ' ' || z.prezime AS zaposleni_ime_prezime,
	k.korisnicko_ime AS odobrio_korisnicko_ime`

const zahtevJoins = ` FROM zahtevi_za_odmor zo
	JOIN zaposleni z ON z.id = zo.zaposleni_id
	LEFT JOIN korisnici k ON k.id = zo.odobrio_korisnik_id`

type ZahtevZaOdmorRepositoryInterface interface {
	GetZahtevi(ctx context.Context, params types.ListParams, zaposleniID *int, status string) ([]entities.ZahtevZaOdmor, uint64, error)
	FindZahtev(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error)
	GetOdobreneZahteve(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error)
	SumOdobrenihDanaUGodini(ctx context.Context, zaposleniID int, godina int) (int, error)
	CreateZahtev(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error)
	UpdateStatus(ctx context.Context, id int, status string, korisnikID int, napomena *string) error
	DeleteZahtev(ctx context.Context, id int) error
}

type ZahtevZaOdmorRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewZahtevZaOdmorRepository(storage *pgxpool.Pool, logger *zap.Logger) ZahtevZaOdmorRepositoryInterface {
	return &ZahtevZaOdmorRepository{storage: storage, logger: logger}
}

func scanZahtev(row pgx.Row) (*entities.ZahtevZaOdmor, error) {
	var z entities.ZahtevZaOdmor
	err := row.Scan(&z.ID, &z.ZaposleniID, &z.DatumOd, &z.DatumDo, &z.Razlog,
		&z.TipOdmora, &z.Status, &z.DatumZahteva, &z.DatumOdgovora, &z.OdobrioKorisnikID,
		&z.Napomena, &z.CreatedAt, &z.UpdatedAt,
		&z.ZaposleniImePrezime, &z.OdobrioKorisnickoIme)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje zahteva za odmor nije uspelo: %w", err)
	}
	return &z, nil
}

func (r *ZahtevZaOdmorRepository) GetZahtevi(ctx context.Context, params types.ListParams, zaposleniID *int, status string) ([]entities.ZahtevZaOdmor, uint64, error) {
	where := sq.And{}
	if zaposleniID != nil {
		where = append(where, sq.Eq{"zo.zaposleni_id": *zaposleniID})
	}
	if status != "" {
		where = append(where, sq.Eq{"zo.status": status})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"z.ime": pattern},
			sq.ILike{"z.prezime": pattern},
			sq.ILike{"zo.razlog": pattern},
		})
	}

	countBuilder := sq.Select("COUNT(*)").
		From(zahtevTable + " zo").
		Join("zaposleni z ON z.id = zo.zaposleni_id").
		PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
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
		return []entities.ZahtevZaOdmor{}, 0, nil
	}

	orderBy := "zo.datum_zahteva DESC"
	if col, ok := zahtevAllowedSortFields[params.SortBy]; ok {
		direction := "DESC"
		if params.Ascending {
			direction = "ASC"
		}
		orderBy = col + " " + direction
	}

	builder := sq.Select(zahtevSelectColumns).
		From(zahtevTable + " zo").
		Join("zaposleni z ON z.id = zo.zaposleni_id").
		LeftJoin("korisnici k ON k.id = zo.odobrio_korisnik_id").
		OrderBy(orderBy).
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset())).
		PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		builder = builder.Where(where)
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

	zahtevi := make([]entities.ZahtevZaOdmor, 0, params.PageSize)
	for rows.Next() {
		z, err := scanZahtev(rows)
		if err != nil {
			return nil, 0, err
		}
		zahtevi = append(zahtevi, *z)
	}
	return zahtevi, total, rows.Err()
}

func (r *ZahtevZaOdmorRepository) FindZahtev(ctx context.Context, id int) (*entities.ZahtevZaOdmor, error) {
	query := `SELECT ` + zahtevSelectColumns + zahtevJoins + ` WHERE zo.id = $1`
	return scanZahtev(r.storage.QueryRow(ctx, query, id))
}

// GetOdobreneZahteve vraća sve odobrene zahteve zaposlenog; provera
// preklapanja datuma radi se u servisu nad ovim skupom.
func (r *ZahtevZaOdmorRepository) GetOdobreneZahteve(ctx context.Context, zaposleniID int) ([]entities.ZahtevZaOdmor, error) {
	query := `SELECT ` + zahtevSelectColumns + zahtevJoins + `
	WHERE zo.zaposleni_id = $1 AND zo.status = $2
	ORDER BY zo.datum_od ASC`

	rows, err := r.storage.Query(ctx, query, zaposleniID, constants.StatusOdobren)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zahtevi := make([]entities.ZahtevZaOdmor, 0)
	for rows.Next() {
		z, err := scanZahtev(rows)
		if err != nil {
			return nil, err
		}
		zahtevi = append(zahtevi, *z)
	}
	return zahtevi, rows.Err()
}

// SumOdobrenihDanaUGodini sabira dane (uključivo) odobrenih zahteva koji
// počinju u datoj godini.
func (r *ZahtevZaOdmorRepository) SumOdobrenihDanaUGodini(ctx context.Context, zaposleniID int, godina int) (int, error) {
	query := `SELECT COALESCE(SUM(datum_do::date - datum_od::date + 1), 0)
	FROM zahtevi_za_odmor
	WHERE zaposleni_id = $1 AND status = $2 AND EXTRACT(YEAR FROM datum_od) = $3`

	var dana int
	err := r.storage.QueryRow(ctx, query, zaposleniID, constants.StatusOdobren, godina).Scan(&dana)
	return dana, err
}

func (r *ZahtevZaOdmorRepository) CreateZahtev(ctx context.Context, z entities.ZahtevZaOdmor) (*entities.ZahtevZaOdmor, error) {
	var id int
	err := r.storage.QueryRow(ctx,
		`INSERT INTO zahtevi_za_odmor (zaposleni_id, datum_od, datum_do, razlog, tip_odmora, status, datum_zahteva)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		z.ZaposleniID, z.DatumOd, z.DatumDo, z.Razlog, z.TipOdmora, z.Status, time.Now()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upis zahteva za odmor nije uspeo: %w", err)
	}
	return r.FindZahtev(ctx, id)
}

// UpdateStatus menja status samo dok je zahtev na čekanju; u suprotnom
// vraća ErrNotFound da servis prijavi da je zahtev već obrađen.
func (r *ZahtevZaOdmorRepository) UpdateStatus(ctx context.Context, id int, status string, korisnikID int, napomena *string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE zahtevi_za_odmor
		SET status = $1, datum_odgovora = NOW(), odobrio_korisnik_id = $2, napomena = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5`,
		status, korisnikID, napomena, id, constants.StatusNaCekanju)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ZahtevZaOdmorRepository) DeleteZahtev(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM zahtevi_za_odmor WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
