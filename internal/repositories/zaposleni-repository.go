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

const zaposleniTable = "zaposleni"

// Kolone po kojima je dozvoljeno sortiranje liste zaposlenih.
var zaposleniAllowedSortFields = map[string]string{
	"id":               "z.id",
	"ime":              "z.ime",
	"prezime":          "z.prezime",
	"email":            "z.email",
	"datum_zaposlenja": "z.datum_zaposlenja",
	"created_at":       "z.created_at",
}

const zaposleniSelectColumns = `z.id, z.ime, z.prezime, z.email, z.telefon, z.adresa, z.pol, z.jmbg,
	z.datum_zaposlenja, z.datum_rodjenja, z.pozicija, z.pozicija_id, z.nadredjeni_id, z.odsek_id,
	z.slika_url, z.is_active, z.created_at, z.updated_at,
	p.naziv AS pozicija_naziv, p.nivo AS pozicija_nivo, p.boja AS pozicija_boja,
	o.naziv AS odsek_naziv`

const zaposleniJoins = ` FROM zaposleni z
	LEFT JOIN pozicije p ON p.id = z.pozicija_id
	LEFT JOIN odseci o ON o.id = z.odsek_id`

type ZaposleniRepositoryInterface interface {
	GetZaposleni(ctx context.Context, params types.ListParams) ([]entities.Zaposleni, uint64, error)
	GetSviAktivni(ctx context.Context) ([]entities.Zaposleni, error)
	FindZaposleni(ctx context.Context, id int) (*entities.Zaposleni, error)
	FindZaposleniByEmail(ctx context.Context, email string) (*entities.Zaposleni, error)
	GetTim(ctx context.Context, nadredjeniID int) ([]entities.Zaposleni, error)
	GetZaposleniOdseka(ctx context.Context, odsekID int) ([]entities.Zaposleni, error)
	CreateZaposleni(ctx context.Context, z entities.Zaposleni) (*entities.Zaposleni, error)
	CreateZaposleniTx(ctx context.Context, tx pgx.Tx, z entities.Zaposleni) (int, error)
	UpdateZaposleni(ctx context.Context, id int, payload dto.UpdateZaposleniDTO) (*entities.Zaposleni, error)
	UpdateHijerarhija(ctx context.Context, id int, nadredjeniID *int, pozicijaID *int, setNadredjeni, setPozicija bool) error
	DeleteZaposleni(ctx context.Context, id int) error
}

type ZaposleniRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewZaposleniRepository(storage *pgxpool.Pool, logger *zap.Logger) ZaposleniRepositoryInterface {
	return &ZaposleniRepository{storage: storage, logger: logger}
}

func scanZaposleni(row pgx.Row) (*entities.Zaposleni, error) {
	var z entities.Zaposleni
	err := row.Scan(
		&z.ID, &z.Ime, &z.Prezime, &z.Email, &z.Telefon, &z.Adresa, &z.Pol, &z.JMBG,
		&z.DatumZaposlenja, &z.DatumRodjenja, &z.Pozicija, &z.PozicijaID, &z.NadredjeniID, &z.OdsekID,
		&z.SlikaURL, &z.IsActive, &z.CreatedAt, &z.UpdatedAt,
		&z.PozicijaNaziv, &z.PozicijaNivo, &z.PozicijaBoja,
		&z.OdsekNaziv,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje zaposlenog nije uspelo: %w", err)
	}
	return &z, nil
}

func (r *ZaposleniRepository) searchCondition(search string) sq.Sqlizer {
	pattern := "%" + search + "%"
	return sq.Or{
		sq.ILike{"z.ime": pattern},
		sq.ILike{"z.prezime": pattern},
		sq.ILike{"z.email": pattern},
		sq.ILike{"z.pozicija": pattern},
		sq.ILike{"p.naziv": pattern},
	}
}

func (r *ZaposleniRepository) GetZaposleni(ctx context.Context, params types.ListParams) ([]entities.Zaposleni, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").
		From(zaposleniTable + " z").
		LeftJoin("pozicije p ON p.id = z.pozicija_id").
		Where(sq.Eq{"z.is_active": true}).
		PlaceholderFormat(sq.Dollar)
	if params.Search != "" {
		countBuilder = countBuilder.Where(r.searchCondition(params.Search))
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
		return []entities.Zaposleni{}, 0, nil
	}

	orderBy := "z.prezime ASC, z.ime ASC"
	if col, ok := zaposleniAllowedSortFields[params.SortBy]; ok {
		direction := "DESC"
		if params.Ascending {
			direction = "ASC"
		}
		orderBy = col + " " + direction
	}

	builder := sq.Select(zaposleniSelectColumns).
		From(zaposleniTable + " z").
		LeftJoin("pozicije p ON p.id = z.pozicija_id").
		LeftJoin("odseci o ON o.id = z.odsek_id").
		Where(sq.Eq{"z.is_active": true}).
		OrderBy(orderBy).
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset())).
		PlaceholderFormat(sq.Dollar)
	if params.Search != "" {
		builder = builder.Where(r.searchCondition(params.Search))
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

	zaposleni := make([]entities.Zaposleni, 0, params.PageSize)
	for rows.Next() {
		z, err := scanZaposleni(rows)
		if err != nil {
			return nil, 0, err
		}
		zaposleni = append(zaposleni, *z)
	}
	return zaposleni, total, rows.Err()
}

// GetSviAktivni vraća sve aktivne zaposlene sa podacima o poziciji,
// bez paginacije. Koristi ga gradnja organizacionog stabla.
func (r *ZaposleniRepository) GetSviAktivni(ctx context.Context) ([]entities.Zaposleni, error) {
	query := `SELECT ` + zaposleniSelectColumns + zaposleniJoins + `
	WHERE z.is_active = TRUE
	ORDER BY z.id ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zaposleni := make([]entities.Zaposleni, 0)
	for rows.Next() {
		z, err := scanZaposleni(rows)
		if err != nil {
			return nil, err
		}
		zaposleni = append(zaposleni, *z)
	}
	return zaposleni, rows.Err()
}

// FindZaposleni namerno ne filtrira po is_active: obrisani zapisi ostaju
// dostupni po identifikatoru.
func (r *ZaposleniRepository) FindZaposleni(ctx context.Context, id int) (*entities.Zaposleni, error) {
	query := `SELECT ` + zaposleniSelectColumns + zaposleniJoins + ` WHERE z.id = $1`
	return scanZaposleni(r.storage.QueryRow(ctx, query, id))
}

func (r *ZaposleniRepository) FindZaposleniByEmail(ctx context.Context, email string) (*entities.Zaposleni, error) {
	query := `SELECT ` + zaposleniSelectColumns + zaposleniJoins + ` WHERE z.email = $1 AND z.is_active = TRUE`
	return scanZaposleni(r.storage.QueryRow(ctx, query, email))
}

func (r *ZaposleniRepository) GetTim(ctx context.Context, nadredjeniID int) ([]entities.Zaposleni, error) {
	query := `SELECT ` + zaposleniSelectColumns + zaposleniJoins + `
	WHERE z.nadredjeni_id = $1 AND z.is_active = TRUE
	ORDER BY z.prezime ASC, z.ime ASC`

	rows, err := r.storage.Query(ctx, query, nadredjeniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tim := make([]entities.Zaposleni, 0)
	for rows.Next() {
		z, err := scanZaposleni(rows)
		if err != nil {
			return nil, err
		}
		tim = append(tim, *z)
	}
	return tim, rows.Err()
}

func (r *ZaposleniRepository) GetZaposleniOdseka(ctx context.Context, odsekID int) ([]entities.Zaposleni, error) {
	query := `SELECT ` + zaposleniSelectColumns + zaposleniJoins + `
	WHERE z.odsek_id = $1 AND z.is_active = TRUE
	ORDER BY z.prezime ASC, z.ime ASC`

	rows, err := r.storage.Query(ctx, query, odsekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zaposleni := make([]entities.Zaposleni, 0)
	for rows.Next() {
		z, err := scanZaposleni(rows)
		if err != nil {
			return nil, err
		}
		zaposleni = append(zaposleni, *z)
	}
	return zaposleni, rows.Err()
}

func insertZaposleni(ctx context.Context, q querier, z entities.Zaposleni) (int, error) {
	query, args, err := sq.Insert(zaposleniTable).
		Columns("ime", "prezime", "email", "telefon", "adresa", "pol", "jmbg",
			"datum_zaposlenja", "datum_rodjenja", "pozicija", "pozicija_id",
			"nadredjeni_id", "odsek_id", "slika_url", "is_active").
		Values(z.Ime, z.Prezime, z.Email, z.Telefon, z.Adresa, z.Pol, z.JMBG,
			z.DatumZaposlenja, z.DatumRodjenja, z.Pozicija, z.PozicijaID,
			z.NadredjeniID, z.OdsekID, z.SlikaURL, true).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upis zaposlenog nije uspeo: %w", err)
	}
	return id, nil
}

func (r *ZaposleniRepository) CreateZaposleni(ctx context.Context, z entities.Zaposleni) (*entities.Zaposleni, error) {
	id, err := insertZaposleni(ctx, r.storage, z)
	if err != nil {
		return nil, err
	}
	return r.FindZaposleni(ctx, id)
}

// CreateZaposleniTx upisuje zaposlenog unutar postojeće transakcije i vraća novi id.
func (r *ZaposleniRepository) CreateZaposleniTx(ctx context.Context, tx pgx.Tx, z entities.Zaposleni) (int, error) {
	return insertZaposleni(ctx, tx, z)
}

func (r *ZaposleniRepository) UpdateZaposleni(ctx context.Context, id int, payload dto.UpdateZaposleniDTO) (*entities.Zaposleni, error) {
	builder := sq.Update(zaposleniTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Ime != nil {
		builder = builder.Set("ime", *payload.Ime)
		hasChanges = true
	}
	if payload.Prezime != nil {
		builder = builder.Set("prezime", *payload.Prezime)
		hasChanges = true
	}
	if payload.Email != nil {
		builder = builder.Set("email", *payload.Email)
		hasChanges = true
	}
	if payload.Telefon != nil {
		builder = builder.Set("telefon", *payload.Telefon)
		hasChanges = true
	}
	if payload.Adresa != nil {
		builder = builder.Set("adresa", *payload.Adresa)
		hasChanges = true
	}
	if payload.Pol != nil {
		builder = builder.Set("pol", *payload.Pol)
		hasChanges = true
	}
	if payload.JMBG != nil {
		builder = builder.Set("jmbg", *payload.JMBG)
		hasChanges = true
	}
	if payload.DatumZaposlenja != nil {
		builder = builder.Set("datum_zaposlenja", *payload.DatumZaposlenja)
		hasChanges = true
	}
	if payload.DatumRodjenja != nil {
		builder = builder.Set("datum_rodjenja", *payload.DatumRodjenja)
		hasChanges = true
	}
	if payload.Pozicija != nil {
		builder = builder.Set("pozicija", *payload.Pozicija)
		hasChanges = true
	}
	if payload.PozicijaID != nil {
		builder = builder.Set("pozicija_id", *payload.PozicijaID)
		hasChanges = true
	}
	if payload.NadredjeniID != nil {
		builder = builder.Set("nadredjeni_id", *payload.NadredjeniID)
		hasChanges = true
	}
	if payload.OdsekID != nil {
		builder = builder.Set("odsek_id", *payload.OdsekID)
		hasChanges = true
	}
	if payload.SlikaURL != nil {
		builder = builder.Set("slika_url", *payload.SlikaURL)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindZaposleni(ctx, id)
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
	return r.FindZaposleni(ctx, id)
}

// UpdateHijerarhija postavlja nadređenog i/ili poziciju; set* zastavice
// razlikuju "postavi na NULL" od "ne menjaj".
func (r *ZaposleniRepository) UpdateHijerarhija(ctx context.Context, id int, nadredjeniID *int, pozicijaID *int, setNadredjeni, setPozicija bool) error {
	builder := sq.Update(zaposleniTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	if !setNadredjeni && !setPozicija {
		return nil
	}
	if setNadredjeni {
		builder = builder.Set("nadredjeni_id", nadredjeniID)
	}
	if setPozicija {
		builder = builder.Set("pozicija_id", pozicijaID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ZaposleniRepository) DeleteZaposleni(ctx context.Context, id int) error {
	query := `UPDATE zaposleni SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
