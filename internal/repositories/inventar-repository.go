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

const inventarTable = "inventar_stavke"

var inventarAllowedSortFields = map[string]string{
	"id":            "i.id",
	"naziv":         "i.naziv",
	"kategorija":    "i.kategorija",
	"vrednost":      "i.vrednost",
	"datum_nabavke": "i.datum_nabavke",
	"created_at":    "i.created_at",
}

const inventarSelectColumns = `i.id, i.naziv, i.opis, i.kategorija, i.serijski_broj, i.vrednost,
	i.stanje, i.lokacija, i.datum_nabavke, i.zaposleni_id, i.datum_dodele, i.datum_vracanja,
	i.qr_kod, i.is_active, i.created_at, i.updated_at,
	z.ime || ' ' || z.prezime AS zaposleni_ime_prezime`

const inventarJoins = ` FROM inventar_stavke i LEFT JOIN zaposleni z ON z.id = i.zaposleni_id`

type InventarRepositoryInterface interface {
	GetStavke(ctx context.Context, params types.ListParams, filter dto.InventarFilterDTO) ([]entities.InventarStavka, uint64, error)
	FindStavka(ctx context.Context, id int) (*entities.InventarStavka, error)
	GetStavkeZaposlenog(ctx context.Context, zaposleniID int) ([]entities.InventarStavka, error)
	GetKategorije(ctx context.Context) ([]string, error)
	GetLokacije(ctx context.Context) ([]string, error)
	GetStatistike(ctx context.Context) (*dto.InventarStatistikeDTO, error)
	CreateStavka(ctx context.Context, s entities.InventarStavka) (*entities.InventarStavka, error)
	UpdateStavka(ctx context.Context, id int, payload dto.UpdateInventarDTO) (*entities.InventarStavka, error)
	Dodeli(ctx context.Context, id int, zaposleniID int) error
	Vrati(ctx context.Context, id int, novoStanje *string, napomena *string) error
	DeleteStavka(ctx context.Context, id int) error
}

type InventarRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInventarRepository(storage *pgxpool.Pool, logger *zap.Logger) InventarRepositoryInterface {
	return &InventarRepository{storage: storage, logger: logger}
}

func scanInventarStavka(row pgx.Row) (*entities.InventarStavka, error) {
	var s entities.InventarStavka
	err := row.Scan(&s.ID, &s.Naziv, &s.Opis, &s.Kategorija, &s.SerijskiBroj, &s.Vrednost,
		&s.Stanje, &s.Lokacija, &s.DatumNabavke, &s.ZaposleniID, &s.DatumDodele, &s.DatumVracanja,
		&s.QRKod, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&s.ZaposleniImePrezime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("skeniranje stavke inventara nije uspelo: %w", err)
	}
	return &s, nil
}

func inventarWhere(params types.ListParams, filter dto.InventarFilterDTO) sq.And {
	where := sq.And{sq.Eq{"i.is_active": true}}

	search := filter.Pretraga
	if search == "" {
		search = params.Search
	}
	if search != "" {
		pattern := "%" + search + "%"
		where = append(where, sq.Or{
			sq.ILike{"i.naziv": pattern},
			sq.ILike{"i.opis": pattern},
			sq.ILike{"i.serijski_broj": pattern},
		})
	}
	if filter.Kategorija != "" {
		where = append(where, sq.Eq{"i.kategorija": filter.Kategorija})
	}
	if filter.Stanje != "" {
		where = append(where, sq.Eq{"i.stanje": filter.Stanje})
	}
	if filter.Lokacija != "" {
		where = append(where, sq.Eq{"i.lokacija": filter.Lokacija})
	}
	if filter.ZaposleniID != nil {
		where = append(where, sq.Eq{"i.zaposleni_id": *filter.ZaposleniID})
	}
	if filter.SamoDodeljene {
		where = append(where, sq.Expr("i.zaposleni_id IS NOT NULL AND i.datum_vracanja IS NULL"))
	}
	if filter.SamoDostupne {
		where = append(where, sq.Expr("(i.zaposleni_id IS NULL OR i.datum_vracanja IS NOT NULL)"))
	}
	if filter.VrednostOd != nil {
		where = append(where, sq.GtOrEq{"i.vrednost": *filter.VrednostOd})
	}
	if filter.VrednostDo != nil {
		where = append(where, sq.LtOrEq{"i.vrednost": *filter.VrednostDo})
	}
	if filter.NabavkaOd != "" {
		where = append(where, sq.GtOrEq{"i.datum_nabavke": filter.NabavkaOd})
	}
	if filter.NabavkaDo != "" {
		where = append(where, sq.LtOrEq{"i.datum_nabavke": filter.NabavkaDo})
	}
	return where
}

func (r *InventarRepository) GetStavke(ctx context.Context, params types.ListParams, filter dto.InventarFilterDTO) ([]entities.InventarStavka, uint64, error) {
	where := inventarWhere(params, filter)

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(inventarTable + " i").
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
		return []entities.InventarStavka{}, 0, nil
	}

	orderBy := "i.id DESC"
	if col, ok := inventarAllowedSortFields[params.SortBy]; ok {
		direction := "DESC"
		if params.Ascending {
			direction = "ASC"
		}
		orderBy = col + " " + direction
	}

	query, args, err := sq.Select(inventarSelectColumns).
		From(inventarTable + " i").
		LeftJoin("zaposleni z ON z.id = i.zaposleni_id").
		Where(where).
		OrderBy(orderBy).
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

	stavke := make([]entities.InventarStavka, 0, params.PageSize)
	for rows.Next() {
		s, err := scanInventarStavka(rows)
		if err != nil {
			return nil, 0, err
		}
		stavke = append(stavke, *s)
	}
	return stavke, total, rows.Err()
}

func (r *InventarRepository) FindStavka(ctx context.Context, id int) (*entities.InventarStavka, error) {
	query := `SELECT ` + inventarSelectColumns + inventarJoins + ` WHERE i.id = $1`
	return scanInventarStavka(r.storage.QueryRow(ctx, query, id))
}

func (r *InventarRepository) GetStavkeZaposlenog(ctx context.Context, zaposleniID int) ([]entities.InventarStavka, error) {
	query := `SELECT ` + inventarSelectColumns + inventarJoins + `
	WHERE i.zaposleni_id = $1 AND i.datum_vracanja IS NULL AND i.is_active = TRUE
	ORDER BY i.datum_dodele DESC`

	rows, err := r.storage.Query(ctx, query, zaposleniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stavke := make([]entities.InventarStavka, 0)
	for rows.Next() {
		s, err := scanInventarStavka(rows)
		if err != nil {
			return nil, err
		}
		stavke = append(stavke, *s)
	}
	return stavke, rows.Err()
}

func (r *InventarRepository) GetKategorije(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "kategorija")
}

func (r *InventarRepository) GetLokacije(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "lokacija")
}

func (r *InventarRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM inventar_stavke WHERE is_active = TRUE AND %s <> '' ORDER BY %s ASC`,
		column, column, column)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *InventarRepository) GetStatistike(ctx context.Context) (*dto.InventarStatistikeDTO, error) {
	stats := &dto.InventarStatistikeDTO{
		PoKategorijama: make(map[string]int64),
		PoStanjima:     make(map[string]int64),
	}

	err := r.storage.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(vrednost), 0),
		COUNT(*) FILTER (WHERE zaposleni_id IS NOT NULL AND datum_vracanja IS NULL)
		FROM inventar_stavke WHERE is_active = TRUE`).
		Scan(&stats.UkupnoStavki, &stats.UkupnaVrednost, &stats.BrojDodeljenih)
	if err != nil {
		return nil, err
	}
	stats.BrojDostupnih = stats.UkupnoStavki - stats.BrojDodeljenih

	rows, err := r.storage.Query(ctx,
		`SELECT kategorija, COUNT(*) FROM inventar_stavke WHERE is_active = TRUE GROUP BY kategorija`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var kategorija string
		var count int64
		if err := rows.Scan(&kategorija, &count); err != nil {
			return nil, err
		}
		stats.PoKategorijama[kategorija] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stanjaRows, err := r.storage.Query(ctx,
		`SELECT stanje, COUNT(*) FROM inventar_stavke WHERE is_active = TRUE GROUP BY stanje`)
	if err != nil {
		return nil, err
	}
	defer stanjaRows.Close()
	for stanjaRows.Next() {
		var stanje string
		var count int64
		if err := stanjaRows.Scan(&stanje, &count); err != nil {
			return nil, err
		}
		stats.PoStanjima[stanje] = count
	}
	return stats, stanjaRows.Err()
}

func (r *InventarRepository) CreateStavka(ctx context.Context, s entities.InventarStavka) (*entities.InventarStavka, error) {
	var id int
	err := r.storage.QueryRow(ctx,
		`INSERT INTO inventar_stavke (naziv, opis, kategorija, serijski_broj, vrednost, stanje, lokacija, datum_nabavke, qr_kod, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE) RETURNING id`,
		s.Naziv, s.Opis, s.Kategorija, s.SerijskiBroj, s.Vrednost, s.Stanje, s.Lokacija, s.DatumNabavke, s.QRKod).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upis stavke inventara nije uspeo: %w", err)
	}
	return r.FindStavka(ctx, id)
}

func (r *InventarRepository) UpdateStavka(ctx context.Context, id int, payload dto.UpdateInventarDTO) (*entities.InventarStavka, error) {
	builder := sq.Update(inventarTable).
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
	if payload.Kategorija != nil {
		builder = builder.Set("kategorija", *payload.Kategorija)
		hasChanges = true
	}
	if payload.SerijskiBroj != nil {
		builder = builder.Set("serijski_broj", *payload.SerijskiBroj)
		hasChanges = true
	}
	if payload.Vrednost != nil {
		builder = builder.Set("vrednost", *payload.Vrednost)
		hasChanges = true
	}
	if payload.Stanje != nil {
		builder = builder.Set("stanje", *payload.Stanje)
		hasChanges = true
	}
	if payload.Lokacija != nil {
		builder = builder.Set("lokacija", *payload.Lokacija)
		hasChanges = true
	}
	if payload.DatumNabavke != nil {
		builder = builder.Set("datum_nabavke", *payload.DatumNabavke)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindStavka(ctx, id)
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
	return r.FindStavka(ctx, id)
}

func (r *InventarRepository) Dodeli(ctx context.Context, id int, zaposleniID int) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE inventar_stavke
		SET zaposleni_id = $1, datum_dodele = NOW(), datum_vracanja = NULL, updated_at = NOW()
		WHERE id = $2 AND is_active = TRUE`,
		zaposleniID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventarRepository) Vrati(ctx context.Context, id int, novoStanje *string, napomena *string) error {
	builder := sq.Update(inventarTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("datum_vracanja", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()"))

	if novoStanje != nil {
		builder = builder.Set("stanje", *novoStanje)
	}
	if napomena != nil && *napomena != "" {
		builder = builder.Set("opis", sq.Expr("opis || E'\n' || ?", "Vraćeno: "+*napomena))
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

func (r *InventarRepository) DeleteStavka(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE inventar_stavke SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
