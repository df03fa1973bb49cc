package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/dto"
)

type ReportRepositoryInterface interface {
	GetPlataReport(ctx context.Context, filter dto.PlataReportFilterDTO) ([]dto.PlataReportRowDTO, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

func (r *ReportRepository) GetPlataReport(ctx context.Context, filter dto.PlataReportFilterDTO) ([]dto.PlataReportRowDTO, error) {
	builder := sq.Select(
		"z.id", "z.ime", "z.prezime", "o.naziv",
		"p.period", "p.osnovna", "p.bonusi", "p.otkazi",
		"p.osnovna + p.bonusi - p.otkazi AS neto").
		From("plate p").
		Join("zaposleni z ON z.id = p.zaposleni_id").
		LeftJoin("odseci o ON o.id = z.odsek_id").
		OrderBy("p.period ASC", "z.prezime ASC", "z.ime ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.PeriodOd != "" {
		builder = builder.Where(sq.GtOrEq{"p.period": filter.PeriodOd})
	}
	if filter.PeriodDo != "" {
		builder = builder.Where(sq.LtOrEq{"p.period": filter.PeriodDo})
	}
	if filter.OdsekID != nil {
		builder = builder.Where(sq.Eq{"z.odsek_id": *filter.OdsekID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]dto.PlataReportRowDTO, 0)
	for rows.Next() {
		var row dto.PlataReportRowDTO
		if err := rows.Scan(&row.ZaposleniID, &row.Ime, &row.Prezime, &row.OdsekNaziv,
			&row.Period, &row.Osnovna, &row.Bonusi, &row.Otkazi, &row.Neto); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
