package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/dto"
)

type DashboardRepositoryInterface interface {
	GetStatistics(ctx context.Context) (*dto.DashboardStatisticsDTO, error)
	GetRecentActivity(ctx context.Context, limit int) ([]dto.ActivityItemDTO, error)
	GetZaposleniPoOdseku(ctx context.Context) ([]dto.ChartPointDTO, error)
	GetMesecniTrend(ctx context.Context, meseci int) ([]dto.MonthlyTrendDTO, error)
	GetRaspodelaPlata(ctx context.Context) ([]dto.ChartPointDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

// poslednjePlateCTE bira po jednu platu po zaposlenom: onu sa najskorijim
// created_at, ne sa najvećom oznakom perioda.
const poslednjePlateCTE = `WITH poslednje_plate AS (
	SELECT DISTINCT ON (p.zaposleni_id)
		p.zaposleni_id, p.osnovna + p.bonusi - p.otkazi AS neto
	FROM plate p
	JOIN zaposleni z ON z.id = p.zaposleni_id AND z.is_active = TRUE
	ORDER BY p.zaposleni_id, p.created_at DESC
)`

func (r *DashboardRepository) GetStatistics(ctx context.Context) (*dto.DashboardStatisticsDTO, error) {
	var stats dto.DashboardStatisticsDTO

	err := r.storage.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM zaposleni WHERE is_active = TRUE),
		(SELECT COUNT(*) FROM odseci WHERE is_active = TRUE),
		(SELECT COUNT(*) FROM zahtevi_za_odmor WHERE status = 'NaCekanju'),
		(SELECT COUNT(*) FROM zahtevi_za_odmor WHERE status = 'Odobren'),
		(SELECT COUNT(*) FROM zahtevi_za_odmor WHERE status = 'Odbacen'),
		(SELECT COUNT(*) FROM zaposleni WHERE is_active = TRUE AND datum_zaposlenja >= NOW() - INTERVAL '30 days')`).
		Scan(&stats.BrojAktivnihZaposlenih, &stats.BrojAktivnihOdseka,
			&stats.ZahteviNaCekanju, &stats.OdobreniZahtevi, &stats.OdbaceniZahtevi,
			&stats.NoviZaposleni30Dana)
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, poslednjePlateCTE+`
	SELECT COALESCE(ROUND(AVG(neto)::numeric, 2), 0), COALESCE(ROUND(SUM(neto)::numeric, 2), 0)
	FROM poslednje_plate`).
		Scan(&stats.ProsecnaPlata, &stats.UkupanFondPlata)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *DashboardRepository) GetRecentActivity(ctx context.Context, limit int) ([]dto.ActivityItemDTO, error) {
	query := `SELECT tip, tekst, TO_CHAR(datum, 'YYYY-MM-DD HH24:MI') FROM (
		(SELECT 'plata' AS tip,
			'Uneta plata za ' || z.ime || ' ' || z.prezime || ' (' || p.period || ')' AS tekst,
			p.created_at AS datum
		FROM plate p JOIN zaposleni z ON z.id = p.zaposleni_id
		ORDER BY p.created_at DESC LIMIT 5)
		UNION ALL
		(SELECT 'zahtev' AS tip,
			z.ime || ' ' || z.prezime || ' - zahtev za odmor (' || zo.status || ')' AS tekst,
			zo.datum_zahteva AS datum
		FROM zahtevi_za_odmor zo JOIN zaposleni z ON z.id = zo.zaposleni_id
		ORDER BY zo.datum_zahteva DESC LIMIT 5)
		UNION ALL
		(SELECT 'zaposleni' AS tip,
			'Novi zaposleni: ' || ime || ' ' || prezime AS tekst,
			created_at AS datum
		FROM zaposleni WHERE is_active = TRUE
		ORDER BY created_at DESC LIMIT 5)
	) aktivnosti
	ORDER BY datum DESC
	LIMIT $1`

	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.ActivityItemDTO, 0, limit)
	for rows.Next() {
		var item dto.ActivityItemDTO
		if err := rows.Scan(&item.Tip, &item.Tekst, &item.Datum); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *DashboardRepository) GetZaposleniPoOdseku(ctx context.Context) ([]dto.ChartPointDTO, error) {
	query := `SELECT o.naziv, COUNT(z.id) FILTER (WHERE z.is_active)
	FROM odseci o
	LEFT JOIN zaposleni z ON z.odsek_id = o.id
	WHERE o.is_active = TRUE
	GROUP BY o.naziv
	ORDER BY o.naziv ASC`

	return r.scanChartPoints(ctx, query)
}

func (r *DashboardRepository) GetMesecniTrend(ctx context.Context, meseci int) ([]dto.MonthlyTrendDTO, error) {
	query := `WITH meseci AS (
		SELECT TO_CHAR(d, 'YYYY-MM') AS mesec
		FROM generate_series(
			date_trunc('month', NOW()) - ($1 - 1) * INTERVAL '1 month',
			date_trunc('month', NOW()),
			INTERVAL '1 month') d
	)
	SELECT m.mesec,
		COALESCE((SELECT SUM(p.osnovna + p.bonusi - p.otkazi) FROM plate p WHERE p.period = m.mesec), 0),
		(SELECT COUNT(*) FROM zahtevi_za_odmor zo WHERE TO_CHAR(zo.datum_zahteva, 'YYYY-MM') = m.mesec),
		(SELECT COUNT(*) FROM zaposleni z WHERE TO_CHAR(z.datum_zaposlenja, 'YYYY-MM') = m.mesec)
	FROM meseci m
	ORDER BY m.mesec ASC`

	rows, err := r.storage.Query(ctx, query, meseci)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trend := make([]dto.MonthlyTrendDTO, 0, meseci)
	for rows.Next() {
		var t dto.MonthlyTrendDTO
		if err := rows.Scan(&t.Mesec, &t.FondPlata, &t.BrojZahteva, &t.NovaZaposlenja); err != nil {
			return nil, err
		}
		trend = append(trend, t)
	}
	return trend, rows.Err()
}

func (r *DashboardRepository) GetRaspodelaPlata(ctx context.Context) ([]dto.ChartPointDTO, error) {
	query := poslednjePlateCTE + `
	SELECT CASE
		WHEN neto < 50000 THEN 'do 50.000'
		WHEN neto < 100000 THEN '50.000 - 100.000'
		WHEN neto < 150000 THEN '100.000 - 150.000'
		WHEN neto < 200000 THEN '150.000 - 200.000'
		ELSE 'preko 200.000'
	END AS opseg, COUNT(*)
	FROM poslednje_plate
	GROUP BY opseg
	ORDER BY MIN(neto) ASC`

	return r.scanChartPoints(ctx, query)
}

func (r *DashboardRepository) scanChartPoints(ctx context.Context, query string) ([]dto.ChartPointDTO, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]dto.ChartPointDTO, 0)
	for rows.Next() {
		var p dto.ChartPointDTO
		if err := rows.Scan(&p.Label, &p.Value); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
