// Package seeders puni bazu demo podacima za lokalni razvoj.
package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func getPozicijaID(ctx context.Context, db *pgxpool.Pool, naziv string) (int, error) {
	var id int
	err := db.QueryRow(ctx,
		`SELECT id FROM pozicije WHERE naziv = $1 AND is_active = TRUE`, naziv).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("pozicija %q nije pronađena (da li su migracije izvršene?): %w", naziv, err)
	}
	return id, nil
}

func getOdsekID(ctx context.Context, db *pgxpool.Pool, naziv string) (int, error) {
	var id int
	err := db.QueryRow(ctx,
		`SELECT id FROM odseci WHERE naziv = $1 AND is_active = TRUE`, naziv).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("odsek %q nije pronađen (da li su migracije izvršene?): %w", naziv, err)
	}
	return id, nil
}

func getZaposleniID(ctx context.Context, db *pgxpool.Pool, email string) (int, error) {
	var id int
	err := db.QueryRow(ctx,
		`SELECT id FROM zaposleni WHERE LOWER(email) = LOWER($1)`, email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("zaposleni %q nije pronađen: %w", email, err)
	}
	return id, nil
}

func zaposleniPostoji(ctx context.Context, db *pgxpool.Pool, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM zaposleni WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}
