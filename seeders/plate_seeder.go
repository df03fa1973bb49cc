package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedPlate upisuje po tri mesečne plate za svakog demo zaposlenog.
func SeedPlate(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Kreiranje demo plata...")

	for _, d := range demoZaposleniLista {
		zaposleniID, err := getZaposleniID(ctx, db, d.Email)
		if err != nil {
			return err
		}

		var postoji bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM plate WHERE zaposleni_id = $1)`, zaposleniID).Scan(&postoji); err != nil {
			return err
		}
		if postoji {
			continue
		}

		for i := 3; i >= 1; i-- {
			period := time.Now().AddDate(0, -i, 0).Format("2006-01")
			_, err := db.Exec(ctx,
				`INSERT INTO plate (zaposleni_id, osnovna, bonusi, otkazi, period)
				 VALUES ($1, $2, $3, 0, $4)`,
				zaposleniID, d.Osnovna, d.Bonusi, period)
			if err != nil {
				return err
			}
		}
		log.Printf("    -> plate za %s %s", d.Ime, d.Prezime)
	}

	return nil
}
