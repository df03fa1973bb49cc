package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedInventar upisuje demo stavke inventara; neke su odmah dodeljene.
func SeedInventar(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Kreiranje demo inventara...")

	for _, d := range demoInventarLista {
		var postoji bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM inventar_stavke WHERE naziv = $1 AND serijski_broj = $2)`,
			d.Naziv, d.SerijskiBroj).Scan(&postoji); err != nil {
			return err
		}
		if postoji {
			continue
		}

		var zaposleniID *int
		var datumDodele *time.Time
		if d.Dodeljen != "" {
			id, err := getZaposleniID(ctx, db, d.Dodeljen)
			if err != nil {
				return err
			}
			now := time.Now()
			zaposleniID = &id
			datumDodele = &now
		}

		qrKod := fmt.Sprintf("hr-system://inventar/%s", uuid.NewString())
		_, err := db.Exec(ctx,
			`INSERT INTO inventar_stavke
			 (naziv, kategorija, serijski_broj, vrednost, stanje, lokacija, datum_nabavke,
			  zaposleni_id, datum_dodele, qr_kod)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			d.Naziv, d.Kategorija, d.SerijskiBroj, d.Vrednost, d.Stanje, d.Lokacija,
			time.Now().AddDate(-1, 0, 0), zaposleniID, datumDodele, qrKod)
		if err != nil {
			return err
		}
		log.Printf("    -> %s", d.Naziv)
	}

	return nil
}
