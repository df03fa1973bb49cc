package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/utils"
)

// SeedZaposleniIKorisnici pravi demo zaposlene sa korisničkim nalozima.
// Zaposleni i njegov nalog se upisuju u istoj transakciji.
func SeedZaposleniIKorisnici(db *pgxpool.Pool, logger *zap.Logger) error {
	ctx := context.Background()
	log.Println("  - Kreiranje demo zaposlenih i korisničkih naloga...")

	zaposleniRepo := repositories.NewZaposleniRepository(db, logger)
	korisnikRepo := repositories.NewKorisnikRepository(db, logger)

	for _, d := range demoZaposleniLista {
		exists, err := zaposleniPostoji(ctx, db, d.Email)
		if err != nil {
			return err
		}
		if exists {
			log.Printf("    -> %s %s već postoji, preskačem", d.Ime, d.Prezime)
			continue
		}

		pozicijaID, err := getPozicijaID(ctx, db, d.Pozicija)
		if err != nil {
			return err
		}
		odsekID, err := getOdsekID(ctx, db, d.Odsek)
		if err != nil {
			return err
		}

		var nadredjeniID *int
		if d.Nadredjeni != "" {
			id, err := getZaposleniID(ctx, db, d.Nadredjeni)
			if err != nil {
				return err
			}
			nadredjeniID = &id
		}

		hash, err := utils.HashPassword("Lozinka123!")
		if err != nil {
			return err
		}

		err = repositories.WithTx(ctx, db, func(tx pgx.Tx) error {
			zaposleniID, err := zaposleniRepo.CreateZaposleniTx(ctx, tx, entities.Zaposleni{
				Ime:             d.Ime,
				Prezime:         d.Prezime,
				Email:           d.Email,
				Telefon:         d.Telefon,
				Pol:             d.Pol,
				DatumZaposlenja: time.Now().AddDate(-2, 0, 0),
				PozicijaID:      &pozicijaID,
				NadredjeniID:    nadredjeniID,
				OdsekID:         &odsekID,
			})
			if err != nil {
				return err
			}

			_, err = korisnikRepo.CreateKorisnikTx(ctx, tx, entities.Korisnik{
				KorisnickoIme: d.KorisnickoIme,
				Email:         d.Email,
				Lozinka:       hash,
				Uloga:         d.Uloga,
				ZaposleniID:   &zaposleniID,
			})
			return err
		})
		if err != nil {
			return err
		}
		log.Printf("    -> %s %s (%s)", d.Ime, d.Prezime, d.Uloga)
	}

	return nil
}
