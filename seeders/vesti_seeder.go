package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedVesti upisuje nekoliko demo vesti ako ih još nema.
func SeedVesti(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Kreiranje demo vesti...")

	var broj int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM vesti`).Scan(&broj); err != nil {
		return err
	}
	if broj > 0 {
		log.Println("    -> vesti već postoje, preskačem")
		return nil
	}

	vesti := []struct{ naslov, sadrzaj, autor string }{
		{"Dobrodošli u novi HR sistem", "Od danas sve kadrovske procese vodimo kroz novi sistem. Prijavite se svojim nalogom i proverite podatke na profilu.", "Jelena Jovanović"},
		{"Godišnji odmori za tekuću godinu", "Podsećamo da zahteve za godišnji odmor podnosite kroz sistem. Fond je 25 radnih dana.", "Jelena Jovanović"},
		{"Novi laptopovi za razvojni tim", "Stigla je nova tura ThinkPad računara. Zaduženja se vode kroz modul inventara.", "Marko Marković"},
	}
	for _, v := range vesti {
		if _, err := db.Exec(ctx,
			`INSERT INTO vesti (naslov, sadrzaj, autor) VALUES ($1, $2, $3)`,
			v.naslov, v.sadrzaj, v.autor); err != nil {
			return err
		}
		log.Printf("    -> %s", v.naslov)
	}

	return nil
}
