package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Greška pri kreiranju pool-a konekcija ka bazi: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Baza ne odgovara na ping: %v", err)
	}

	log.Println("✅ Povezano na PostgreSQL")
	return dbpool
}
