package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"hr-system/migrations"
	"hr-system/pkg/config"
)

func main() {
	command := flag.String("command", "up", "goose komanda: up, down, status, version")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("otvaranje konekcije ka bazi nije uspelo: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("postavljanje dijalekta nije uspelo: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		log.Fatalf("nepoznata komanda: %s", *command)
	}
	if err != nil {
		log.Fatalf("migracija nije uspela: %v", err)
	}

	log.Println("✅ Migracije su izvršene")
}
