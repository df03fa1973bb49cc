package main

import (
	"flag"
	"log"

	"hr-system/pkg/config"
	"hr-system/pkg/database/postgresql"
	applogger "hr-system/pkg/logger"
	"hr-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Punjenje baze demo podacima")
	log.Println("======================================================")

	runZaposleni := flag.Bool("zaposleni", false, "Kreiraj demo zaposlene i korisničke naloge")
	runPlate := flag.Bool("plate", false, "Kreiraj demo plate (zahteva -zaposleni ili postojeće zaposlene)")
	runInventar := flag.Bool("inventar", false, "Kreiraj demo inventar")
	runVesti := flag.Bool("vesti", false, "Kreiraj demo vesti")
	runAll := flag.Bool("all", false, "Pokreni sve sidere")
	flag.Parse()

	if !*runZaposleni && !*runPlate && !*runInventar && !*runVesti && !*runAll {
		log.Println("❌ Nije izabran nijedan sider.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Primer: go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("📦 DSN:", cfg.Postgres.DSN)
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()
	logger := applogger.NewLogger()

	if *runAll || *runZaposleni {
		if err := seeders.SeedZaposleniIKorisnici(db, logger); err != nil {
			log.Fatalf("❌ Sidovanje zaposlenih nije uspelo: %v", err)
		}
	}
	if *runAll || *runPlate {
		if err := seeders.SeedPlate(db); err != nil {
			log.Fatalf("❌ Sidovanje plata nije uspelo: %v", err)
		}
	}
	if *runAll || *runInventar {
		if err := seeders.SeedInventar(db); err != nil {
			log.Fatalf("❌ Sidovanje inventara nije uspelo: %v", err)
		}
	}
	if *runAll || *runVesti {
		if err := seeders.SeedVesti(db); err != nil {
			log.Fatalf("❌ Sidovanje vesti nije uspelo: %v", err)
		}
	}

	log.Println("✅ Sidovanje je završeno.")
}
