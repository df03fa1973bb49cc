package entities

import (
	"time"

	"hr-system/pkg/types"
)

type Korisnik struct {
	ID           int    `json:"id" db:"id"`
	KorisnickoIme string `json:"korisnicko_ime" db:"korisnicko_ime"`
	Email        string `json:"email" db:"email"`

	Lozinka string `json:"-" db:"lozinka"`

	Uloga       string `json:"uloga" db:"uloga"`
	ZaposleniID *int   `json:"zaposleni_id" db:"zaposleni_id"`
	IsActive    bool   `json:"is_active" db:"is_active"`

	PoslednjePrijavljivanje *time.Time `json:"poslednje_prijavljivanje" db:"poslednje_prijavljivanje"`

	types.BaseEntity
}
