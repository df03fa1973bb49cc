package entities

import (
	"time"

	"hr-system/pkg/types"
)

type InventarStavka struct {
	ID           int     `json:"id" db:"id"`
	Naziv        string  `json:"naziv" db:"naziv"`
	Opis         string  `json:"opis" db:"opis"`
	Kategorija   string  `json:"kategorija" db:"kategorija"`
	SerijskiBroj string  `json:"serijski_broj" db:"serijski_broj"`
	Vrednost     float64 `json:"vrednost" db:"vrednost"`
	Stanje       string  `json:"stanje" db:"stanje"`
	Lokacija     string  `json:"lokacija" db:"lokacija"`

	DatumNabavke time.Time `json:"datum_nabavke" db:"datum_nabavke"`

	ZaposleniID   *int       `json:"zaposleni_id,omitempty" db:"zaposleni_id"`
	DatumDodele   *time.Time `json:"datum_dodele,omitempty" db:"datum_dodele"`
	DatumVracanja *time.Time `json:"datum_vracanja,omitempty" db:"datum_vracanja"`

	// QRKod je tekstualni sadržaj koda (link ka stavci); slika se ne renderuje.
	QRKod    string `json:"qr_kod" db:"qr_kod"`
	IsActive bool   `json:"is_active" db:"is_active"`

	ZaposleniImePrezime *string `json:"zaposleni_ime_prezime,omitempty" db:"-"`

	types.BaseEntity
}

// Dodeljena je istinita samo kada stavka ima zaposlenog i nema datum vraćanja.
func (s *InventarStavka) Dodeljena() bool {
	return s.ZaposleniID != nil && s.DatumVracanja == nil
}
