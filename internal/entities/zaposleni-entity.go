package entities

import (
	"time"

	"hr-system/pkg/types"
)

type Zaposleni struct {
	ID      int    `json:"id" db:"id"`
	Ime     string `json:"ime" db:"ime"`
	Prezime string `json:"prezime" db:"prezime"`
	Email   string `json:"email" db:"email"`
	Telefon string `json:"telefon" db:"telefon"`
	Adresa  string `json:"adresa" db:"adresa"`
	Pol     string `json:"pol" db:"pol"`
	JMBG    string `json:"jmbg" db:"jmbg"`

	DatumZaposlenja time.Time  `json:"datum_zaposlenja" db:"datum_zaposlenja"`
	DatumRodjenja   *time.Time `json:"datum_rodjenja" db:"datum_rodjenja"`

	// Pozicija je stari slobodni tekst; koristi se samo kada PozicijaID nije postavljen.
	Pozicija   string `json:"pozicija" db:"pozicija"`
	PozicijaID *int   `json:"pozicija_id" db:"pozicija_id"`

	NadredjeniID *int `json:"nadredjeni_id" db:"nadredjeni_id"`
	OdsekID      *int `json:"odsek_id" db:"odsek_id"`

	SlikaURL *string `json:"slika_url,omitempty" db:"slika_url"`
	IsActive bool    `json:"is_active" db:"is_active"`

	// Popunjavaju se JOIN-om, nemaju svoju kolonu u tabeli zaposleni.
	PozicijaNaziv *string `json:"pozicija_naziv,omitempty" db:"-"`
	PozicijaNivo  *int    `json:"pozicija_nivo,omitempty" db:"-"`
	PozicijaBoja  *string `json:"pozicija_boja,omitempty" db:"-"`
	OdsekNaziv    *string `json:"odsek_naziv,omitempty" db:"-"`

	types.BaseEntity
}

// PunoIme vraća "Ime Prezime" za prikaz.
func (z *Zaposleni) PunoIme() string {
	return z.Ime + " " + z.Prezime
}

// NazivPozicije vraća naziv iz šifarnika pozicija ako postoji,
// inače stari slobodni tekst.
func (z *Zaposleni) NazivPozicije() string {
	if z.PozicijaNaziv != nil && *z.PozicijaNaziv != "" {
		return *z.PozicijaNaziv
	}
	return z.Pozicija
}
