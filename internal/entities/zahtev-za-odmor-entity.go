package entities

import (
	"time"

	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

type ZahtevZaOdmor struct {
	ID          int       `json:"id" db:"id"`
	ZaposleniID int       `json:"zaposleni_id" db:"zaposleni_id"`
	DatumOd     time.Time `json:"datum_od" db:"datum_od"`
	DatumDo     time.Time `json:"datum_do" db:"datum_do"`
	Razlog      string    `json:"razlog" db:"razlog"`
	TipOdmora   string    `json:"tip_odmora" db:"tip_odmora"`
	Status      string    `json:"status" db:"status"`

	DatumZahteva      time.Time  `json:"datum_zahteva" db:"datum_zahteva"`
	DatumOdgovora     *time.Time `json:"datum_odgovora,omitempty" db:"datum_odgovora"`
	OdobrioKorisnikID *int       `json:"odobrio_korisnik_id,omitempty" db:"odobrio_korisnik_id"`
	Napomena          *string    `json:"napomena,omitempty" db:"napomena"`

	ZaposleniImePrezime *string `json:"zaposleni_ime_prezime,omitempty" db:"-"`
	OdobrioKorisnickoIme *string `json:"odobrio_korisnicko_ime,omitempty" db:"-"`

	types.BaseEntity
}

// BrojDana vraća broj dana odmora, uključujući oba krajnja datuma.
func (z *ZahtevZaOdmor) BrojDana() int {
	return utils.BrojDana(z.DatumOd, z.DatumDo)
}
