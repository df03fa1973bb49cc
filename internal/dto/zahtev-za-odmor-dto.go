package dto

type CreateZahtevZaOdmorDTO struct {
	ZaposleniID int    `json:"zaposleniId" validate:"required,gt=0"`
	DatumOd     string `json:"datumOd" validate:"required,datetime=2006-01-02"`
	DatumDo     string `json:"datumDo" validate:"required,datetime=2006-01-02"`
	Razlog      string `json:"razlog" validate:"required,max=500"`
	TipOdmora   string `json:"tipOdmora" validate:"required,oneof=Godisnji Bolovanje Porodicni Studijski Neplaceni"`
}

type OdgovorNaZahtevDTO struct {
	Napomena string `json:"napomena" validate:"omitempty,max=500"`
}

type ZahtevZaOdmorResponseDTO struct {
	ID                   int     `json:"id"`
	ZaposleniID          int     `json:"zaposleniId"`
	ZaposleniImePrezime  *string `json:"zaposleniImePrezime,omitempty"`
	DatumOd              string  `json:"datumOd"`
	DatumDo              string  `json:"datumDo"`
	BrojDana             int     `json:"brojDana"`
	Razlog               string  `json:"razlog"`
	TipOdmora            string  `json:"tipOdmora"`
	Status               string  `json:"status"`
	DatumZahteva         string  `json:"datumZahteva"`
	DatumOdgovora        *string `json:"datumOdgovora,omitempty"`
	OdobrioKorisnikID    *int    `json:"odobrioKorisnikId,omitempty"`
	OdobrioKorisnickoIme *string `json:"odobrioKorisnickoIme,omitempty"`
	Napomena             *string `json:"napomena,omitempty"`
}
