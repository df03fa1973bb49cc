package dto

type CreateZaposleniDTO struct {
	Ime             string  `json:"ime" validate:"required,max=100"`
	Prezime         string  `json:"prezime" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Telefon         string  `json:"telefon" validate:"omitempty,max=30"`
	Adresa          string  `json:"adresa" validate:"omitempty,max=200"`
	Pol             string  `json:"pol" validate:"omitempty,oneof=M Z"`
	JMBG            string  `json:"jmbg" validate:"omitempty,jmbg"`
	DatumZaposlenja string  `json:"datumZaposlenja" validate:"required,datetime=2006-01-02"`
	DatumRodjenja   *string `json:"datumRodjenja" validate:"omitempty,datetime=2006-01-02"`
	Pozicija        string  `json:"pozicija" validate:"omitempty,max=100"`
	PozicijaID      *int    `json:"pozicijaId" validate:"omitempty,gt=0"`
	NadredjeniID    *int    `json:"nadredjeniId" validate:"omitempty,gt=0"`
	OdsekID         *int    `json:"odsekId" validate:"omitempty,gt=0"`
	SlikaURL        *string `json:"slikaUrl" validate:"omitempty,url"`
}

type UpdateZaposleniDTO struct {
	Ime             *string `json:"ime" validate:"omitempty,max=100"`
	Prezime         *string `json:"prezime" validate:"omitempty,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Telefon         *string `json:"telefon" validate:"omitempty,max=30"`
	Adresa          *string `json:"adresa" validate:"omitempty,max=200"`
	Pol             *string `json:"pol" validate:"omitempty,oneof=M Z"`
	JMBG            *string `json:"jmbg" validate:"omitempty,jmbg"`
	DatumZaposlenja *string `json:"datumZaposlenja" validate:"omitempty,datetime=2006-01-02"`
	DatumRodjenja   *string `json:"datumRodjenja" validate:"omitempty,datetime=2006-01-02"`
	Pozicija        *string `json:"pozicija" validate:"omitempty,max=100"`
	PozicijaID      *int    `json:"pozicijaId" validate:"omitempty,gt=0"`
	NadredjeniID    *int    `json:"nadredjeniId" validate:"omitempty,gt=0"`
	OdsekID         *int    `json:"odsekId" validate:"omitempty,gt=0"`
	SlikaURL        *string `json:"slikaUrl" validate:"omitempty,url"`
}

type ZaposleniResponseDTO struct {
	ID              int     `json:"id"`
	Ime             string  `json:"ime"`
	Prezime         string  `json:"prezime"`
	Email           string  `json:"email"`
	Telefon         string  `json:"telefon"`
	Adresa          string  `json:"adresa"`
	Pol             string  `json:"pol"`
	JMBG            string  `json:"jmbg"`
	DatumZaposlenja string  `json:"datumZaposlenja"`
	DatumRodjenja   *string `json:"datumRodjenja,omitempty"`
	Pozicija        string  `json:"pozicija"`
	PozicijaID      *int    `json:"pozicijaId,omitempty"`
	NadredjeniID    *int    `json:"nadredjeniId,omitempty"`
	OdsekID         *int    `json:"odsekId,omitempty"`
	OdsekNaziv      *string `json:"odsekNaziv,omitempty"`
	SlikaURL        *string `json:"slikaUrl,omitempty"`
	IsActive        bool    `json:"isActive"`
}

type ShortZaposleniDTO struct {
	ID      int    `json:"id"`
	Ime     string `json:"ime"`
	Prezime string `json:"prezime"`
}
