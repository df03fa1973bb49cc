package dto

import "github.com/aarondl/null/v8"

// OrgChartNodeDTO je čvor stabla organizacione strukture. Podredjeni se
// rekurzivno popunjavaju do listova.
type OrgChartNodeDTO struct {
	ID            int                `json:"id"`
	Ime           string             `json:"ime"`
	Prezime       string             `json:"prezime"`
	Email         string             `json:"email"`
	Pozicija      string             `json:"pozicija"`
	PozicijaNivo  int                `json:"pozicijaNivo"`
	PozicijaBoja  string             `json:"pozicijaBoja"`
	OdsekNaziv    *string            `json:"odsekNaziv,omitempty"`
	SlikaURL      *string            `json:"slikaUrl,omitempty"`
	Podredjeni    []*OrgChartNodeDTO `json:"podredjeni"`
}

// UpdateHijerarhijaDTO menja nadređenog i po želji poziciju zaposlenog.
// Null nadređeni znači ukidanje nadređenog (zaposleni postaje koren).
type UpdateHijerarhijaDTO struct {
	ZaposleniID  int      `json:"zaposleniId" validate:"required,gt=0"`
	NadredjeniID null.Int `json:"nadredjeniId"`
	PozicijaID   null.Int `json:"pozicijaId"`
}

type CreatePozicijaDTO struct {
	Naziv string `json:"naziv" validate:"required,max=100"`
	Nivo  int    `json:"nivo" validate:"required,gte=1,lte=99"`
	Boja  string `json:"boja" validate:"omitempty,hex_color"`
	Opis  string `json:"opis" validate:"omitempty,max=500"`
}

type PozicijaResponseDTO struct {
	ID       int    `json:"id"`
	Naziv    string `json:"naziv"`
	Nivo     int    `json:"nivo"`
	Boja     string `json:"boja"`
	Opis     string `json:"opis"`
	IsActive bool   `json:"isActive"`
}

type TimClanDTO struct {
	ID       int     `json:"id"`
	Ime      string  `json:"ime"`
	Prezime  string  `json:"prezime"`
	Email    string  `json:"email"`
	Pozicija string  `json:"pozicija"`
	SlikaURL *string `json:"slikaUrl,omitempty"`
}
