package entities

import (
	"hr-system/pkg/types"
)

type Plata struct {
	ID          int     `json:"id" db:"id"`
	ZaposleniID int     `json:"zaposleni_id" db:"zaposleni_id"`
	Osnovna     float64 `json:"osnovna" db:"osnovna"`
	Bonusi      float64 `json:"bonusi" db:"bonusi"`
	Otkazi      float64 `json:"otkazi" db:"otkazi"`
	Period      string  `json:"period" db:"period"`
	Napomena    *string `json:"napomena,omitempty" db:"napomena"`

	ZaposleniImePrezime *string `json:"zaposleni_ime_prezime,omitempty" db:"-"`

	types.BaseEntity
}

// Neto se uvek izvodi iz osnovne, bonusa i otkaza; nikada se ne čuva u bazi.
func (p *Plata) Neto() float64 {
	return p.Osnovna + p.Bonusi - p.Otkazi
}
