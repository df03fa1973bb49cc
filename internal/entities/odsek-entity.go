package entities

import "hr-system/pkg/types"

type Odsek struct {
	ID       int    `json:"id" db:"id"`
	Naziv    string `json:"naziv" db:"naziv"`
	Opis     string `json:"opis" db:"opis"`
	IsActive bool   `json:"is_active" db:"is_active"`

	BrojZaposlenih int `json:"broj_zaposlenih" db:"-"`

	types.BaseEntity
}
