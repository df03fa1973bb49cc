package entities

import "hr-system/pkg/types"

type Pozicija struct {
	ID       int    `json:"id" db:"id"`
	Naziv    string `json:"naziv" db:"naziv"`
	Nivo     int    `json:"nivo" db:"nivo"`
	Boja     string `json:"boja" db:"boja"`
	Opis     string `json:"opis" db:"opis"`
	IsActive bool   `json:"is_active" db:"is_active"`

	types.BaseEntity
}
