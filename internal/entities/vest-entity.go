package entities

import (
	"time"

	"hr-system/pkg/types"
)

type Vest struct {
	ID          int       `json:"id" db:"id"`
	Naslov      string    `json:"naslov" db:"naslov"`
	Sadrzaj     string    `json:"sadrzaj" db:"sadrzaj"`
	Autor       string    `json:"autor" db:"autor"`
	DatumObjave time.Time `json:"datum_objave" db:"datum_objave"`
	IsActive    bool      `json:"is_active" db:"is_active"`

	types.BaseEntity
}
