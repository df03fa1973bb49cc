package dto

type CreateVestDTO struct {
	Naslov  string `json:"naslov" validate:"required,max=200"`
	Sadrzaj string `json:"sadrzaj" validate:"required"`
	Autor   string `json:"autor" validate:"omitempty,max=100"`
}

type UpdateVestDTO struct {
	Naslov  *string `json:"naslov" validate:"omitempty,max=200"`
	Sadrzaj *string `json:"sadrzaj" validate:"omitempty"`
}

type VestResponseDTO struct {
	ID          int    `json:"id"`
	Naslov      string `json:"naslov"`
	Sadrzaj     string `json:"sadrzaj"`
	Autor       string `json:"autor"`
	DatumObjave string `json:"datumObjave"`
}
