package dto

type CreateOdsekDTO struct {
	Naziv string `json:"naziv" validate:"required,max=100"`
	Opis  string `json:"opis" validate:"omitempty,max=500"`
}

type UpdateOdsekDTO struct {
	Naziv *string `json:"naziv" validate:"omitempty,max=100"`
	Opis  *string `json:"opis" validate:"omitempty,max=500"`
}

type OdsekResponseDTO struct {
	ID             int    `json:"id"`
	Naziv          string `json:"naziv"`
	Opis           string `json:"opis"`
	BrojZaposlenih int    `json:"brojZaposlenih"`
	IsActive       bool   `json:"isActive"`
}
