package dto

type CreatePlataDTO struct {
	ZaposleniID int     `json:"zaposleniId" validate:"required,gt=0"`
	Osnovna     float64 `json:"osnovna" validate:"required,gte=0"`
	Bonusi      float64 `json:"bonusi" validate:"gte=0"`
	Otkazi      float64 `json:"otkazi" validate:"gte=0"`
	Period      string  `json:"period" validate:"required,period_format"`
	Napomena    *string `json:"napomena" validate:"omitempty,max=500"`
}

type UpdatePlataDTO struct {
	Osnovna  *float64 `json:"osnovna" validate:"omitempty,gte=0"`
	Bonusi   *float64 `json:"bonusi" validate:"omitempty,gte=0"`
	Otkazi   *float64 `json:"otkazi" validate:"omitempty,gte=0"`
	Period   *string  `json:"period" validate:"omitempty,period_format"`
	Napomena *string  `json:"napomena" validate:"omitempty,max=500"`
}

type PlataResponseDTO struct {
	ID                  int     `json:"id"`
	ZaposleniID         int     `json:"zaposleniId"`
	ZaposleniImePrezime *string `json:"zaposleniImePrezime,omitempty"`
	Osnovna             float64 `json:"osnovna"`
	Bonusi              float64 `json:"bonusi"`
	Otkazi              float64 `json:"otkazi"`
	Neto                float64 `json:"neto"`
	Period              string  `json:"period"`
	Napomena            *string `json:"napomena,omitempty"`
}
