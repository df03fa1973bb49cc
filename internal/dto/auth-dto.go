package dto

import "time"

type LoginDTO struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	UserName    string `json:"userName" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Uloga       string `json:"uloga" validate:"omitempty,oneof=SuperAdmin HRManager TeamLead Zaposleni"`
	ZaposleniID *int   `json:"zaposleniId" validate:"omitempty,gt=0"`
}

type AuthResponseDTO struct {
	Token       string    `json:"token"`
	UserName    string    `json:"userName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	ZaposleniID *int      `json:"zaposleniId,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type ChangePasswordDTO struct {
	StaraLozinka string `json:"staraLozinka" validate:"required"`
	NovaLozinka  string `json:"novaLozinka" validate:"required,min=6"`
}
