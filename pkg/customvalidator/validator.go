package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registruje domenska pravila validacije
// na prosleđenoj instanci validatora.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("jmbg", isJMBG); err != nil {
		return err
	}
	if err := v.RegisterValidation("period_format", isPeriodValid); err != nil {
		return err
	}
	if err := v.RegisterValidation("hex_color", isHexColor); err != nil {
		return err
	}
	return nil
}

var (
	jmbgRegex   = regexp.MustCompile(`^\d{13}$`)
	periodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	colorRegex  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// JMBG je jedinstveni matični broj građana, tačno 13 cifara.
func isJMBG(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return jmbgRegex.MatchString(s)
}

// Period isplate u formatu "2025-01".
func isPeriodValid(fl validator.FieldLevel) bool {
	return periodRegex.MatchString(fl.Field().String())
}

func isHexColor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return colorRegex.MatchString(s)
}
