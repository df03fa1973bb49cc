package utils

import (
	"fmt"
	"time"
)

// DateOnly odbacuje vreme i vraća datum u UTC ponoći.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BrojDana računa broj dana između dva datuma, uključujući oba kraja.
func BrojDana(od, do time.Time) int {
	return int(DateOnly(do).Sub(DateOnly(od)).Hours()/24) + 1
}

// DatumiSePoklapaju proverava da li se dva zatvorena datumska opsega seku.
func DatumiSePoklapaju(od1, do1, od2, do2 time.Time) bool {
	return !DateOnly(do1).Before(DateOnly(od2)) && !DateOnly(do2).Before(DateOnly(od1))
}

// FormatStaz pretvara datum zaposlenja u tekst tipa "3 godine i 2 meseca".
func FormatStaz(datumZaposlenja, sada time.Time) string {
	days := int(sada.Sub(datumZaposlenja).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30

	switch {
	case years > 0:
		s := fmt.Sprintf("%d %s", years, godineSufiks(years))
		if months > 0 {
			s += fmt.Sprintf(" i %d %s", months, meseciSufiks(months))
		}
		return s
	case months > 0:
		return fmt.Sprintf("%d %s", months, meseciSufiks(months))
	default:
		return "Manje od mesec dana"
	}
}

func godineSufiks(n int) string {
	switch {
	case n == 1:
		return "godina"
	case n < 5:
		return "godine"
	default:
		return "godina"
	}
}

func meseciSufiks(n int) string {
	switch {
	case n == 1:
		return "mesec"
	case n < 5:
		return "meseca"
	default:
		return "meseci"
	}
}
