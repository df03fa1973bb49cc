package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlataNeto(t *testing.T) {
	p := Plata{Osnovna: 150000, Bonusi: 20000, Otkazi: 5000}
	assert.Equal(t, 165000.0, p.Neto())

	bezDodataka := Plata{Osnovna: 100000}
	assert.Equal(t, 100000.0, bezDodataka.Neto())
}

func TestZahtevBrojDana(t *testing.T) {
	z := ZahtevZaOdmor{
		DatumOd: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		DatumDo: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, z.BrojDana())
}

func TestInventarDodeljena(t *testing.T) {
	zaposleniID := 5
	now := time.Now()

	slobodna := InventarStavka{}
	assert.False(t, slobodna.Dodeljena())

	dodeljena := InventarStavka{ZaposleniID: &zaposleniID, DatumDodele: &now}
	assert.True(t, dodeljena.Dodeljena())

	vracena := InventarStavka{ZaposleniID: &zaposleniID, DatumDodele: &now, DatumVracanja: &now}
	assert.False(t, vracena.Dodeljena())
}

func TestZaposleniNazivPozicije(t *testing.T) {
	naziv := "Senior Developer"

	izSifarnika := Zaposleni{Pozicija: "stari tekst", PozicijaNaziv: &naziv}
	assert.Equal(t, "Senior Developer", izSifarnika.NazivPozicije())

	prazan := ""
	samoTekst := Zaposleni{Pozicija: "Knjigovođa", PozicijaNaziv: &prazan}
	assert.Equal(t, "Knjigovođa", samoTekst.NazivPozicije())

	assert.Equal(t, "Marko Marković", (&Zaposleni{Ime: "Marko", Prezime: "Marković"}).PunoIme())
}
