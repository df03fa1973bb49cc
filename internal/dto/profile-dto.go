package dto

type ProfileResponseDTO struct {
	ID              int                   `json:"id"`
	Ime             string                `json:"ime"`
	Prezime         string                `json:"prezime"`
	Email           string                `json:"email"`
	Telefon         string                `json:"telefon"`
	Adresa          string                `json:"adresa"`
	Pozicija        string                `json:"pozicija"`
	OdsekNaziv      *string               `json:"odsekNaziv,omitempty"`
	DatumZaposlenja string                `json:"datumZaposlenja"`
	StazTekst       string                `json:"stazTekst"`
	TrenutnaPlata   *float64              `json:"trenutnaPlata,omitempty"`
	PreostaliDani   int                   `json:"preostaliDaniOdmora"`
	Nadredjeni      *ShortZaposleniDTO    `json:"nadredjeni,omitempty"`
	NadredjeniNadredjenog *ShortZaposleniDTO `json:"nadredjeniNadredjenog,omitempty"`
	SlikaURL        *string               `json:"slikaUrl,omitempty"`
	Inventar        []InventarResponseDTO `json:"inventar"`
}

type UpdateProfileDTO struct {
	Email string `json:"email" validate:"required,email"`
}
