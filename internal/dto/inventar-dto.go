package dto

type CreateInventarDTO struct {
	Naziv        string  `json:"naziv" validate:"required,max=200"`
	Opis         string  `json:"opis" validate:"omitempty,max=1000"`
	Kategorija   string  `json:"kategorija" validate:"required,max=100"`
	SerijskiBroj string  `json:"serijskiBroj" validate:"omitempty,max=100"`
	Vrednost     float64 `json:"vrednost" validate:"gte=0"`
	Stanje       string  `json:"stanje" validate:"required,oneof=Novo Korisceno Pokvareno Izgubljeno Otpisano"`
	Lokacija     string  `json:"lokacija" validate:"omitempty,max=200"`
	DatumNabavke string  `json:"datumNabavke" validate:"required,datetime=2006-01-02"`
}

type UpdateInventarDTO struct {
	Naziv        *string  `json:"naziv" validate:"omitempty,max=200"`
	Opis         *string  `json:"opis" validate:"omitempty,max=1000"`
	Kategorija   *string  `json:"kategorija" validate:"omitempty,max=100"`
	SerijskiBroj *string  `json:"serijskiBroj" validate:"omitempty,max=100"`
	Vrednost     *float64 `json:"vrednost" validate:"omitempty,gte=0"`
	Stanje       *string  `json:"stanje" validate:"omitempty,oneof=Novo Korisceno Pokvareno Izgubljeno Otpisano"`
	Lokacija     *string  `json:"lokacija" validate:"omitempty,max=200"`
	DatumNabavke *string  `json:"datumNabavke" validate:"omitempty,datetime=2006-01-02"`
}

type DodeliInventarDTO struct {
	ZaposleniID int `json:"zaposleniId" validate:"required,gt=0"`
}

type VratiInventarDTO struct {
	NovoStanje *string `json:"novoStanje" validate:"omitempty,oneof=Novo Korisceno Pokvareno Izgubljeno Otpisano"`
	Napomena   *string `json:"napomena" validate:"omitempty,max=500"`
}

// InventarFilterDTO nosi parametre liste; puni se iz query stringa.
type InventarFilterDTO struct {
	Pretraga      string   `query:"pretraga"`
	Kategorija    string   `query:"kategorija"`
	Stanje        string   `query:"stanje"`
	Lokacija      string   `query:"lokacija"`
	ZaposleniID   *int     `query:"zaposleniId"`
	SamoDodeljene bool     `query:"samoDodeljene"`
	SamoDostupne  bool     `query:"samoDostupne"`
	VrednostOd    *float64 `query:"vrednostOd"`
	VrednostDo    *float64 `query:"vrednostDo"`
	NabavkaOd     string   `query:"nabavkaOd"`
	NabavkaDo     string   `query:"nabavkaDo"`
}

type InventarResponseDTO struct {
	ID                  int     `json:"id"`
	Naziv               string  `json:"naziv"`
	Opis                string  `json:"opis"`
	Kategorija          string  `json:"kategorija"`
	SerijskiBroj        string  `json:"serijskiBroj"`
	Vrednost            float64 `json:"vrednost"`
	Stanje              string  `json:"stanje"`
	Lokacija            string  `json:"lokacija"`
	DatumNabavke        string  `json:"datumNabavke"`
	ZaposleniID         *int    `json:"zaposleniId,omitempty"`
	ZaposleniImePrezime *string `json:"zaposleniImePrezime,omitempty"`
	DatumDodele         *string `json:"datumDodele,omitempty"`
	DatumVracanja       *string `json:"datumVracanja,omitempty"`
	Dodeljena           bool    `json:"dodeljena"`
	QRKod               string  `json:"qrKod"`
	IsActive            bool    `json:"isActive"`
}

type InventarStatistikeDTO struct {
	UkupnoStavki    int64              `json:"ukupnoStavki"`
	UkupnaVrednost  float64            `json:"ukupnaVrednost"`
	BrojDodeljenih  int64              `json:"brojDodeljenih"`
	BrojDostupnih   int64              `json:"brojDostupnih"`
	PoKategorijama  map[string]int64   `json:"poKategorijama"`
	PoStanjima      map[string]int64   `json:"poStanjima"`
}
