package dto

type PlataReportFilterDTO struct {
	PeriodOd string `query:"periodOd" validate:"omitempty,period_format"`
	PeriodDo string `query:"periodDo" validate:"omitempty,period_format"`
	OdsekID  *int   `query:"odsekId" validate:"omitempty,gt=0"`
	Format   string `query:"format" validate:"omitempty,oneof=json xlsx"`
}

type PlataReportRowDTO struct {
	ZaposleniID int     `json:"zaposleniId"`
	Ime         string  `json:"ime"`
	Prezime     string  `json:"prezime"`
	OdsekNaziv  *string `json:"odsekNaziv,omitempty"`
	Period      string  `json:"period"`
	Osnovna     float64 `json:"osnovna"`
	Bonusi      float64 `json:"bonusi"`
	Otkazi      float64 `json:"otkazi"`
	Neto        float64 `json:"neto"`
}
