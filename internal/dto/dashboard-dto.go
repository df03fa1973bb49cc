package dto

type DashboardStatisticsDTO struct {
	BrojAktivnihZaposlenih int64   `json:"brojAktivnihZaposlenih"`
	BrojAktivnihOdseka     int64   `json:"brojAktivnihOdseka"`
	ProsecnaPlata          float64 `json:"prosecnaPlata"`
	UkupanFondPlata        float64 `json:"ukupanFondPlata"`
	ZahteviNaCekanju       int64   `json:"zahteviNaCekanju"`
	OdobreniZahtevi        int64   `json:"odobreniZahtevi"`
	OdbaceniZahtevi        int64   `json:"odbaceniZahtevi"`
	NoviZaposleni30Dana    int64   `json:"noviZaposleni30Dana"`
}

type ActivityItemDTO struct {
	Tip   string `json:"tip"`
	Tekst string `json:"tekst"`
	Datum string `json:"datum"`
}

type ChartPointDTO struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type MonthlyTrendDTO struct {
	Mesec        string  `json:"mesec"`
	FondPlata    float64 `json:"fondPlata"`
	BrojZahteva  int64   `json:"brojZahteva"`
	NovaZaposlenja int64 `json:"novaZaposlenja"`
}

type DashboardChartsDTO struct {
	ZaposleniPoOdseku  []ChartPointDTO   `json:"zaposleniPoOdseku"`
	MesecniTrend       []MonthlyTrendDTO `json:"mesecniTrend"`
	RaspodelaPlata     []ChartPointDTO   `json:"raspodelaPlata"`
}
