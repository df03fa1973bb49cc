package constants

//============== STANJA INVENTARA ==============

const (
	StanjeNovo       = "Novo"
	StanjeKorisceno  = "Korisceno"
	StanjePokvareno  = "Pokvareno"
	StanjeIzgubljeno = "Izgubljeno"
	StanjeOtpisano   = "Otpisano"
)

var SvaStanjaInventara = []string{
	StanjeNovo, StanjeKorisceno, StanjePokvareno, StanjeIzgubljeno, StanjeOtpisano,
}

//============== KATEGORIJE INVENTARA ==============

const (
	KategorijaRacunari = "Racunari"
	KategorijaTelefoni = "Telefoni"
	KategorijaNamestaj = "Namestaj"
	KategorijaVozila   = "Vozila"
	KategorijaOprema   = "Oprema"
	KategorijaSoftware = "Software"
	KategorijaOstalo   = "Ostalo"
)

var SveKategorijeInventara = []string{
	KategorijaRacunari, KategorijaTelefoni, KategorijaNamestaj,
	KategorijaVozila, KategorijaOprema, KategorijaSoftware, KategorijaOstalo,
}
