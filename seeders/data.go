package seeders

import "hr-system/pkg/constants"

type demoZaposleni struct {
	Ime           string
	Prezime       string
	Email         string
	Telefon       string
	Pol           string
	Pozicija      string
	Odsek         string
	Nadredjeni    string // email nadređenog, prazno za koren hijerarhije
	Uloga         string
	KorisnickoIme string
	Osnovna       float64
	Bonusi        float64
}

// Hijerarhija: direktor -> vođe timova -> članovi.
var demoZaposleniLista = []demoZaposleni{
	{"Marko", "Marković", "marko.markovic@hr-system.local", "0601000001", "M",
		"CEO", "IT", "", constants.RoleSuperAdmin, "marko", 350000, 50000},
	{"Jelena", "Jovanović", "jelena.jovanovic@hr-system.local", "0601000002", "Ž",
		"HR Direktor", "HR", "marko.markovic@hr-system.local", constants.RoleHRManager, "jelena", 250000, 20000},
	{"Nikola", "Nikolić", "nikola.nikolic@hr-system.local", "0601000003", "M",
		"Team Lead", "IT", "marko.markovic@hr-system.local", constants.RoleTeamLead, "nikola", 220000, 15000},
	{"Ana", "Anić", "ana.anic@hr-system.local", "0601000004", "Ž",
		"Senior Developer", "IT", "nikola.nikolic@hr-system.local", constants.RoleZaposleni, "ana", 180000, 10000},
	{"Petar", "Petrović", "petar.petrovic@hr-system.local", "0601000005", "M",
		"Developer", "IT", "nikola.nikolic@hr-system.local", constants.RoleZaposleni, "petar", 150000, 5000},
	{"Milica", "Milić", "milica.milic@hr-system.local", "0601000006", "Ž",
		"Junior Developer", "IT", "nikola.nikolic@hr-system.local", constants.RoleZaposleni, "milica", 100000, 0},
	{"Stefan", "Stefanović", "stefan.stefanovic@hr-system.local", "0601000007", "M",
		"HR Specialist", "HR", "jelena.jovanovic@hr-system.local", constants.RoleZaposleni, "stefan", 120000, 0},
	{"Ivana", "Ivić", "ivana.ivic@hr-system.local", "0601000008", "Ž",
		"Marketing Specialist", "Marketing", "marko.markovic@hr-system.local", constants.RoleZaposleni, "ivana", 130000, 5000},
}

type demoInventar struct {
	Naziv        string
	Kategorija   string
	SerijskiBroj string
	Vrednost     float64
	Stanje       string
	Lokacija     string
	Dodeljen     string // email zaposlenog, prazno za slobodnu stavku
}

var demoInventarLista = []demoInventar{
	{"ThinkPad X1 Carbon", constants.KategorijaRacunari, "TP-X1-0001", 250000, constants.StanjeNovo, "Beograd", "ana.anic@hr-system.local"},
	{"ThinkPad T14", constants.KategorijaRacunari, "TP-T14-0002", 180000, constants.StanjeKorisceno, "Beograd", "petar.petrovic@hr-system.local"},
	{"iPhone 15", constants.KategorijaTelefoni, "IP15-0001", 140000, constants.StanjeNovo, "Beograd", "nikola.nikolic@hr-system.local"},
	{"Dell UltraSharp 27", constants.KategorijaOprema, "DU27-0001", 60000, constants.StanjeNovo, "Beograd", ""},
	{"Radni sto", constants.KategorijaNamestaj, "", 35000, constants.StanjeKorisceno, "Novi Sad", ""},
	{"Škoda Octavia", constants.KategorijaVozila, "BG-1234-AB", 2500000, constants.StanjeKorisceno, "Beograd", ""},
}
