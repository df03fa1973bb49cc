package constants

//============== ULOGE KORISNIKA ==============

const (
	RoleSuperAdmin = "SuperAdmin"
	RoleHRManager  = "HRManager"
	RoleTeamLead   = "TeamLead"
	RoleZaposleni  = "Zaposleni"
)

//============== STATUSI ZAHTEVA ZA ODMOR ==============

const (
	StatusNaCekanju = "NaCekanju"
	StatusOdobren   = "Odobren"
	StatusOdbacen   = "Odbacen"
)

//============== TIPOVI ODMORA ==============

const (
	TipOdmoraGodisnji  = "Godisnji"
	TipOdmoraBolovanje = "Bolovanje"
	TipOdmoraPorodicni = "Porodicni"
	TipOdmoraStudijski = "Studijski"
	TipOdmoraNeplaceni = "Neplaceni"
)

// SviTipoviOdmora je spisak dozvoljenih vrednosti za tip odmora.
var SviTipoviOdmora = []string{
	TipOdmoraGodisnji,
	TipOdmoraBolovanje,
	TipOdmoraPorodicni,
	TipOdmoraStudijski,
	TipOdmoraNeplaceni,
}

// GodisnjiFondDana je podrazumevani broj dana godišnjeg odmora.
const GodisnjiFondDana = 25
