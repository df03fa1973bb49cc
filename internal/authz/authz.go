package authz

import "hr-system/pkg/constants"

// Action je radnja nad resursom koju akter pokušava da izvede.
type Action string

const (
	ActionCreateZahtev  Action = "zahtev:create"
	ActionRespondZahtev Action = "zahtev:respond"
	ActionDeleteZahtev  Action = "zahtev:delete"
	ActionManageZaposleni Action = "zaposleni:manage"
	ActionManagePlata     Action = "plata:manage"
	ActionManageStruktura Action = "struktura:manage"
	ActionManageInventar  Action = "inventar:manage"
	ActionViewDashboard   Action = "dashboard:view"
)

// rolePowers mapira ulogu na radnje koje sme bez obzira na vlasništvo.
var rolePowers = map[string]map[Action]bool{
	constants.RoleSuperAdmin: {
		ActionCreateZahtev: true, ActionRespondZahtev: true, ActionDeleteZahtev: true,
		ActionManageZaposleni: true, ActionManagePlata: true, ActionManageStruktura: true,
		ActionManageInventar: true, ActionViewDashboard: true,
	},
	constants.RoleHRManager: {
		ActionCreateZahtev: true, ActionRespondZahtev: true, ActionDeleteZahtev: true,
		ActionManageZaposleni: true, ActionManagePlata: true, ActionManageStruktura: true,
		ActionManageInventar: true, ActionViewDashboard: true,
	},
	constants.RoleTeamLead: {
		ActionCreateZahtev: true, ActionRespondZahtev: true,
		ActionViewDashboard: true,
	},
	constants.RoleZaposleni: {},
}

// CanDo odlučuje da li akter sme da izvede radnju nad resursom čiji je vlasnik
// zaposleni sa ownerZaposleniID (nil kada resurs nema vlasnika). Za uloge bez
// opšteg ovlašćenja dozvoljene su samo radnje nad sopstvenim resursima.
func CanDo(role string, ownerZaposleniID, actorZaposleniID *int, action Action) bool {
	if powers, ok := rolePowers[role]; ok && powers[action] {
		return true
	}

	// Samousluga: vlasnik sme da kreira i briše sopstvene zahteve.
	if action != ActionCreateZahtev && action != ActionDeleteZahtev {
		return false
	}
	if ownerZaposleniID == nil || actorZaposleniID == nil {
		return false
	}
	return *ownerZaposleniID == *actorZaposleniID
}

// IsPrivileged je istinito za uloge koje upravljaju tuđim podacima.
func IsPrivileged(role string) bool {
	return role == constants.RoleSuperAdmin || role == constants.RoleHRManager
}

// CanRespond proverava da li uloga sme da odobri ili odbaci zahtev.
func CanRespond(role string) bool {
	return CanDo(role, nil, nil, ActionRespondZahtev)
}
