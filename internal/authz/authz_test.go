package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-system/pkg/constants"
)

func ptr(v int) *int { return &v }

func TestCanDo_PrivilegovaneUloge(t *testing.T) {
	for _, role := range []string{constants.RoleSuperAdmin, constants.RoleHRManager} {
		assert.True(t, CanDo(role, nil, nil, ActionManageZaposleni), role)
		assert.True(t, CanDo(role, nil, nil, ActionManagePlata), role)
		assert.True(t, CanDo(role, ptr(7), nil, ActionDeleteZahtev), role)
	}
}

func TestCanDo_TeamLead(t *testing.T) {
	assert.True(t, CanDo(constants.RoleTeamLead, nil, nil, ActionRespondZahtev))
	assert.True(t, CanDo(constants.RoleTeamLead, nil, nil, ActionViewDashboard))
	assert.False(t, CanDo(constants.RoleTeamLead, nil, nil, ActionManageZaposleni))
	assert.False(t, CanDo(constants.RoleTeamLead, ptr(7), ptr(3), ActionDeleteZahtev))
}

func TestCanDo_SamouslugaZaposlenog(t *testing.T) {
	// Sopstveni zahtev sme da kreira i obriše.
	assert.True(t, CanDo(constants.RoleZaposleni, ptr(5), ptr(5), ActionCreateZahtev))
	assert.True(t, CanDo(constants.RoleZaposleni, ptr(5), ptr(5), ActionDeleteZahtev))

	// Tuđi ne.
	assert.False(t, CanDo(constants.RoleZaposleni, ptr(6), ptr(5), ActionCreateZahtev))
	assert.False(t, CanDo(constants.RoleZaposleni, ptr(6), ptr(5), ActionDeleteZahtev))

	// Samousluga ne važi za ostale radnje ni nad sopstvenim podacima.
	assert.False(t, CanDo(constants.RoleZaposleni, ptr(5), ptr(5), ActionRespondZahtev))
	assert.False(t, CanDo(constants.RoleZaposleni, ptr(5), ptr(5), ActionManageInventar))
}

func TestCanDo_BezVezeSaZaposlenim(t *testing.T) {
	// Nalog bez povezanog zaposlenog nema samouslugu.
	assert.False(t, CanDo(constants.RoleZaposleni, ptr(5), nil, ActionCreateZahtev))
	assert.False(t, CanDo(constants.RoleZaposleni, nil, ptr(5), ActionCreateZahtev))
}

func TestCanDo_NepoznataUloga(t *testing.T) {
	assert.False(t, CanDo("Gost", nil, nil, ActionViewDashboard))
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, IsPrivileged(constants.RoleSuperAdmin))
	assert.True(t, IsPrivileged(constants.RoleHRManager))
	assert.False(t, IsPrivileged(constants.RoleTeamLead))
	assert.False(t, IsPrivileged(constants.RoleZaposleni))
}

func TestCanRespond(t *testing.T) {
	assert.True(t, CanRespond(constants.RoleHRManager))
	assert.True(t, CanRespond(constants.RoleTeamLead))
	assert.False(t, CanRespond(constants.RoleZaposleni))
}
