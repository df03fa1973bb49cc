package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runZahtevZaOdmorRouter(secureGroup *echo.Group, zahtevCtrl *controllers.ZahtevZaOdmorController, authMW *middleware.AuthMiddleware) {
	respond := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager, constants.RoleTeamLead)

	secureGroup.GET("/zahtevzaodmor", zahtevCtrl.GetZahtevi)
	secureGroup.GET("/zahtevzaodmor/:id", zahtevCtrl.FindZahtev)
	secureGroup.POST("/zahtevzaodmor", zahtevCtrl.CreateZahtev)
	secureGroup.PUT("/zahtevzaodmor/:id/odobri", zahtevCtrl.Odobri, respond)
	secureGroup.PUT("/zahtevzaodmor/:id/odbaci", zahtevCtrl.Odbaci, respond)
	secureGroup.DELETE("/zahtevzaodmor/:id", zahtevCtrl.DeleteZahtev)
}
