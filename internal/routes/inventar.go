package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runInventarRouter(secureGroup *echo.Group, inventarCtrl *controllers.InventarController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/inventar", inventarCtrl.GetStavke)
	secureGroup.GET("/inventar/statistike", inventarCtrl.GetStatistike)
	secureGroup.GET("/inventar/kategorije", inventarCtrl.GetKategorije)
	secureGroup.GET("/inventar/lokacije", inventarCtrl.GetLokacije)
	secureGroup.GET("/inventar/zaposleni/:zaposleniId", inventarCtrl.GetStavkeZaposlenog)
	secureGroup.GET("/inventar/:id", inventarCtrl.FindStavka)
	secureGroup.POST("/inventar", inventarCtrl.CreateStavka, manage)
	secureGroup.PUT("/inventar/:id", inventarCtrl.UpdateStavka, manage)
	secureGroup.POST("/inventar/:id/dodeli", inventarCtrl.Dodeli, manage)
	secureGroup.POST("/inventar/:id/vrati", inventarCtrl.Vrati, manage)
	secureGroup.DELETE("/inventar/:id", inventarCtrl.DeleteStavka, manage)
}
