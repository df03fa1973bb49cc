package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

// Podaci o platama su poverljivi, pa su sve rute rezervisane za upravu.
func runPlataRouter(secureGroup *echo.Group, plataCtrl *controllers.PlataController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/plata", plataCtrl.GetPlate, manage)
	secureGroup.GET("/plata/zaposleni/:zaposleniId", plataCtrl.GetPlateZaposlenog, manage)
	secureGroup.GET("/plata/:id", plataCtrl.FindPlata, manage)
	secureGroup.POST("/plata", plataCtrl.CreatePlata, manage)
	secureGroup.PUT("/plata/:id", plataCtrl.UpdatePlata, manage)
	secureGroup.DELETE("/plata/:id", plataCtrl.DeletePlata, manage)
}
