package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runZaposleniRouter(secureGroup *echo.Group, zaposleniCtrl *controllers.ZaposleniController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/zaposleni", zaposleniCtrl.GetZaposleni)
	secureGroup.GET("/zaposleni/:id", zaposleniCtrl.FindZaposleni)
	secureGroup.POST("/zaposleni", zaposleniCtrl.CreateZaposleni, manage)
	secureGroup.PUT("/zaposleni/:id", zaposleniCtrl.UpdateZaposleni, manage)
	secureGroup.DELETE("/zaposleni/:id", zaposleniCtrl.DeleteZaposleni, manage)
}
