package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runOdsekRouter(secureGroup *echo.Group, odsekCtrl *controllers.OdsekController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/odsek", odsekCtrl.GetOdseci)
	secureGroup.GET("/odsek/:id", odsekCtrl.FindOdsek)
	secureGroup.GET("/odsek/:id/zaposleni", odsekCtrl.GetZaposleniOdseka)
	secureGroup.POST("/odsek", odsekCtrl.CreateOdsek, manage)
	secureGroup.PUT("/odsek/:id", odsekCtrl.UpdateOdsek, manage)
	secureGroup.DELETE("/odsek/:id", odsekCtrl.DeleteOdsek, manage)
}
