package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runStrukturaRouter(secureGroup *echo.Group, strukturaCtrl *controllers.StrukturaController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/struktura/org-chart", strukturaCtrl.GetOrgChart)
	secureGroup.PUT("/struktura/hijerarhija", strukturaCtrl.UpdateHijerarhija, manage)
	secureGroup.GET("/struktura/pozicije", strukturaCtrl.GetPozicije)
	secureGroup.POST("/struktura/pozicije", strukturaCtrl.CreatePozicija, manage)
	secureGroup.GET("/struktura/zaposleni/:id/tim", strukturaCtrl.GetTim)
}
