package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/report/plate", reportCtrl.GetPlataReport,
		authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager))
}
