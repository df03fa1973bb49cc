package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	view := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager, constants.RoleTeamLead)

	secureGroup.GET("/dashboard/statistics", dashboardCtrl.GetStatistics, view)
	secureGroup.GET("/dashboard/recent-activity", dashboardCtrl.GetRecentActivity, view)
	secureGroup.GET("/dashboard/charts-data", dashboardCtrl.GetChartsData, view)
}
