package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	api.POST("/auth/login", authCtrl.Login)

	// Naloge otvara kadrovska služba, ne sami zaposleni.
	secureGroup.POST("/auth/register", authCtrl.Register,
		authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager))
}
