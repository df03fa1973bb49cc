package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
	"hr-system/pkg/constants"
	"hr-system/pkg/middleware"
)

func runVestRouter(secureGroup *echo.Group, vestCtrl *controllers.VestController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleSuperAdmin, constants.RoleHRManager)

	secureGroup.GET("/vesti", vestCtrl.GetVesti)
	secureGroup.GET("/vesti/:id", vestCtrl.FindVest)
	secureGroup.POST("/vesti", vestCtrl.CreateVest, manage)
	secureGroup.PUT("/vesti/:id", vestCtrl.UpdateVest, manage)
	secureGroup.DELETE("/vesti/:id", vestCtrl.DeleteVest, manage)
}
