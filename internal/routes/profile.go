package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
)

func runProfileRouter(secureGroup *echo.Group, profileCtrl *controllers.ProfileController) {
	secureGroup.GET("/profile", profileCtrl.GetProfile)
	secureGroup.PUT("/profile", profileCtrl.UpdateEmail)
	secureGroup.PUT("/profile/password", profileCtrl.ChangePassword)
}
