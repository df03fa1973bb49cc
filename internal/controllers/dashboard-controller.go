package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/services"
	"hr-system/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetStatistics(ctx echo.Context) error {
	statistics, err := c.dashboardService.GetStatistics(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statistics, "Statistika je uspešno učitana", http.StatusOK)
}

func (c *DashboardController) GetRecentActivity(ctx echo.Context) error {
	activity, err := c.dashboardService.GetRecentActivity(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, activity, "Poslednje aktivnosti su uspešno učitane", http.StatusOK)
}

func (c *DashboardController) GetChartsData(ctx echo.Context) error {
	charts, err := c.dashboardService.GetChartsData(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, charts, "Podaci za grafikone su uspešno učitani", http.StatusOK)
}
