package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/services"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetPlataReport vraća izveštaj o platama kao JSON ili, uz format=xlsx,
// kao Excel fajl za preuzimanje.
func (c *ReportController) GetPlataReport(ctx echo.Context) error {
	var filter dto.PlataReportFilterDTO
	if err := ctx.Bind(&filter); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravni parametri filtera", err), c.logger)
	}
	if err := ctx.Validate(&filter); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if filter.Format == "xlsx" {
		buf, err := c.reportService.GetPlataReportXLSX(ctx.Request().Context(), filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		fileName := fmt.Sprintf("izvestaj-plate-%s.xlsx", time.Now().Format("2006-01-02"))
		ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
		return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
	}

	rows, err := c.reportService.GetPlataReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rows, "Izveštaj o platama je uspešno generisan", http.StatusOK)
}
