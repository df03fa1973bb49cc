package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/services"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

type ZaposleniController struct {
	zaposleniService services.ZaposleniServiceInterface
	logger           *zap.Logger
}

func NewZaposleniController(zaposleniService services.ZaposleniServiceInterface, logger *zap.Logger) *ZaposleniController {
	return &ZaposleniController{zaposleniService: zaposleniService, logger: logger}
}

func (c *ZaposleniController) GetZaposleni(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())
	zaposleni, total, err := c.zaposleniService.GetZaposleni(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zaposleni, "Zaposleni su uspešno učitani", http.StatusOK, total)
}

func (c *ZaposleniController) FindZaposleni(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	zaposleni, err := c.zaposleniService.FindZaposleni(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zaposleni, "Zaposleni je pronađen", http.StatusOK)
}

func (c *ZaposleniController) CreateZaposleni(ctx echo.Context) error {
	var payload dto.CreateZaposleniDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	zaposleni, err := c.zaposleniService.CreateZaposleni(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zaposleni, "Zaposleni je uspešno kreiran", http.StatusCreated)
}

func (c *ZaposleniController) UpdateZaposleni(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.UpdateZaposleniDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	zaposleni, err := c.zaposleniService.UpdateZaposleni(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zaposleni, "Zaposleni je uspešno izmenjen", http.StatusOK)
}

func (c *ZaposleniController) DeleteZaposleni(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	if err := c.zaposleniService.DeleteZaposleni(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Zaposleni je uspešno obrisan", http.StatusOK)
}
