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

type OdsekController struct {
	odsekService services.OdsekServiceInterface
	logger       *zap.Logger
}

func NewOdsekController(odsekService services.OdsekServiceInterface, logger *zap.Logger) *OdsekController {
	return &OdsekController{odsekService: odsekService, logger: logger}
}

func (c *OdsekController) GetOdseci(ctx echo.Context) error {
	odseci, err := c.odsekService.GetOdseci(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, odseci, "Odseci su uspešno učitani", http.StatusOK)
}

func (c *OdsekController) FindOdsek(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	odsek, err := c.odsekService.FindOdsek(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, odsek, "Odsek je pronađen", http.StatusOK)
}

func (c *OdsekController) GetZaposleniOdseka(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	zaposleni, err := c.odsekService.GetZaposleniOdseka(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zaposleni, "Zaposleni odseka su uspešno učitani", http.StatusOK)
}

func (c *OdsekController) CreateOdsek(ctx echo.Context) error {
	var payload dto.CreateOdsekDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	odsek, err := c.odsekService.CreateOdsek(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, odsek, "Odsek je uspešno kreiran", http.StatusCreated)
}

func (c *OdsekController) UpdateOdsek(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.UpdateOdsekDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	odsek, err := c.odsekService.UpdateOdsek(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, odsek, "Odsek je uspešno izmenjen", http.StatusOK)
}

func (c *OdsekController) DeleteOdsek(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	if err := c.odsekService.DeleteOdsek(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Odsek je uspešno obrisan", http.StatusOK)
}
