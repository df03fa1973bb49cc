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

type StrukturaController struct {
	strukturaService services.StrukturaServiceInterface
	logger           *zap.Logger
}

func NewStrukturaController(strukturaService services.StrukturaServiceInterface, logger *zap.Logger) *StrukturaController {
	return &StrukturaController{strukturaService: strukturaService, logger: logger}
}

func (c *StrukturaController) GetOrgChart(ctx echo.Context) error {
	chart, err := c.strukturaService.GetOrgChart(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, chart, "Organizaciona struktura je uspešno učitana", http.StatusOK)
}

func (c *StrukturaController) UpdateHijerarhija(ctx echo.Context) error {
	var payload dto.UpdateHijerarhijaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.strukturaService.UpdateHijerarhija(ctx.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Hijerarhija je uspešno izmenjena", http.StatusOK)
}

func (c *StrukturaController) GetPozicije(ctx echo.Context) error {
	pozicije, err := c.strukturaService.GetPozicije(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pozicije, "Pozicije su uspešno učitane", http.StatusOK)
}

func (c *StrukturaController) CreatePozicija(ctx echo.Context) error {
	var payload dto.CreatePozicijaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pozicija, err := c.strukturaService.CreatePozicija(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pozicija, "Pozicija je uspešno kreirana", http.StatusCreated)
}

func (c *StrukturaController) GetTim(ctx echo.Context) error {
	zaposleniID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	tim, err := c.strukturaService.GetTim(ctx.Request().Context(), zaposleniID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tim, "Tim je uspešno učitan", http.StatusOK)
}
