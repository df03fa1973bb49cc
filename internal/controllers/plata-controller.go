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

type PlataController struct {
	plataService services.PlataServiceInterface
	logger       *zap.Logger
}

func NewPlataController(plataService services.PlataServiceInterface, logger *zap.Logger) *PlataController {
	return &PlataController{plataService: plataService, logger: logger}
}

func (c *PlataController) GetPlate(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())
	plate, total, err := c.plataService.GetPlate(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, plate, "Plate su uspešno učitane", http.StatusOK, total)
}

func (c *PlataController) GetPlateZaposlenog(ctx echo.Context) error {
	zaposleniID, err := strconv.Atoi(ctx.Param("zaposleniId"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	plate, err := c.plataService.GetPlateZaposlenog(ctx.Request().Context(), zaposleniID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, plate, "Plate zaposlenog su uspešno učitane", http.StatusOK)
}

func (c *PlataController) FindPlata(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	plata, err := c.plataService.FindPlata(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, plata, "Plata je pronađena", http.StatusOK)
}

func (c *PlataController) CreatePlata(ctx echo.Context) error {
	var payload dto.CreatePlataDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	plata, err := c.plataService.CreatePlata(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, plata, "Plata je uspešno uneta", http.StatusCreated)
}

func (c *PlataController) UpdatePlata(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.UpdatePlataDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	plata, err := c.plataService.UpdatePlata(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, plata, "Plata je uspešno izmenjena", http.StatusOK)
}

func (c *PlataController) DeletePlata(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	if err := c.plataService.DeletePlata(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Plata je uspešno obrisana", http.StatusOK)
}
