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

type VestController struct {
	vestService services.VestServiceInterface
	logger      *zap.Logger
}

func NewVestController(vestService services.VestServiceInterface, logger *zap.Logger) *VestController {
	return &VestController{vestService: vestService, logger: logger}
}

func (c *VestController) GetVesti(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())

	vesti, total, err := c.vestService.GetVesti(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vesti, "Vesti su uspešno učitane", http.StatusOK, total)
}

func (c *VestController) FindVest(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	vest, err := c.vestService.FindVest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vest, "Vest je pronađena", http.StatusOK)
}

func (c *VestController) CreateVest(ctx echo.Context) error {
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateVestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vest, err := c.vestService.CreateVest(ctx.Request().Context(), actor.UserName, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vest, "Vest je uspešno objavljena", http.StatusCreated)
}

func (c *VestController) UpdateVest(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.UpdateVestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vest, err := c.vestService.UpdateVest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vest, "Vest je uspešno izmenjena", http.StatusOK)
}

func (c *VestController) DeleteVest(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	if err := c.vestService.DeleteVest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Vest je uspešno obrisana", http.StatusOK)
}
