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

type InventarController struct {
	inventarService services.InventarServiceInterface
	logger          *zap.Logger
}

func NewInventarController(inventarService services.InventarServiceInterface, logger *zap.Logger) *InventarController {
	return &InventarController{inventarService: inventarService, logger: logger}
}

func (c *InventarController) GetStavke(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())

	var filter dto.InventarFilterDTO
	if err := ctx.Bind(&filter); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravni parametri filtera", err), c.logger)
	}

	stavke, total, err := c.inventarService.GetStavke(ctx.Request().Context(), params, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavke, "Stavke inventara su uspešno učitane", http.StatusOK, total)
}

func (c *InventarController) FindStavka(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	stavka, err := c.inventarService.FindStavka(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavka, "Stavka je pronađena", http.StatusOK)
}

func (c *InventarController) GetStavkeZaposlenog(ctx echo.Context) error {
	zaposleniID, err := strconv.Atoi(ctx.Param("zaposleniId"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	stavke, err := c.inventarService.GetStavkeZaposlenog(ctx.Request().Context(), zaposleniID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavke, "Inventar zaposlenog je uspešno učitan", http.StatusOK)
}

func (c *InventarController) GetKategorije(ctx echo.Context) error {
	kategorije, err := c.inventarService.GetKategorije(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, kategorije, "Kategorije su uspešno učitane", http.StatusOK)
}

func (c *InventarController) GetLokacije(ctx echo.Context) error {
	lokacije, err := c.inventarService.GetLokacije(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, lokacije, "Lokacije su uspešno učitane", http.StatusOK)
}

func (c *InventarController) GetStatistike(ctx echo.Context) error {
	statistike, err := c.inventarService.GetStatistike(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statistike, "Statistika inventara je uspešno učitana", http.StatusOK)
}

func (c *InventarController) CreateStavka(ctx echo.Context) error {
	var payload dto.CreateInventarDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stavka, err := c.inventarService.CreateStavka(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavka, "Stavka inventara je uspešno kreirana", http.StatusCreated)
}

func (c *InventarController) UpdateStavka(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.UpdateInventarDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stavka, err := c.inventarService.UpdateStavka(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavka, "Stavka inventara je uspešno izmenjena", http.StatusOK)
}

func (c *InventarController) Dodeli(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.DodeliInventarDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stavka, err := c.inventarService.Dodeli(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavka, "Stavka je uspešno dodeljena", http.StatusOK)
}

func (c *InventarController) Vrati(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.VratiInventarDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stavka, err := c.inventarService.Vrati(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stavka, "Stavka je uspešno vraćena", http.StatusOK)
}

func (c *InventarController) DeleteStavka(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	if err := c.inventarService.DeleteStavka(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Stavka inventara je uspešno obrisana", http.StatusOK)
}
