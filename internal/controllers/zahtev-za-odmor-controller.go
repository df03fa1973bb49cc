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

type ZahtevZaOdmorController struct {
	zahtevService services.ZahtevZaOdmorServiceInterface
	logger        *zap.Logger
}

func NewZahtevZaOdmorController(zahtevService services.ZahtevZaOdmorServiceInterface, logger *zap.Logger) *ZahtevZaOdmorController {
	return &ZahtevZaOdmorController{zahtevService: zahtevService, logger: logger}
}

func (c *ZahtevZaOdmorController) GetZahtevi(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())
	status := ctx.QueryParam("status")

	zahtevi, total, err := c.zahtevService.GetZahtevi(ctx.Request().Context(), params, status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zahtevi, "Zahtevi za odmor su uspešno učitani", http.StatusOK, total)
}

func (c *ZahtevZaOdmorController) FindZahtev(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}
	zahtev, err := c.zahtevService.FindZahtev(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zahtev, "Zahtev je pronađen", http.StatusOK)
}

func (c *ZahtevZaOdmorController) CreateZahtev(ctx echo.Context) error {
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateZahtevZaOdmorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	zahtev, err := c.zahtevService.CreateZahtev(ctx.Request().Context(), actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zahtev, "Zahtev za odmor je uspešno podnet", http.StatusCreated)
}

func (c *ZahtevZaOdmorController) Odobri(ctx echo.Context) error {
	return c.respond(ctx, true)
}

func (c *ZahtevZaOdmorController) Odbaci(ctx echo.Context) error {
	return c.respond(ctx, false)
}

func (c *ZahtevZaOdmorController) respond(ctx echo.Context, odobri bool) error {
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	var payload dto.OdgovorNaZahtevDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravno telo zahteva", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var zahtev *dto.ZahtevZaOdmorResponseDTO
	if odobri {
		zahtev, err = c.zahtevService.Odobri(ctx.Request().Context(), actor, id, payload)
	} else {
		zahtev, err = c.zahtevService.Odbaci(ctx.Request().Context(), actor, id, payload)
	}
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	message := "Zahtev je odobren"
	if !odobri {
		message = "Zahtev je odbačen"
	}
	return utils.SuccessResponse(ctx, zahtev, message, http.StatusOK)
}

func (c *ZahtevZaOdmorController) DeleteZahtev(ctx echo.Context) error {
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("neispravan format ID-a", err), c.logger)
	}

	if err := c.zahtevService.DeleteZahtev(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Zahtev je uspešno obrisan", http.StatusOK)
}
