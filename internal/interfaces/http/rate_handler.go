package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/rates"
)

// RateHandler expone la tasa de cambio BCV cacheada.
type RateHandler struct {
	cache *rates.Cache
}

// NewRateHandler construye el handler.
func NewRateHandler(cache *rates.Cache) *RateHandler {
	return &RateHandler{cache: cache}
}

// Get godoc
// @Summary      Tasa de cambio vigente (cacheada 1h, fallback a valor vencido)
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RateResponse
// @Router       /api/rates [get]
func (h *RateHandler) Get(c *fiber.Ctx) error {
	quote, _ := h.cache.Rate(c.Context())
	// El error del fetch no corta la respuesta: Stale ya lo señala y una
	// tasa vieja sigue siendo útil para la vista.
	return c.JSON(toRateResponse(quote))
}

// Refresh godoc
// @Summary      Invalidar el caché y repetir el fetch de la tasa
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RateResponse
// @Router       /api/rates/refresh [post]
func (h *RateHandler) Refresh(c *fiber.Ctx) error {
	quote, _ := h.cache.Refresh(c.Context())
	return c.JSON(toRateResponse(quote))
}

func toRateResponse(q rates.Quote) dto.RateResponse {
	return dto.RateResponse{
		Rate:      q.Rate,
		FetchedAt: q.FetchedAt,
		Stale:     q.Stale,
		Display:   rates.FormatBs(q.Rate),
	}
}
