package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
)

// EventHandler maneja las peticiones HTTP para CalendarEvent (protegido).
type EventHandler struct {
	uc *usecase.EventService
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventService) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create crea un evento del calendario.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), GetUID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los eventos visibles para el llamador.
func (h *EventHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un evento por ID.
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
	}
	return c.JSON(out)
}

// Update mezcla campos parciales sobre el evento.
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetUID(c), GetRole(c), c.Params("id"), fields); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina el evento.
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetUID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
