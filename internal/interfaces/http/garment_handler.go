package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
)

// GarmentHandler maneja las peticiones HTTP para Garment (protegido).
type GarmentHandler struct {
	uc *usecase.GarmentService
}

// NewGarmentHandler construye el handler.
func NewGarmentHandler(uc *usecase.GarmentService) *GarmentHandler {
	return &GarmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear prenda
// @Tags         garments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveGarmentRequest  true  "Datos de la prenda"
// @Success      201   {object}  dto.GarmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/garments [post]
func (h *GarmentHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveGarmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), GetUID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar prendas (admin ve todas, user solo las propias)
// @Tags         garments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GarmentResponse
// @Router       /api/garments [get]
func (h *GarmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener prenda por ID
// @Tags         garments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la prenda"
// @Success      200  {object}  dto.GarmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/garments/{id} [get]
func (h *GarmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar prenda (merge parcial)
// @Tags         garments
// @Security     Bearer
// @Accept       json
// @Param        id    path  string          true  "ID de la prenda"
// @Param        body  body  map[string]any  true  "Campos a mezclar"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/garments/{id} [patch]
func (h *GarmentHandler) Update(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetUID(c), GetRole(c), c.Params("id"), fields); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar prenda
// @Tags         garments
// @Security     Bearer
// @Param        id  path  string  true  "ID de la prenda"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/garments/{id} [delete]
func (h *GarmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetUID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
