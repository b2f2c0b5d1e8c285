package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/application/usecase"
)

// DeliveryHandler maneja notas de entrega.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler de notas de entrega.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create godoc
// @Summary      Originar nota de entrega
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDeliveryNoteRequest  true  "proveedor, solicitud asociada y monto"
// @Success      201   {object}  dto.DeliveryNoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/delivery-notes [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SupplierID <= 0 || in.ProcurementRequestID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id y procurement_request_id son requeridos"})
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar notas de entrega
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de registros"
// @Param        offset  query  int  false  "registros a saltar"
// @Success      200  {array}  dto.DeliveryNoteResponse
// @Router       /api/v1/delivery-notes [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(CurrentUser(c), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota de entrega por ID
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "delivery note id"
// @Success      200  {object}  dto.DeliveryNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/delivery-notes/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(CurrentUser(c), int64(id))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una nota de entrega
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                              true  "delivery note id"
// @Param        body  body  dto.UpdateDeliveryStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.DeliveryNoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/delivery-notes/{id}/status [put]
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateDeliveryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(CurrentUser(c), int64(id), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
