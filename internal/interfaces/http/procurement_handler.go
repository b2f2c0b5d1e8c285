package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/application/usecase"
)

// ProcurementHandler maneja solicitudes de compra.
type ProcurementHandler struct {
	uc *usecase.ProcurementUseCase
}

// NewProcurementHandler construye el handler de solicitudes de compra.
func NewProcurementHandler(uc *usecase.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// Create godoc
// @Summary      Originar solicitud de compra
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProcurementRequest  true  "proveedor destino y monto"
// @Success      201   {object}  dto.ProcurementResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/procurement-requests [post]
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcurementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SupplierID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id es requerido"})
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de compra
// @Tags         procurement
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de registros"
// @Param        offset  query  int  false  "registros a saltar"
// @Success      200  {array}  dto.ProcurementResponse
// @Router       /api/v1/procurement-requests [get]
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener solicitud de compra por ID
// @Tags         procurement
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "procurement request id"
// @Success      200  {object}  dto.ProcurementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/procurement-requests/{id} [get]
func (h *ProcurementHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Cambiar estado de una solicitud de compra
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                                 true  "procurement request id"
// @Param        body  body  dto.UpdateProcurementStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.ProcurementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/procurement-requests/{id}/status [put]
func (h *ProcurementHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateProcurementStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(CurrentUser(c), int64(id), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
