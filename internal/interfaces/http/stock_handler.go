package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// StockHandler maneja mutaciones de stock (movimientos y conteos) y las
// consultas de inventario e historial.
type StockHandler struct {
	mutator *stock.Mutator
	queries *usecase.InventoryQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(mutator *stock.Mutator, queries *usecase.InventoryQueryUseCase) *StockHandler {
	return &StockHandler{mutator: mutator, queries: queries}
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "material_id, kind (inbound|outbound), quantity, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	newQty, err := h.mutator.ApplyMovement(c.Context(), stock.MovementInput{
		MaterialID: in.MaterialID,
		Kind:       in.Kind,
		Quantity:   in.Quantity,
		UserID:     userID,
		Note:       in.Note,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		MaterialID:  in.MaterialID,
		NewQuantity: newQty,
	})
}

// RegisterCheck godoc
// @Summary      Registrar conteo físico (ajusta el stock al valor contado)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCheckRequest  true  "material_id, real_quantity"
// @Success      201   {object}  dto.CheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/checks [post]
func (h *StockHandler) RegisterCheck(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.mutator.ApplyCheck(c.Context(), stock.CheckInput{
		MaterialID:   in.MaterialID,
		RealQuantity: in.RealQuantity,
		UserID:       userID,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckResponse{
		MaterialID:       record.MaterialID,
		RealQuantity:     record.RealQuantity,
		RecordedQuantity: record.RecordedQuantity,
		Timestamp:        record.Timestamp,
	})
}

// ListInventory godoc
// @Summary      Consultar inventario actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre o proveedor"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.LedgerItemDTO
// @Router       /api/inventory [get]
func (h *StockHandler) ListInventory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	items, err := h.queries.ListInventory(c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "inventory": items})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "Desde (RFC3339 o 2006-01-02)"
// @Param        to        query  string  false  "Hasta"
// @Param        kind      query  string  false  "inbound | outbound"
// @Param        material  query  string  false  "Filtro por nombre de material"
// @Param        user      query  string  false  "Filtro por username"
// @Success      200  {array}  dto.MovementItemDTO
// @Router       /api/inventory/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.queries.ListMovements(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "movements": items})
}

// ListChecks godoc
// @Summary      Historial de conteos físicos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre de material"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.CheckItemDTO
// @Router       /api/inventory/checks [get]
func (h *StockHandler) ListChecks(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	items, err := h.queries.ListChecks(c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "checks": items})
}

// stockError mapea los errores del mutator a respuestas HTTP: cada tipo de
// error produce código y mensaje distinto para que el cliente pueda
// distinguir "stock insuficiente" de "base de datos no disponible".
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento inválido"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad inválida"})
	case errors.Is(err, domain.ErrMaterialNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material no encontrado"})
	case errors.Is(err, domain.ErrNoStockRecord):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_STOCK_RECORD", Message: "el material no tiene registro de stock"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrStorage):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "base de datos no disponible, la operación no se aplicó"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
