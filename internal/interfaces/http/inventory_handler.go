package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/application/inventory"
)

// InventoryHandler maneja registro y consulta de movimientos de stock.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.UseCase
	log      zerolog.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, query *inventory.UseCase, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{register: register, query: query, log: log}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  "in" suma, "out" resta (rechaza si no alcanza), "adjustment" fija la cantidad.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.register.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      Movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        product_id  path   int  true   "ID del producto"
// @Param        limit       query  int  false  "Límite"  default(50)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/inventory/movements/{product_id} [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return invalidID(c)
	}
	out, err := h.query.ListByProduct(c.Context(), productID, c.QueryInt("limit", 0))
	if err != nil {
		h.log.Error().Err(err).Int64("product_id", productID).Msg("listar movimientos")
		return c.JSON([]dto.StockMovementResponse{})
	}
	return c.JSON(out)
}
