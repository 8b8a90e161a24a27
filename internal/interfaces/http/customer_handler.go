package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/application/usecase"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

// CustomerHandler maneja las peticiones HTTP para Customer.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log zerolog.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes activos
// @Tags         customers
// @Produce      json
// @Param        search  query  string  false  "Substring sobre nombre/email/teléfono"
// @Param        type    query  string  false  "Tipo de cliente"
// @Param        city    query  string  false  "Ciudad"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	f := repository.CustomerFilter{
		Search:       c.Query("search"),
		CustomerType: c.Query("type"),
		City:         c.Query("city"),
		Limit:        c.QueryInt("limit", 0),
		Offset:       c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.JSON([]dto.CustomerResponse{})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar cliente (borrado lógico)
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente desactivado"})
}

// Search godoc
// @Summary      Buscar clientes por término
// @Tags         customers
// @Produce      json
// @Param        q  query  string  true  "Término de búsqueda (mínimo 2 caracteres)"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/search [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		h.log.Error().Err(err).Msg("buscar clientes")
		return c.JSON([]dto.CustomerResponse{})
	}
	return c.JSON(out)
}

// Types godoc
// @Summary      Conteo de clientes activos por tipo
// @Tags         customers
// @Produce      json
// @Success      200  {array}  dto.CustomerTypeCountResponse
// @Router       /api/customers/types [get]
func (h *CustomerHandler) Types(c *fiber.Ctx) error {
	out, err := h.uc.Types(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("tipos de cliente")
		return c.JSON([]dto.CustomerTypeCountResponse{})
	}
	return c.JSON(out)
}

// Top godoc
// @Summary      Clientes con mayores ingresos acumulados
// @Tags         customers
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.TopCustomerResponse
// @Router       /api/customers/top [get]
func (h *CustomerHandler) Top(c *fiber.Ctx) error {
	out, err := h.uc.Top(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		h.log.Error().Err(err).Msg("top clientes")
		return c.JSON([]dto.TopCustomerResponse{})
	}
	return c.JSON(out)
}

// Inactive godoc
// @Summary      Clientes activos sin compras recientes
// @Tags         customers
// @Produce      json
// @Param        days  query  int  false  "Días sin comprar"  default(90)
// @Success      200  {array}  dto.InactiveCustomerResponse
// @Router       /api/customers/inactive [get]
func (h *CustomerHandler) Inactive(c *fiber.Ctx) error {
	out, err := h.uc.Inactive(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		h.log.Error().Err(err).Msg("clientes inactivos")
		return c.JSON([]dto.InactiveCustomerResponse{})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Resumen de compras de un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/stats [get]
func (h *CustomerHandler) Stats(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.Stats(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PurchaseHistory godoc
// @Summary      Últimas compras de un cliente
// @Tags         customers
// @Produce      json
// @Param        id     path   int  true   "ID del cliente"
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.PurchaseHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/history [get]
func (h *CustomerHandler) PurchaseHistory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.PurchaseHistory(c.Context(), id, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
