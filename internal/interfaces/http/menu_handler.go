package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain"
)

// MenuHandler maneja las peticiones HTTP del menú del día.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Crear menú del día
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuRequest  true  "Menú con sus packs"
// @Success      201   {object}  dto.MenuResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menus [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrMenuAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MENU_EXISTS", Message: "la sucursal ya tiene menú para esa fecha"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !fieldErrs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fieldErrs})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Publish godoc
// @Summary      Publicar el menú (visible para clientes)
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del menú"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/publish [post]
func (h *MenuHandler) Publish(c *fiber.Ctx) error {
	out, err := h.uc.Publish(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener menú por ID
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del menú"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Menú del día vigente de una sucursal
// @Tags         menus
// @Produce      json
// @Param        restaurant_id  query  string  true  "ID de la sucursal"
// @Success      200            {object}  dto.MenuResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Router       /api/menus/today [get]
func (h *MenuHandler) Today(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: "restaurant_id es requerido"})
	}
	out, err := h.uc.Today(c.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sucursal no tiene menú hoy"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar menús de una sucursal
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  true   "ID de la sucursal"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200            {object}  dto.MenuListResponse
// @Router       /api/menus [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: "restaurant_id es requerido"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListByRestaurant(c.Context(), restaurantID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar menú (requiere confirmación)
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del menú"
// @Param        confirm  query  string  false  "Debe ser true para ejecutar"
// @Success      200      {object}  dto.MessageResponse
// @Failure      409      {object}  dto.ConfirmRequiredResponse
// @Router       /api/menus/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return confirmRequired(c, "el menú del día")
	}
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "menú eliminado"})
}
