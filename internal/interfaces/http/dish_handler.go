package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain"
)

// DishHandler maneja las peticiones HTTP del catálogo de platos e insumos.
type DishHandler struct {
	uc *usecase.DishUseCase
}

// NewDishHandler construye el handler.
func NewDishHandler(uc *usecase.DishUseCase) *DishHandler {
	return &DishHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plato
// @Tags         dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDishRequest  true  "Datos del plato"
// @Success      201   {object}  dto.DishResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/dishes [post]
func (h *DishHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !fieldErrs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fieldErrs})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener plato por ID
// @Tags         dishes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plato"
// @Success      200  {object}  dto.DishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dishes/{id} [get]
func (h *DishHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar platos
// @Tags         dishes
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "Filtrar por sucursal"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200            {object}  dto.DishListResponse
// @Router       /api/dishes [get]
func (h *DishHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	var (
		out *dto.DishListResponse
		err error
	)
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		out, err = h.uc.ListByRestaurant(c.Context(), restaurantID, page.Limit, page.Offset)
	} else {
		out, err = h.uc.List(c.Context(), page.Limit, page.Offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plato
// @Tags         dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plato"
// @Param        body  body  dto.UpdateDishRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DishResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dishes/{id} [put]
func (h *DishHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plato (requiere confirmación)
// @Tags         dishes
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del plato"
// @Param        confirm  query  string  false  "Debe ser true para ejecutar"
// @Success      200      {object}  dto.MessageResponse
// @Failure      409      {object}  dto.ConfirmRequiredResponse
// @Router       /api/dishes/{id} [delete]
func (h *DishHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return confirmRequired(c, "el plato")
	}
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "plato eliminado"})
}

// CreateIngredient godoc
// @Summary      Crear insumo
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *DishHandler) CreateIngredient(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateIngredient(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del insumo inválidos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el insumo ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListIngredients godoc
// @Summary      Listar insumos
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.IngredientResponse
// @Router       /api/ingredients [get]
func (h *DishHandler) ListIngredients(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.ListIngredients(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
