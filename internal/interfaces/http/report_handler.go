package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain"
)

// ReportHandler maneja los cierres diarios y su descarga en PDF.
type ReportHandler struct {
	uc    *usecase.ReportUseCase
	pdfUC *usecase.ReportPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, pdfUC *usecase.ReportPDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdfUC: pdfUC}
}

// Generate godoc
// @Summary      Generar el cierre diario de una sucursal
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "Sucursal y fecha"
// @Success      201   {object}  dto.ReportResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" {
		in.RestaurantID = GetRestaurantID(c)
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal o fecha inválidas"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REPORT_EXISTS", Message: "la fecha ya tiene cierre generado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cierre por ID
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cierre"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cierre no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Histórico de cierres de una sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  true   "ID de la sucursal"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200            {object}  dto.ReportListResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		restaurantID = GetRestaurantID(c)
	}
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

// DownloadPDF godoc
// @Summary      Descargar el cierre en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del cierre"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.Download(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cierre no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Eliminar cierre (requiere confirmación)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del cierre"
// @Param        confirm  query  string  false  "Debe ser true para ejecutar"
// @Success      200      {object}  dto.MessageResponse
// @Failure      409      {object}  dto.ConfirmRequiredResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return confirmRequired(c, "el cierre diario")
	}
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cierre no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "cierre eliminado"})
}
