package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// ReportPDFGenerator puerto de generación del PDF del cierre diario.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report, restaurant *entity.Restaurant) ([]byte, error)
}

// ReportPDFUseCase genera la versión imprimible (PDF) de un cierre diario.
type ReportPDFUseCase struct {
	reports     repository.ReportRepository
	restaurants repository.RestaurantRepository
	generator   ReportPDFGenerator
}

// NewReportPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewReportPDFUseCase(reports repository.ReportRepository, restaurants repository.RestaurantRepository, generator ReportPDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{reports: reports, restaurants: restaurants, generator: generator}
}

// Download recupera el cierre y su sucursal y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el cierre no existe.
func (uc *ReportPDFUseCase) Download(ctx context.Context, reportID string) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cierre: %w", err)
	}
	if rep == nil {
		return nil, "", domain.ErrNotFound
	}

	rest, err := uc.restaurants.GetByID(ctx, rep.RestaurantID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener sucursal: %w", err)
	}
	if rest == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReportPDF(ctx, rep, rest)
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf("cierre_%s_%s.pdf", rest.Name, rep.ReportDate.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
