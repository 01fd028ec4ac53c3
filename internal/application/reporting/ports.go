package reporting

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// SummaryPDFGenerator puerto para la versión imprimible del resumen de ciudad.
// Implementado con Maroto en infrastructure/pdf.
type SummaryPDFGenerator interface {
	GenerateCitySummaryPDF(ctx context.Context, city *entity.City, summary *dto.CitySummaryResponse) ([]byte, error)
}
