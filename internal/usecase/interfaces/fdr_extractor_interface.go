package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// IFDRExtractor abstracts the external model provider (e.g. Gemini) used to
// pull structured fields out of OCR'd fixed-deposit receipts.
//
// Extraction is best-effort assistance for data entry; a failure here never
// blocks creating an EMD by hand.
type IFDRExtractor interface {
	ExtractFDRDetails(ctx context.Context, ocrText string) (entities.FDRDetails, error)
}
