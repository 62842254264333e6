package airating

import "github.com/DUSHIMEDanPaul/ai-rating/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput  = domain.ErrInvalidInput
	ErrUpstreamFetch = domain.ErrUpstreamFetch
	ErrExtraction    = domain.ErrExtraction
	ErrStore         = domain.ErrStore
	ErrCompletion    = domain.ErrCompletion
)
