package service

import "errors"

// Request errors; handlers answer these with 400.
var (
	ErrInvalidAnalysisType = errors.New("invalid analysis type")
	ErrInvalidDateRange    = errors.New("start_date must not be after end_date")
	ErrInvalidImport       = errors.New("invalid import")
)

// IsBadRequest reports whether err was caused by the caller's input.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidAnalysisType) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidImport)
}
