package advance

import "errors"

// Advance domain errors
var (
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrAlreadyDeducted = errors.New("advance is already fully deducted")
	ErrQuotaExceeded   = errors.New("advance limit for the current plan reached")
)
