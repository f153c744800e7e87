package entity

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFinished  = errors.New("session is already finished")
	ErrWrongPhase       = errors.New("action not allowed in current phase")
	ErrAnswerRequired   = errors.New("current question must be answered first")
	ErrInvalidAnswer    = errors.New("answer value outside response scale")
	ErrBackNotAllowed   = errors.New("backward navigation is not allowed")
	ErrResultNotReady   = errors.New("session result not available")

	// Catalog errors
	ErrUnknownInstrument = errors.New("unknown instrument")

	// Record errors
	ErrRecordNotFound = errors.New("assessment record not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported report format")
)
