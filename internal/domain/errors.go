package domain

import "errors"

// Validation failures raised before a projection starts. Adapters match them with errors.Is.
var (
	ErrInvalidInitialBasic   = errors.New("initial basic pay not found in grade pay matrix")
	ErrInvalidDateRange      = errors.New("invalid month")
	ErrUnknownGradePay       = errors.New("unknown grade pay")
	ErrInvalidIncrementMonth = errors.New("increment month must be between 1 and 12")
)

// IsValidationError reports whether err is one of the request validation kinds
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInitialBasic) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrUnknownGradePay) ||
		errors.Is(err, ErrInvalidIncrementMonth)
}

// ErrorKind returns a stable identifier for a validation error, or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInitialBasic):
		return "InvalidInitialBasic"
	case errors.Is(err, ErrInvalidDateRange):
		return "InvalidDateRange"
	case errors.Is(err, ErrUnknownGradePay):
		return "UnknownGradePay"
	case errors.Is(err, ErrInvalidIncrementMonth):
		return "InvalidIncrementMonth"
	}
	return ""
}
