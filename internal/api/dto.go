package api

import (
	"github.com/ropa/arrear-calculator/internal/domain"
)

// GradeDTO describes one grade pay and the size of its matrix.
type GradeDTO struct {
	GradePay  domain.GradePay `json:"grade_pay"`
	Levels    int             `json:"levels"`
	MinBasic  int64           `json:"min_basic"`
	MaxBasic  int64           `json:"max_basic"`
	Promotion bool            `json:"promotion_target"`
}

// PayLevelDTO is one row of a pay matrix, levels counted from 1.
type PayLevelDTO struct {
	Level    int   `json:"level"`
	OldBasic int64 `json:"old_basic"`
	NewBasic int64 `json:"new_basic"`
}

// PayMatrixDTO is the full matrix for a grade pay.
type PayMatrixDTO struct {
	GradePay domain.GradePay `json:"grade_pay"`
	Levels   []PayLevelDTO   `json:"levels"`
}

// DAEntryDTO is one DA order.
type DAEntryDTO struct {
	EffectiveFrom string `json:"effective_from"`
	Rate          string `json:"rate"`
	Percent       int64  `json:"percent"`
}

// ArrearResponse is the result of POST /api/arrears.
type ArrearResponse struct {
	Result  *domain.ProjectionResult `json:"result"`
	Summary domain.ProjectionSummary `json:"summary"`
}

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
