package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ArrearEngine projects pay arrears over the static scheme tables. It holds no per-call
// state, so one engine may serve concurrent callers.
type ArrearEngine struct {
	Matrices  domain.PayMatrixTable
	DAHistory domain.DAHistory
	Rules     domain.SchemeRules
	Logger    Logger
}

// NewArrearEngine creates an engine over the ROPA-2020 tables
func NewArrearEngine() *ArrearEngine {
	return &ArrearEngine{
		Matrices:  domain.RevisedPayMatrices,
		DAHistory: domain.RevisedDAHistory,
		Rules:     domain.RevisionRules,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ae *ArrearEngine) SetLogger(l Logger) {
	if l == nil {
		ae.Logger = NopLogger{}
		return
	}
	ae.Logger = l
}

// projectionPlan is a request after validation
type projectionPlan struct {
	gradePay       domain.GradePay
	step           int
	incrementMonth int
	end            dateutil.YearMonth
	promotion      *dateutil.YearMonth
}

// ValidateRequest checks a request without running the projection
func (ae *ArrearEngine) ValidateRequest(req *domain.ArrearRequest) error {
	_, err := ae.plan(req)
	return err
}

func (ae *ArrearEngine) plan(req *domain.ArrearRequest) (*projectionPlan, error) {
	if req == nil {
		return nil, fmt.Errorf("arrear request is required")
	}

	matrix, err := ae.Matrices.Matrix(req.InitialGradePay)
	if err != nil {
		return nil, err
	}

	if req.IncrementMonth < int(time.January) || req.IncrementMonth > int(time.December) {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidIncrementMonth, req.IncrementMonth)
	}

	end, err := dateutil.ParseYearMonth(req.ArrearUpto)
	if err != nil {
		return nil, fmt.Errorf("%w: arrear_upto: %v", domain.ErrInvalidDateRange, err)
	}

	var promotion *dateutil.YearMonth
	if strings.TrimSpace(req.PromotionMonth) != "" {
		pm, err := dateutil.ParseYearMonth(req.PromotionMonth)
		if err != nil {
			return nil, fmt.Errorf("%w: promotion_month: %v", domain.ErrInvalidDateRange, err)
		}
		promotion = &pm
	}

	step, ok := matrix.StepForBasic(decimal.NewFromInt(req.InitialBasic))
	if !ok {
		return nil, fmt.Errorf("%w: %d is not a level of GP %d", domain.ErrInvalidInitialBasic, req.InitialBasic, req.InitialGradePay)
	}

	if promotion != nil {
		if _, err := ae.Matrices.Matrix(ae.Rules.PromotionGradePay); err != nil {
			return nil, fmt.Errorf("promotion grade: %w", err)
		}
	}

	return &projectionPlan{
		gradePay:       req.InitialGradePay,
		step:           step,
		incrementMonth: req.IncrementMonth,
		end:            end,
		promotion:      promotion,
	}, nil
}

// Project produces the month-by-month arrear statement from the scheme epoch through
// req.ArrearUpto inclusive. Every validation error is returned before any month is
// simulated; an end month before the epoch yields an empty statement.
func (ae *ArrearEngine) Project(req *domain.ArrearRequest) (*domain.ProjectionResult, error) {
	plan, err := ae.plan(req)
	if err != nil {
		return nil, err
	}

	records := ae.walk(plan)

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Arrear)
	}

	ae.Logger.Infof("projected GP %d basic %d through %s: %d months, total arrear %s",
		req.InitialGradePay, req.InitialBasic, plan.end, len(records), total.StringFixed(0))

	return &domain.ProjectionResult{
		Request:     *req,
		Records:     records,
		TotalArrear: total,
	}, nil
}

// RunScenario projects a single named scenario and summarizes it
func (ae *ArrearEngine) RunScenario(scenario *domain.Scenario) (*domain.ScenarioProjection, error) {
	result, err := ae.Project(&scenario.Request)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return &domain.ScenarioProjection{
		Name:    scenario.Name,
		Result:  result,
		Summary: Summarize(result),
	}, nil
}

// RunScenarios projects every scenario in the configuration into one report.
// The first failing scenario aborts the run.
func (ae *ArrearEngine) RunScenarios(config *domain.Configuration) (*domain.ArrearReport, error) {
	report := &domain.ArrearReport{
		GeneratedAt: nowFunc(),
		Scenarios:   make([]domain.ScenarioProjection, 0, len(config.Scenarios)),
	}
	for i := range config.Scenarios {
		sp, err := ae.RunScenario(&config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		report.Scenarios = append(report.Scenarios, *sp)
	}
	return report, nil
}
