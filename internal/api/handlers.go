package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/ropa/arrear-calculator/internal/calculation"
	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/internal/output"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; an ArrearRequest is a handful of fields.
const maxBodyBytes = 1 << 16

// Handler serves the arrear API over one shared engine.
type Handler struct {
	engine  *calculation.ArrearEngine
	logger  *zap.Logger
	version string
	now     func() time.Time
}

// NewHandler creates a handler. A nil logger disables logging.
func NewHandler(engine *calculation.ArrearEngine, logger *zap.Logger, version string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, logger: logger, version: version, now: time.Now}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// ListGrades lists the grade pays with matrix sizes.
func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades := make([]GradeDTO, 0, len(h.engine.Matrices))
	for _, gp := range h.engine.Matrices.GradePays() {
		m := h.engine.Matrices[gp]
		grades = append(grades, GradeDTO{
			GradePay:  gp,
			Levels:    len(m),
			MinBasic:  m[0].OldBasic.IntPart(),
			MaxBasic:  m[m.LastStep()].OldBasic.IntPart(),
			Promotion: gp == h.engine.Rules.PromotionGradePay,
		})
	}
	writeJSON(w, http.StatusOK, grades)
}

// GetPayMatrix returns the matrix of one grade pay.
func (h *Handler) GetPayMatrix(w http.ResponseWriter, r *http.Request) {
	gp, matrix, ok := h.matrixFromPath(w, r)
	if !ok {
		return
	}
	levels := make([]PayLevelDTO, len(matrix))
	for i, s := range matrix {
		levels[i] = PayLevelDTO{Level: i + 1, OldBasic: s.OldBasic.IntPart(), NewBasic: s.NewBasic.IntPart()}
	}
	writeJSON(w, http.StatusOK, PayMatrixDTO{GradePay: gp, Levels: levels})
}

// GetPayMatrixImage returns the matrix of one grade pay as a PNG attachment.
func (h *Handler) GetPayMatrixImage(w http.ResponseWriter, r *http.Request) {
	gp, _, ok := h.matrixFromPath(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.PayMatrixImageName(gp)))
	if err := output.RenderPayMatrixPNG(gp, w); err != nil {
		h.logger.Error("render pay matrix", zap.Int("grade_pay", int(gp)), zap.Error(err))
	}
}

// ListDAHistory returns the DA orders in effect order.
func (h *Handler) ListDAHistory(w http.ResponseWriter, r *http.Request) {
	entries := make([]DAEntryDTO, len(h.engine.DAHistory))
	for i, e := range h.engine.DAHistory {
		entries[i] = DAEntryDTO{
			EffectiveFrom: e.EffectiveDate.Format("2006-01-02"),
			Rate:          e.Rate.String(),
			Percent:       calculation.DAPercent(e.Rate),
		}
	}
	writeJSON(w, http.StatusOK, entries)
}

// ProjectArrears runs a projection for the posted request.
func (h *Handler) ProjectArrears(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	result, err := h.engine.Project(req)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ArrearResponse{Result: result, Summary: calculation.Summarize(result)})
}

// ExportArrears runs a projection and returns it as a file in the requested format.
func (h *Handler) ExportArrears(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, "UnsupportedFormat", fmt.Sprintf("%v: %q", output.ErrUnsupportedFormat, format))
		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	sp, err := h.engine.RunScenario(&domain.Scenario{Name: "Arrear Statement", Request: *req})
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	report := &domain.ArrearReport{GeneratedAt: h.now(), Scenarios: []domain.ScenarioProjection{*sp}}
	data, err := f.Format(report)
	if err != nil {
		h.logger.Error("format export", zap.String("format", f.Name()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "ExportFailed", "failed to render report")
		return
	}

	w.Header().Set("Content-Type", output.ContentTypeFor(f.Name()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.ReportFileName(report, output.ExtensionFor(f.Name()))))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) matrixFromPath(w http.ResponseWriter, r *http.Request) (domain.GradePay, domain.PayMatrix, bool) {
	raw := chi.URLParam(r, "gradePay")
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", fmt.Sprintf("invalid grade pay %q", raw))
		return 0, nil, false
	}
	gp := domain.GradePay(n)
	matrix, err := h.engine.Matrices.Matrix(gp)
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrorKind(err), err.Error())
		return 0, nil, false
	}
	return gp, matrix, true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		writeError(w, http.StatusUnprocessableEntity, domain.ErrorKind(err), err.Error())
		return
	}
	h.logger.Error("projection failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "InternalError", "projection failed")
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*domain.ArrearRequest, bool) {
	var req domain.ArrearRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid request body: "+err.Error())
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Error: kind, Message: message})
}
