package api

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/ropa/arrear-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(calculation.NewArrearEngine(), nil, "test")
	h.now = func() time.Time { return time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC) }
	return NewRouter(h, nil)
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	return resp
}

const promotedBody = `{"initial_grade_pay":6600,"initial_basic":73700,"increment_month":7,"arrear_upto":"202112","promotion_month":"202101"}`

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, rec.Body.String())
}

func TestListGrades(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/grades", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var grades []GradeDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grades))
	require.Len(t, grades, 2)
	assert.EqualValues(t, 6600, grades[0].GradePay)
	assert.False(t, grades[0].Promotion)
	assert.EqualValues(t, 7600, grades[1].GradePay)
	assert.True(t, grades[1].Promotion)
	assert.Equal(t, int64(73700), grades[0].MinBasic)
}

func TestGetPayMatrix(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/pay-matrix/6600", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var matrix PayMatrixDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matrix))
	require.NotEmpty(t, matrix.Levels)
	assert.Equal(t, PayLevelDTO{Level: 1, OldBasic: 73700, NewBasic: 76500}, matrix.Levels[0])
	assert.Equal(t, PayLevelDTO{Level: 2, OldBasic: 76000, NewBasic: 78800}, matrix.Levels[1])

	rec = do(t, router, http.MethodGet, "/api/pay-matrix/4800", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UnknownGradePay", decodeError(t, rec).Error)

	rec = do(t, router, http.MethodGet, "/api/pay-matrix/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPayMatrixImage(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/pay-matrix/7600/image", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pay_matrix_gp_7600.png")
	_, err := png.Decode(rec.Body)
	require.NoError(t, err)

	rec = do(t, router, http.MethodGet, "/api/pay-matrix/5400/image", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDAHistory(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/da-history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []DAEntryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 6)
	assert.Equal(t, DAEntryDTO{EffectiveFrom: "2020-01-01", Rate: "0.1", Percent: 10}, entries[0])
	assert.Equal(t, int64(28), entries[5].Percent)
}

func TestProjectArrears(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/arrears", promotedBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Result struct {
			Records []struct {
				Label    string `json:"label"`
				GradePay int    `json:"grade_pay"`
				Arrear   string `json:"monthly_arrear"`
			} `json:"records"`
			TotalArrear string `json:"total_arrear"`
		} `json:"result"`
		Summary struct {
			Months        int `json:"months"`
			FinalGradePay int `json:"final_grade_pay"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "116286", resp.Result.TotalArrear)
	require.Len(t, resp.Result.Records, 24)
	assert.Equal(t, "Jan-2021", resp.Result.Records[12].Label)
	assert.Equal(t, 7600, resp.Result.Records[12].GradePay)
	assert.Equal(t, "6554", resp.Result.Records[12].Arrear)
	assert.Equal(t, 24, resp.Summary.Months)
	assert.Equal(t, 7600, resp.Summary.FinalGradePay)
}

func TestProjectArrearsErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"Malformed JSON", `{"initial_grade_pay":`, http.StatusBadRequest, "BadRequest"},
		{"Unknown field", `{"grade":6600}`, http.StatusBadRequest, "BadRequest"},
		{"Basic not in matrix", `{"initial_grade_pay":6600,"initial_basic":99999,"increment_month":7,"arrear_upto":"202602"}`, http.StatusUnprocessableEntity, "InvalidInitialBasic"},
		{"Unknown grade", `{"initial_grade_pay":4800,"initial_basic":73700,"increment_month":7,"arrear_upto":"202602"}`, http.StatusUnprocessableEntity, "UnknownGradePay"},
		{"Bad end month", `{"initial_grade_pay":6600,"initial_basic":73700,"increment_month":7,"arrear_upto":"2026"}`, http.StatusUnprocessableEntity, "InvalidDateRange"},
		{"Bad increment month", `{"initial_grade_pay":6600,"initial_basic":73700,"increment_month":0,"arrear_upto":"202602"}`, http.StatusUnprocessableEntity, "InvalidIncrementMonth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/arrears", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.kind, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestExportArrearsXLSX(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/arrears/export?format=excel", promotedBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ropa_arrear_report_20260301_090000.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Arrear Report")
	require.NoError(t, err)
	assert.Len(t, rows, 26)
}

func TestExportArrearsCSV(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/arrears/export?format=csv-detailed", promotedBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 25)
}

func TestExportArrearsErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/arrears/export?format=pdf", promotedBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UnsupportedFormat", decodeError(t, rec).Error)

	rec = do(t, router, http.MethodPost, "/api/arrears/export?format=json",
		`{"initial_grade_pay":6600,"initial_basic":1,"increment_month":7,"arrear_upto":"202602"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/arrears", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
