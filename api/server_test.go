package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurometrics/domain/compare"
	"neurometrics/internal"
	"neurometrics/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: "test"},
		Sweep:  config.SweepConfig{Concurrency: 2},
	}
	return NewServer(cfg, internal.NewLogger(internal.LogLevelError), nil)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleCompare(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/compare", map[string]interface{}{
		"group_a": []interface{}{10, 11, 9, 10, 12, 11, 10, 9},
		"group_b": []interface{}{20, 21, 19, 22, 20, 21, 19, 20},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result compare.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Significant)
	assert.Contains(t, result.Message, "T-test")
}

func TestHandleCompare_NullsAreMissing(t *testing.T) {
	s := newTestServer(t)

	withNulls := postJSON(t, s, "/api/compare", map[string]interface{}{
		"group_a": []interface{}{1, nil, 3, 8, 2, nil, 5},
		"group_b": []interface{}{nil, 2, 4, 9, 1, 7},
	})
	require.Equal(t, http.StatusOK, withNulls.Code)

	clean := postJSON(t, s, "/api/compare", map[string]interface{}{
		"group_a": []interface{}{1, 3, 8, 2, 5},
		"group_b": []interface{}{2, 4, 9, 1, 7},
	})
	require.Equal(t, http.StatusOK, clean.Code)

	assert.JSONEq(t, clean.Body.String(), withNulls.Body.String())
}

func TestHandleCompare_FatalComputation(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/compare", map[string]interface{}{
		"group_a": []interface{}{nil, nil},
		"group_b": []interface{}{1, 2, 3},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "comparison failed at")
}

func TestHandleCompare_BadRequest(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/compare", map[string]interface{}{
		"group_a": []interface{}{1, 2, 3},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSweep(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/sweep", map[string]interface{}{
		"source": "inline",
		"columns": map[string][]float64{
			"low":  {10, 11, 9, 10, 12, 11, 10, 9},
			"high": {20, 21, 19, 22, 20, 21, 19, 20},
			"mid":  {14, 15, 16, 15, 14, 16, 15, 14},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Source string `json:"source"`
		Pairs  []struct {
			ColumnA string          `json:"column_a"`
			ColumnB string          `json:"column_b"`
			Result  *compare.Result `json:"result"`
			Error   string          `json:"error"`
		} `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "inline", body.Source)
	require.Len(t, body.Pairs, 3)
	for _, p := range body.Pairs {
		assert.NotNil(t, p.Result)
	}
}

func TestHandleSweep_TooFewColumns(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/sweep", map[string]interface{}{
		"columns": map[string][]float64{"only": {1, 2, 3}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListComparisons_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/comparisons", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
