// Package api exposes the group comparator as a JSON HTTP API.
package api

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"neurometrics/adapters/excel"
	"neurometrics/domain/compare"
	"neurometrics/internal"
	"neurometrics/internal/config"
	"neurometrics/internal/sweep"
	"neurometrics/models"
	"neurometrics/ports"
)

// Server wires the comparator behind a gin router.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *internal.Logger
	repo   ports.ComparisonRepository // nil when history is disabled
}

// NewServer creates the API server. repo may be nil.
func NewServer(cfg *config.Config, logger *internal.Logger, repo ports.ComparisonRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router: gin.Default(),
		cfg:    cfg,
		logger: logger,
		repo:   repo,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := s.router.Group("/api")
	{
		apiGroup.POST("/compare", s.handleCompare)
		apiGroup.POST("/sweep", s.handleSweep)
		apiGroup.GET("/comparisons", s.handleListComparisons)
	}
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Server.Port)
}

// Router exposes the underlying handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// compareRequest carries the two samples. Null entries are treated as
// missing observations, matching the comparator's NaN sanitization.
type compareRequest struct {
	GroupA []*float64 `json:"group_a" binding:"required"`
	GroupB []*float64 `json:"group_b" binding:"required"`
	LabelA string     `json:"label_a"`
	LabelB string     `json:"label_b"`
}

func (s *Server) handleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	a := toSample(req.GroupA)
	b := toSample(req.GroupB)

	result, err := compare.Compare(a, b)
	if err != nil {
		// Fatal computation failures surface the message verbatim.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.recordComparison(c, req.LabelA, req.LabelB, a, b, result)
	c.JSON(http.StatusOK, result)
}

type sweepRequest struct {
	Source  string               `json:"source"`
	Columns map[string][]float64 `json:"columns" binding:"required"`
}

func (s *Server) handleSweep(c *gin.Context) {
	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Columns) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sweep requires at least 2 columns"})
		return
	}

	headers := make([]string, 0, len(req.Columns))
	for name := range req.Columns {
		headers = append(headers, name)
	}
	sort.Strings(headers)

	ds := &excel.Dataset{Headers: headers, Columns: req.Columns}
	results := sweep.Run(c.Request.Context(), ds, s.cfg.Sweep.Concurrency)

	c.JSON(http.StatusOK, gin.H{"source": req.Source, "pairs": results})
}

func (s *Server) handleListComparisons(c *gin.Context) {
	if s.repo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comparison history is not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := s.repo.ListComparisons(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list comparisons: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comparison history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparisons": records})
}

// recordComparison writes history best-effort; a storage failure never fails
// the comparison itself.
func (s *Server) recordComparison(c *gin.Context, labelA, labelB string, a, b []float64, result compare.Result) {
	if s.repo == nil {
		return
	}
	if labelA == "" {
		labelA = "Group A"
	}
	if labelB == "" {
		labelB = "Group B"
	}

	record := models.NewComparisonRecord(labelA, labelB, len(a), len(b), result)
	if err := s.repo.SaveComparison(c.Request.Context(), record); err != nil {
		s.logger.Warn("failed to record comparison %s: %v", record.ID, err)
	}
}

func toSample(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}
