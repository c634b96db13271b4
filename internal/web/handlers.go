package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-screener/internal/logger"
	"github.com/spigell/hh-screener/internal/scoring"
)

type scoreRequest struct {
	Reference  string             `json:"reference"`
	Candidates []scoring.Document `json:"candidates"`
	Threshold  *float64           `json:"threshold"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body: " + err.Error(),
		})
		return
	}

	threshold := s.config.Threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	runID := uuid.NewString()
	log := logger.WithRunFields(s.logger, runID, "")
	start := time.Now()

	ranking, err := scoring.ScoreDocuments(scoring.Document{Name: "reference", Text: req.Reference}, req.Candidates, threshold)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scoring.ErrNoCandidates) ||
			errors.Is(err, scoring.ErrEmptyVocabulary) ||
			errors.Is(err, scoring.ErrInvalidThreshold) {
			status = http.StatusUnprocessableEntity
		}

		log.Warn("scoring request failed", zap.Int("status", status), zap.Error(err))
		c.JSON(status, gin.H{
			"success": false,
			"run_id":  runID,
			"error":   err.Error(),
		})
		return
	}

	log.Info("scored candidates",
		zap.Int("candidates", ranking.Len()),
		zap.Int("shortlisted", len(ranking.Shortlisted())),
		zap.Duration("took", time.Since(start)),
	)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"run_id":    runID,
		"threshold": ranking.Threshold,
		"best":      ranking.Best,
		"entries":   ranking.Entries,
	})
}
