package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solatis/wordgate/internal/metrics"
)

// moderateRequest is the moderation input. Content length limits mirror
// types.MaxContentLength.
type moderateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// Moderate classifies a comment against the currently published rule sets.
// Pure read path: no store access, no reload interaction. A well-formed
// request cannot fail; the default decision is APPROVED.
func (s *Service) Moderate(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	start := time.Now()
	decision := s.engine.Decide(req.Content)

	status := string(decision.Status)
	metrics.DecisionsTotal.WithLabelValues(status).Inc()
	metrics.ModerationDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	respondOK(c, "comment moderated successfully", decision)
}
