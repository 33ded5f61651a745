package api

import (
	"database/sql"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solatis/wordgate/internal/types"
)

// addRegexRequest validates administrator input for new regex rules.
type addRegexRequest struct {
	Pattern     string       `json:"pattern" binding:"required,min=1,max=512"`
	Description string       `json:"description" binding:"omitempty,max=256"`
	Action      types.Action `json:"action" binding:"required"`
}

// ListRegexes returns the cached regex rules in match-priority order.
func (s *Service) ListRegexes(c *gin.Context) {
	respondOK(c, "regex rules retrieved successfully", s.cache.ListRegexes())
}

// AddRegex inserts a regex rule and reloads the regex rule set.
// The pattern is compiled here, before it ever reaches the store: a bad
// pattern is a 400 for this caller, never a poisoned row that fails some
// later reload.
func (s *Service) AddRegex(c *gin.Context) {
	var req addRegexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if _, err := regexp.Compile(req.Pattern); err != nil {
		respondValidation(c, types.ErrInvalidPattern)
		return
	}

	desc := sql.NullString{String: req.Description, Valid: req.Description != ""}
	if err := s.store.InsertRegexRule(req.Pattern, desc, req.Action); err != nil {
		s.respondStoreError(c, "insert regex rule", err)
		return
	}
	if err := s.refetchRegexes(); err != nil {
		s.respondReloadError(c, "reload regex rules", err)
		return
	}

	respondOK(c, "regex rule added successfully", nil)
}

// DeleteRegex removes a regex rule by id. A missing id is a no-op failure
// (404) and triggers no reload.
func (s *Service) DeleteRegex(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, err)
		return
	}

	if err := s.store.DeleteRegexRuleByID(id); err != nil {
		s.respondStoreError(c, "delete regex rule", err)
		return
	}
	if err := s.refetchRegexes(); err != nil {
		s.respondReloadError(c, "reload regex rules", err)
		return
	}

	respondOK(c, "regex rule deleted successfully", nil)
}
