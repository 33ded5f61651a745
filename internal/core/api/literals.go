package api

import (
	"github.com/gin-gonic/gin"

	"github.com/solatis/wordgate/internal/types"
)

// addLiteralRequest validates administrator input for new blocked words.
// Action passes through types.Action.UnmarshalJSON, which rejects values
// outside the closed set before the handler runs.
type addLiteralRequest struct {
	Word   string       `json:"word" binding:"required,min=2,max=64"`
	Action types.Action `json:"action" binding:"required"`
}

// ListLiterals returns the cached literal rules (introspection only, not
// the matching hot path).
func (s *Service) ListLiterals(c *gin.Context) {
	respondOK(c, "bad words retrieved successfully", s.cache.ListLiterals())
}

// AddLiteral inserts a blocked word and reloads the literal rule set.
// Inserting an existing word is a store-level no-op; the reload still runs
// so cache and bundle always reflect the current table.
func (s *Service) AddLiteral(c *gin.Context) {
	var req addLiteralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := s.store.InsertLiteralRule(req.Word, req.Action); err != nil {
		s.respondStoreError(c, "insert literal rule", err)
		return
	}
	if err := s.refetchLiterals(); err != nil {
		s.respondReloadError(c, "reload literal rules", err)
		return
	}

	respondOK(c, "bad word added successfully", nil)
}

// DeleteLiteral removes a blocked word by its stored spelling. A missing
// word is a no-op failure (404) and triggers no reload: no rows changed.
func (s *Service) DeleteLiteral(c *gin.Context) {
	word := c.Param("word")

	if err := s.store.DeleteLiteralRuleByWord(word); err != nil {
		s.respondStoreError(c, "delete literal rule", err)
		return
	}
	if err := s.refetchLiterals(); err != nil {
		s.respondReloadError(c, "reload literal rules", err)
		return
	}

	respondOK(c, "bad word deleted successfully", nil)
}
