package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solatis/wordgate/internal/types"
)

var errInvalidSettingKey = errors.New("setting key must match ^[a-z0-9_]{2,64}$")

// Envelope is the fixed response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Error mapping: validation and bad patterns are the caller's fault (4xx),
// missing rule identities are 404, everything else is internal (5xx).
// Store errors are never echoed verbatim to clients.

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: err.Error()})
}

func (s *Service) respondStoreError(c *gin.Context, op string, err error) {
	if errors.Is(err, types.ErrRuleNotFound) {
		c.JSON(http.StatusNotFound, Envelope{Success: false, Message: "not found"})
		return
	}
	s.log.Error().Err(err).Str("op", op).Str("request_id", RequestIDFromContext(c)).Msg("store operation failed")
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"})
}

func (s *Service) respondReloadError(c *gin.Context, op string, err error) {
	s.log.Error().Err(err).Str("op", op).Str("request_id", RequestIDFromContext(c)).Msg("reload failed")
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"})
}
