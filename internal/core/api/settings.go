package api

import (
	"regexp"

	"github.com/gin-gonic/gin"
)

// settingKeyRE constrains setting keys to a flat lowercase namespace.
var settingKeyRE = regexp.MustCompile(`^[a-z0-9_]{2,64}$`)

type upsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required,min=1,max=128"`
}

// ListSettings returns the cached settings.
func (s *Service) ListSettings(c *gin.Context) {
	respondOK(c, "settings retrieved successfully", s.cache.ListSettings())
}

// UpsertSetting inserts or replaces a setting by key and reloads the
// settings cache. Settings are pass-through key/value pairs; the matching
// core never reads them.
func (s *Service) UpsertSetting(c *gin.Context) {
	var req upsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if !settingKeyRE.MatchString(req.Key) {
		respondValidation(c, errInvalidSettingKey)
		return
	}

	if err := s.store.UpsertSetting(req.Key, req.Value); err != nil {
		s.respondStoreError(c, "upsert setting", err)
		return
	}
	if err := s.refetchSettings(); err != nil {
		s.respondReloadError(c, "reload settings", err)
		return
	}

	respondOK(c, "setting updated successfully", nil)
}
