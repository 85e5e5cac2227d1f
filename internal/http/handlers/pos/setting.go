package pos

import (
	"errors"
	"strings"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings lists all stored settings.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.SettingService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "setting fetch failed", err)
		return
	}
	response.Success(c, settings)
}

// GetSetting returns one setting value.
func (h *Handler) GetSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	value, err := h.SettingService.GetByKey(key)
	if err != nil {
		respondError(c, response.CodeInternal, "setting fetch failed", err)
		return
	}
	if value == nil {
		respondError(c, response.CodeNotFound, "setting not found", nil)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}

// UpdateSetting validates and stores a setting value.
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	value, err := h.SettingService.Update(key, body)
	if err != nil {
		if errors.Is(err, service.ErrSettingKeyUnknown) {
			respondError(c, response.CodeNotFound, "unknown setting key", nil)
			return
		}
		if errors.Is(err, service.ErrSettingValueInvalid) {
			respondError(c, response.CodeBadRequest, "setting value failed validation", nil)
			return
		}
		respondError(c, response.CodeInternal, "setting update failed", err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}
