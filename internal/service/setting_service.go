package service

import (
	"context"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/cache"
	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/shopspring/decimal"
)

const settingCacheTTL = 5 * time.Minute

// SettingService reads and writes validated configuration values. Reads go
// through the redis cache when enabled; writes normalize and validate before
// anything hits the store.
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService creates a setting service.
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetByKey returns the stored value for a key, or nil when unset.
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	ctx := context.Background()
	var cached models.JSON
	if hit, err := cache.GetJSON(ctx, settingCacheKey(key), &cached); err != nil {
		logger.Warnw("setting_cache_read_failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	if err := cache.SetJSON(ctx, settingCacheKey(key), setting.ValueJSON, settingCacheTTL); err != nil {
		logger.Warnw("setting_cache_write_failed", "key", key, "error", err)
	}
	return setting.ValueJSON, nil
}

// Update validates, normalizes and stores a setting value.
func (s *SettingService) Update(key string, value map[string]interface{}) (models.JSON, error) {
	normalized, err := normalizeSettingValueByKey(key, value)
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.Upsert(key, normalized)
	if err != nil {
		return nil, err
	}
	if err := cache.Del(context.Background(), settingCacheKey(key)); err != nil {
		logger.Warnw("setting_cache_invalidate_failed", "key", key, "error", err)
	}
	return setting.ValueJSON, nil
}

// List returns all stored settings.
func (s *SettingService) List() ([]models.Setting, error) {
	return s.repo.List()
}

// GetLoyaltyRatio returns the configured spend-to-points ratio, or the system
// default when unset.
func (s *SettingService) GetLoyaltyRatio() (LoyaltyRatio, error) {
	fallback := LoyaltyRatio{SpendAmount: decimal.NewFromInt(10), PointsEarned: 1}
	if s == nil {
		return fallback, nil
	}
	value, err := s.GetByKey(constants.SettingKeyLoyaltyRatio)
	if err != nil {
		return fallback, err
	}
	if value == nil {
		return fallback, nil
	}
	ratio := fallback
	if raw, ok := value[constants.SettingFieldSpendAmount]; ok {
		if parsed, err := parseSettingDecimal(raw); err == nil && parsed.GreaterThan(decimal.Zero) {
			ratio.SpendAmount = parsed
		}
	}
	if raw, ok := value[constants.SettingFieldPointsEarned]; ok {
		if parsed, err := parseSettingInt(raw); err == nil && parsed > 0 {
			ratio.PointsEarned = parsed
		}
	}
	return ratio, nil
}

// GetTierThresholds returns the configured tier thresholds, or the system
// defaults when unset.
func (s *SettingService) GetTierThresholds() (TierThresholds, error) {
	fallback := TierThresholds{
		Silver:   decimal.NewFromInt(1000),
		Gold:     decimal.NewFromInt(5000),
		Platinum: decimal.NewFromInt(10000),
	}
	if s == nil {
		return fallback, nil
	}
	value, err := s.GetByKey(constants.SettingKeyTierThresholds)
	if err != nil {
		return fallback, err
	}
	if value == nil {
		return fallback, nil
	}
	thresholds := fallback
	if raw, ok := value[constants.TierSilver]; ok {
		if parsed, err := parseSettingDecimal(raw); err == nil {
			thresholds.Silver = parsed
		}
	}
	if raw, ok := value[constants.TierGold]; ok {
		if parsed, err := parseSettingDecimal(raw); err == nil {
			thresholds.Gold = parsed
		}
	}
	if raw, ok := value[constants.TierPlatinum]; ok {
		if parsed, err := parseSettingDecimal(raw); err == nil {
			thresholds.Platinum = parsed
		}
	}
	return thresholds, nil
}

// GetVipThreshold returns the configured VIP order threshold, or the system
// default when unset.
func (s *SettingService) GetVipThreshold() (VipThreshold, error) {
	fallback := VipThreshold{MinOrders: 10}
	if s == nil {
		return fallback, nil
	}
	value, err := s.GetByKey(constants.SettingKeyVipThreshold)
	if err != nil {
		return fallback, err
	}
	if value == nil {
		return fallback, nil
	}
	if raw, ok := value[constants.SettingFieldMinOrders]; ok {
		if parsed, err := parseSettingInt(raw); err == nil && parsed > 0 {
			return VipThreshold{MinOrders: parsed}, nil
		}
	}
	return fallback, nil
}

func settingCacheKey(key string) string {
	return "setting:" + key
}
