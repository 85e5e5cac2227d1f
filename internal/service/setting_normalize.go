package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// normalizeSettingValueByKey validates and normalizes per setting key so
// invalid values never reach the store. The key set is closed; anything else
// is rejected.
func normalizeSettingValueByKey(key string, value map[string]interface{}) (models.JSON, error) {
	switch key {
	case constants.SettingKeyLoyaltyRatio:
		return normalizeLoyaltyRatioSetting(value)
	case constants.SettingKeyTierThresholds:
		return normalizeTierThresholdsSetting(value)
	case constants.SettingKeyVipThreshold:
		return normalizeVipThresholdSetting(value)
	default:
		return nil, ErrSettingKeyUnknown
	}
}

// normalizeLoyaltyRatioSetting requires spend_amount and points_earned, both
// strictly positive.
func normalizeLoyaltyRatioSetting(value map[string]interface{}) (models.JSON, error) {
	spend, err := parseSettingDecimal(value[constants.SettingFieldSpendAmount])
	if err != nil || spend.LessThanOrEqual(decimal.Zero) {
		return nil, ErrSettingValueInvalid
	}
	points, err := parseSettingInt(value[constants.SettingFieldPointsEarned])
	if err != nil || points <= 0 {
		return nil, ErrSettingValueInvalid
	}
	return models.JSON{
		constants.SettingFieldSpendAmount:  spend.String(),
		constants.SettingFieldPointsEarned: points,
	}, nil
}

// normalizeTierThresholdsSetting pins bronze at zero and requires the
// remaining thresholds to be non-negative and non-decreasing.
func normalizeTierThresholdsSetting(value map[string]interface{}) (models.JSON, error) {
	silver, err := parseSettingDecimal(value[constants.TierSilver])
	if err != nil {
		return nil, ErrSettingValueInvalid
	}
	gold, err := parseSettingDecimal(value[constants.TierGold])
	if err != nil {
		return nil, ErrSettingValueInvalid
	}
	platinum, err := parseSettingDecimal(value[constants.TierPlatinum])
	if err != nil {
		return nil, ErrSettingValueInvalid
	}
	if silver.IsNegative() || gold.LessThan(silver) || platinum.LessThan(gold) {
		return nil, ErrSettingValueInvalid
	}
	return models.JSON{
		constants.TierBronze:   "0",
		constants.TierSilver:   silver.String(),
		constants.TierGold:     gold.String(),
		constants.TierPlatinum: platinum.String(),
	}, nil
}

// normalizeVipThresholdSetting requires a positive min_orders.
func normalizeVipThresholdSetting(value map[string]interface{}) (models.JSON, error) {
	minOrders, err := parseSettingInt(value[constants.SettingFieldMinOrders])
	if err != nil || minOrders <= 0 {
		return nil, ErrSettingValueInvalid
	}
	return models.JSON{
		constants.SettingFieldMinOrders: minOrders,
	}, nil
}

func parseSettingInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := v.Float64(); err == nil {
			return int(f), nil
		}
		return 0, fmt.Errorf("invalid json number")
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("empty string")
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, err
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported value type")
	}
}

func parseSettingDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, fmt.Errorf("empty string")
		}
		return decimal.NewFromString(trimmed)
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type")
	}
}
