package service

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// LoyaltyRatio converts spend into points: floor(total/SpendAmount)*PointsEarned.
type LoyaltyRatio struct {
	SpendAmount  decimal.Decimal
	PointsEarned int
}

// TierThresholds are minimum lifetime-spend values per tier. Bronze is fixed
// at zero; the remaining values are non-decreasing (enforced at write time).
type TierThresholds struct {
	Silver   decimal.Decimal
	Gold     decimal.Decimal
	Platinum decimal.Decimal
}

// VipThreshold marks a customer VIP once lifetime orders reach MinOrders.
type VipThreshold struct {
	MinOrders int
}

// PointsForTotal computes points earned for an order total. Returns 0 when no
// usable ratio is configured or the total is not positive.
func PointsForTotal(total decimal.Decimal, ratio LoyaltyRatio) int {
	if ratio.SpendAmount.LessThanOrEqual(decimal.Zero) || ratio.PointsEarned <= 0 {
		return 0
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	units := total.Div(ratio.SpendAmount).Floor()
	return int(units.IntPart()) * ratio.PointsEarned
}

// TierForSpend returns the highest tier whose threshold does not exceed the
// lifetime spend. Thresholds are compared in ascending order.
func TierForSpend(totalSpent decimal.Decimal, thresholds TierThresholds) string {
	tier := constants.TierBronze
	if totalSpent.GreaterThanOrEqual(thresholds.Silver) {
		tier = constants.TierSilver
	}
	if totalSpent.GreaterThanOrEqual(thresholds.Gold) {
		tier = constants.TierGold
	}
	if totalSpent.GreaterThanOrEqual(thresholds.Platinum) {
		tier = constants.TierPlatinum
	}
	return tier
}

// IsVip reports whether the lifetime order count meets the VIP threshold.
func IsVip(totalOrders int, threshold VipThreshold) bool {
	if threshold.MinOrders <= 0 {
		return false
	}
	return totalOrders >= threshold.MinOrders
}

// CustomerStanding is the derived loyalty view of a customer. It stores
// nothing; recomputing from the same aggregates always yields the same result.
type CustomerStanding struct {
	Tier          string `json:"tier"`
	IsVip         bool   `json:"is_vip"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// StandingFor derives tier and VIP flag for a customer.
func StandingFor(customer *models.Customer, thresholds TierThresholds, vip VipThreshold) CustomerStanding {
	return CustomerStanding{
		Tier:          TierForSpend(customer.TotalSpent.Decimal, thresholds),
		IsVip:         IsVip(customer.TotalOrders, vip),
		LoyaltyPoints: customer.LoyaltyPoints,
	}
}
