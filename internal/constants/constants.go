package constants

// Order lifecycle statuses
const (
	OrderStatusConfirmed           = "confirmed"
	OrderStatusPendingCancellation = "pending_cancellation"
	OrderStatusCancelled           = "cancelled"
)

// Staff roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Payment methods (recorded, not processed)
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodUPI    = "upi"
	PaymentMethodOnline = "online"
)

// Payment statuses
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Diet classifications for menu items
const (
	DietTypeVeg    = "veg"
	DietTypeNonVeg = "non_veg"
	DietTypeEgg    = "egg"
)

// Cancellation reason bounds
const (
	CancellationReasonMinLen = 5
	CancellationReasonMaxLen = 500
)

// Order line quantity bounds
const (
	OrderLineMinQuantity = 1
	OrderLineMaxQuantity = 100
)

// Queue names and task types
const (
	QueueDefault    = "default"
	TaskActivityLog = "activity:log"
)

// Activity event types
const (
	ActivityOrderCreated         = "order_created"
	ActivityCancellationRequest  = "cancellation_requested"
	ActivityCancellationApproved = "cancellation_approved"
	ActivityCancellationRejected = "cancellation_rejected"
)

// Setting keys
const (
	SettingKeyLoyaltyRatio   = "loyalty_points_ratio"
	SettingKeyTierThresholds = "tier_thresholds"
	SettingKeyVipThreshold   = "vip_order_threshold"
)

// Setting fields
const (
	SettingFieldSpendAmount  = "spend_amount"
	SettingFieldPointsEarned = "points_earned"
	SettingFieldMinOrders    = "min_orders"
)

// Customer tiers, ascending
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)
