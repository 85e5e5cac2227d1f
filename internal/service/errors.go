package service

import "errors"

// Not-found errors: a referenced entity does not exist.
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// Invalid-request errors: malformed input or unavailable catalog entities.
var (
	ErrEmptyOrder            = errors.New("order has no lines")
	ErrInvalidQuantity       = errors.New("line quantity out of bounds")
	ErrMenuItemUnavailable   = errors.New("menu item not available")
	ErrVariantRequired       = errors.New("variant required for variant-priced item")
	ErrVariantInvalid        = errors.New("variant missing or not available")
	ErrVariantNotAllowed     = errors.New("item does not take a variant")
	ErrItemPriceMissing      = errors.New("item has no base price")
	ErrAddonNotAllowed       = errors.New("addon not available for this item")
	ErrAddonQuantityInvalid  = errors.New("addon quantity out of bounds")
	ErrPaymentMethodInvalid  = errors.New("unsupported payment method")
	ErrCancelReasonInvalid   = errors.New("cancellation reason length out of bounds")
	ErrCustomerInputInvalid  = errors.New("customer phone or email required")
	ErrSettingValueInvalid   = errors.New("setting value failed validation")
	ErrSettingKeyUnknown     = errors.New("unknown setting key")
)

// Conflict errors: uniqueness collisions that survived the re-read fallback.
var (
	ErrCustomerConflict = errors.New("customer uniqueness conflict")
)

// State-machine errors.
var (
	ErrOrderStateInvalid = errors.New("order state does not permit this transition")
)

// Authorization errors.
var (
	ErrForbidden          = errors.New("role not permitted for this operation")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user account disabled")
)
