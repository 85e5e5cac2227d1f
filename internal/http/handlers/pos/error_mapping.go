package pos

import (
	"errors"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one service error to a response code and message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var linePricingErrorRules = []mappedHandlerError{
	{target: service.ErrMenuItemNotFound, code: response.CodeNotFound, msg: "menu item not found"},
	{target: service.ErrMenuItemUnavailable, code: response.CodeNotFound, msg: "menu item not available"},
	{target: service.ErrVariantRequired, code: response.CodeBadRequest, msg: "variant required for this item"},
	{target: service.ErrVariantInvalid, code: response.CodeBadRequest, msg: "variant missing or not available"},
	{target: service.ErrVariantNotAllowed, code: response.CodeBadRequest, msg: "item does not take a variant"},
	{target: service.ErrItemPriceMissing, code: response.CodeBadRequest, msg: "item has no base price"},
	{target: service.ErrAddonNotAllowed, code: response.CodeBadRequest, msg: "addon not available for this item"},
	{target: service.ErrAddonQuantityInvalid, code: response.CodeBadRequest, msg: "addon quantity out of bounds"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "line quantity out of bounds"},
	{target: service.ErrEmptyOrder, code: response.CodeBadRequest, msg: "order has no lines"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrForbidden, code: response.CodeForbidden, msg: "role not permitted"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, msg: "unsupported payment method"},
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, msg: "customer not found"},
	{target: service.ErrCustomerConflict, code: response.CodeConflict, msg: "customer conflict"},
}

var cancellationErrorRules = []mappedHandlerError{
	{target: service.ErrForbidden, code: response.CodeForbidden, msg: "role not permitted"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderStateInvalid, code: response.CodeInvalidState, msg: "order state does not permit this transition"},
	{target: service.ErrCancelReasonInvalid, code: response.CodeBadRequest, msg: "cancellation reason must be 5-500 characters"},
}
