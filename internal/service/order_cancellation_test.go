package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
)

func createCancellationTestOrder(t *testing.T, svc *OrderService, f *resolverFixture) *models.Order {
	t.Helper()

	order, err := svc.CreateOrder(CreateOrderInput{
		Lines:         []CreateOrderLine{{MenuItemID: f.sandwich.ID, Quantity: 1}}, // 180, 18 points
		CustomerName:  "Meera",
		CustomerPhone: "9822222222",
		PaymentMethod: constants.PaymentMethodCash,
		Actor:         managerActor(),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestRequestCancellation(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	updated, err := svc.RequestCancellation(order.ID, managerActor(), "customer changed their mind")
	if err != nil {
		t.Fatalf("request cancellation error: %v", err)
	}
	if updated.Status != constants.OrderStatusPendingCancellation {
		t.Fatalf("expected pending_cancellation, got %s", updated.Status)
	}
	if updated.CancelRequestedBy == nil || *updated.CancelRequestedBy != managerActor().UserID {
		t.Fatalf("expected requester recorded")
	}
	if updated.CancelRequestedAt == nil {
		t.Fatalf("expected request timestamp")
	}
	if updated.CancelReason != "customer changed their mind" {
		t.Fatalf("unexpected reason: %s", updated.CancelReason)
	}
	if len(updated.History) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(updated.History))
	}
	if updated.History[0].PreviousStatus != constants.OrderStatusConfirmed || updated.History[0].NewStatus != constants.OrderStatusPendingCancellation {
		t.Fatalf("unexpected history transition: %+v", updated.History[0])
	}
}

func TestRequestCancellationReasonBounds(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "oops"); !errors.Is(err, ErrCancelReasonInvalid) {
		t.Fatalf("expected too-short reason rejected, got %v", err)
	}
	if _, err := svc.RequestCancellation(order.ID, managerActor(), "   ab  "); !errors.Is(err, ErrCancelReasonInvalid) {
		t.Fatalf("expected trimmed reason length to be checked, got %v", err)
	}
	if _, err := svc.RequestCancellation(order.ID, managerActor(), strings.Repeat("x", 501)); !errors.Is(err, ErrCancelReasonInvalid) {
		t.Fatalf("expected too-long reason rejected, got %v", err)
	}
	if _, err := svc.RequestCancellation(order.ID, managerActor(), strings.Repeat("x", 500)); err != nil {
		t.Fatalf("expected 500-rune reason accepted, got %v", err)
	}
}

func TestRequestCancellationStateGuards(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	if _, err := svc.RequestCancellation(999999, managerActor(), "want to cancel this"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.RequestCancellation(order.ID, Principal{UserID: 9, Role: "guest"}, "want to cancel this"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "first request wins here"); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	// already pending
	if _, err := svc.RequestCancellation(order.ID, managerActor(), "second request must fail"); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestDecideCancellationApproveReversesAggregates(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	var before models.Customer
	if err := f.db.First(&before, *order.CustomerID).Error; err != nil {
		t.Fatalf("load customer failed: %v", err)
	}

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "wrong order punched in"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	updated, err := svc.DecideCancellation(order.ID, adminActor(), true, "approved at counter")
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}
	if updated.CancelledBy == nil || *updated.CancelledBy != adminActor().UserID {
		t.Fatalf("expected approver recorded")
	}
	if updated.CancelledAt == nil {
		t.Fatalf("expected cancellation timestamp")
	}
	if len(updated.History) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(updated.History))
	}

	var after models.Customer
	if err := f.db.First(&after, *order.CustomerID).Error; err != nil {
		t.Fatalf("reload customer failed: %v", err)
	}
	if after.TotalOrders != before.TotalOrders-1 {
		t.Fatalf("expected order count reversed, got %d", after.TotalOrders)
	}
	if !after.TotalSpent.Decimal.Equal(before.TotalSpent.Decimal.Sub(order.Total.Decimal)) {
		t.Fatalf("expected spend reversed, got %s", after.TotalSpent.Decimal.String())
	}
	if after.LoyaltyPoints != before.LoyaltyPoints-order.LoyaltyPointsEarned {
		t.Fatalf("expected points reversed exactly, got %d", after.LoyaltyPoints)
	}
}

func TestDecideCancellationRejectRestoresOrder(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	var before models.Customer
	if err := f.db.First(&before, *order.CustomerID).Error; err != nil {
		t.Fatalf("load customer failed: %v", err)
	}

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "thought it was a duplicate"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	updated, err := svc.DecideCancellation(order.ID, adminActor(), false, "order already served")
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed after rejection, got %s", updated.Status)
	}
	if updated.CancelRequestedBy != nil || updated.CancelRequestedAt != nil || updated.CancelReason != "" {
		t.Fatalf("expected request fields cleared, got %+v", updated)
	}

	var after models.Customer
	if err := f.db.First(&after, *order.CustomerID).Error; err != nil {
		t.Fatalf("reload customer failed: %v", err)
	}
	if after.TotalOrders != before.TotalOrders || !after.TotalSpent.Decimal.Equal(before.TotalSpent.Decimal) || after.LoyaltyPoints != before.LoyaltyPoints {
		t.Fatalf("expected aggregates untouched by rejection")
	}

	// the order can be re-requested after a rejection
	if _, err := svc.RequestCancellation(order.ID, managerActor(), "customer insists this time"); err != nil {
		t.Fatalf("re-request after rejection failed: %v", err)
	}
}

func TestDecideCancellationGuards(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f)

	// deciding a confirmed order is invalid
	if _, err := svc.DecideCancellation(order.ID, adminActor(), true, ""); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	// managers cannot decide
	if _, err := svc.DecideCancellation(order.ID, managerActor(), true, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for manager, got %v", err)
	}
	if _, err := svc.DecideCancellation(999999, adminActor(), true, ""); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "table cancelled the order"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if _, err := svc.DecideCancellation(order.ID, adminActor(), true, strings.Repeat("n", 501)); !errors.Is(err, ErrCancelReasonInvalid) {
		t.Fatalf("expected long notes rejected, got %v", err)
	}
	if _, err := svc.DecideCancellation(order.ID, adminActor(), true, "ok"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// cancelled is terminal
	if _, err := svc.RequestCancellation(order.ID, managerActor(), "too late to ask again"); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected terminal state, got %v", err)
	}
	if _, err := svc.DecideCancellation(order.ID, adminActor(), false, ""); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("expected terminal state for decide, got %v", err)
	}
}

func TestApprovalReversalSurvivesRatioChange(t *testing.T) {
	svc, f := setupOrderServiceTest(t)
	order := createCancellationTestOrder(t, svc, f) // 180 at 10->1 = 18 points

	if order.LoyaltyPointsEarned != 18 {
		t.Fatalf("expected 18 points credited, got %d", order.LoyaltyPointsEarned)
	}

	// the ratio changes after the sale
	if _, err := svc.settings.Update(constants.SettingKeyLoyaltyRatio, map[string]interface{}{
		constants.SettingFieldSpendAmount:  "5",
		constants.SettingFieldPointsEarned: 1,
	}); err != nil {
		t.Fatalf("update ratio failed: %v", err)
	}

	if _, err := svc.RequestCancellation(order.ID, managerActor(), "wrong table charged"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if _, err := svc.DecideCancellation(order.ID, adminActor(), true, ""); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	var customer models.Customer
	if err := f.db.First(&customer, *order.CustomerID).Error; err != nil {
		t.Fatalf("load customer failed: %v", err)
	}
	// 18 credited, 18 reversed; the new ratio never applies retroactively
	if customer.LoyaltyPoints != 0 {
		t.Fatalf("expected points back to 0, got %d", customer.LoyaltyPoints)
	}
	if !customer.TotalSpent.Decimal.Equal(decimal.Zero) {
		t.Fatalf("expected spend back to 0, got %s", customer.TotalSpent.Decimal.String())
	}
	if customer.TotalOrders != 0 {
		t.Fatalf("expected order count back to 0, got %d", customer.TotalOrders)
	}
}
