package service

import (
	"strings"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"gorm.io/gorm"
)

// RequestCancellation moves a confirmed order to pending_cancellation. Any
// staff role may request; the decision is admin-only. The status update is
// guarded on the current status so concurrent requests cannot both win.
func (s *OrderService) RequestCancellation(orderID uint, actor Principal, reason string) (*models.Order, error) {
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < constants.CancellationReasonMinLen || len([]rune(reason)) > constants.CancellationReasonMaxLen {
		return nil, ErrCancelReasonInvalid
	}

	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !allowedTransitions[order.Status][constants.OrderStatusPendingCancellation] {
			return ErrOrderStateInvalid
		}

		ok, err := orderRepo.UpdateStatusIfCurrent(orderID, constants.OrderStatusConfirmed, constants.OrderStatusPendingCancellation, map[string]interface{}{
			"cancel_requested_by": actor.UserID,
			"cancel_requested_at": now,
			"cancel_reason":       reason,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStateInvalid
		}

		return orderRepo.AppendHistory(&models.OrderStatusHistory{
			OrderID:        orderID,
			PreviousStatus: constants.OrderStatusConfirmed,
			NewStatus:      constants.OrderStatusPendingCancellation,
			ActorID:        actor.UserID,
			ActorRole:      actor.Role,
			Notes:          reason,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.enqueueActivity(constants.ActivityCancellationRequest, orderID, actor, models.JSON{
		"reason": reason,
	})
	return s.orderRepo.GetByID(orderID)
}

// DecideCancellation resolves a pending cancellation. Approval cancels the
// order and reverses the customer aggregates by the exact amounts credited at
// creation; rejection clears the request fields and returns the order to
// confirmed so it can be re-requested. Either branch is one transaction.
func (s *OrderService) DecideCancellation(orderID uint, actor Principal, approve bool, notes string) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > constants.CancellationReasonMaxLen {
		return nil, ErrCancelReasonInvalid
	}

	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		customerRepo := s.customerRepo.WithTx(tx)

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status != constants.OrderStatusPendingCancellation {
			return ErrOrderStateInvalid
		}

		if approve {
			ok, err := orderRepo.UpdateStatusIfCurrent(orderID, constants.OrderStatusPendingCancellation, constants.OrderStatusCancelled, map[string]interface{}{
				"cancelled_by": actor.UserID,
				"cancelled_at": now,
			})
			if err != nil {
				return err
			}
			if !ok {
				return ErrOrderStateInvalid
			}
			if order.CustomerID != nil {
				if err := customerRepo.ApplyAggregates(*order.CustomerID, -1, order.Total.Decimal.Neg(), -order.LoyaltyPointsEarned); err != nil {
					return err
				}
			}
			return orderRepo.AppendHistory(&models.OrderStatusHistory{
				OrderID:        orderID,
				PreviousStatus: constants.OrderStatusPendingCancellation,
				NewStatus:      constants.OrderStatusCancelled,
				ActorID:        actor.UserID,
				ActorRole:      actor.Role,
				Notes:          notes,
				CreatedAt:      now,
			})
		}

		ok, err := orderRepo.UpdateStatusIfCurrent(orderID, constants.OrderStatusPendingCancellation, constants.OrderStatusConfirmed, map[string]interface{}{
			"cancel_requested_by": nil,
			"cancel_requested_at": nil,
			"cancel_reason":       "",
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStateInvalid
		}
		return orderRepo.AppendHistory(&models.OrderStatusHistory{
			OrderID:        orderID,
			PreviousStatus: constants.OrderStatusPendingCancellation,
			NewStatus:      constants.OrderStatusConfirmed,
			ActorID:        actor.UserID,
			ActorRole:      actor.Role,
			Notes:          notes,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	eventType := constants.ActivityCancellationRejected
	if approve {
		eventType = constants.ActivityCancellationApproved
	}
	s.enqueueActivity(eventType, orderID, actor, models.JSON{
		"approved": approve,
		"notes":    notes,
	})
	return s.orderRepo.GetByID(orderID)
}
