package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/queue"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns order creation and the cancellation state machine.
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	resolver     *PriceResolver
	settings     *SettingService
	queueClient  *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, resolver *PriceResolver, settings *SettingService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		resolver:     resolver,
		settings:     settings,
		queueClient:  queueClient,
	}
}

// CreateOrderLine is one requested line.
type CreateOrderLine struct {
	MenuItemID      uint                  `json:"menu_item_id" binding:"required"`
	VariantID       *uint                 `json:"variant_id"`
	AddonSelections []AddonSelectionInput `json:"addon_selections"`
	Quantity        int                   `json:"quantity" binding:"required"`
	Note            string                `json:"note"`
}

// CreateOrderInput is the order creation request.
type CreateOrderInput struct {
	Lines         []CreateOrderLine
	CustomerID    *uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string
	PaymentStatus string
	Actor         Principal
}

// LinePreview pairs a resolved breakdown with the requested quantity.
type LinePreview struct {
	Breakdown PriceBreakdown `json:"breakdown"`
	Quantity  int            `json:"quantity"`
	LineTotal models.Money   `json:"line_total"`
}

// OrderPreview mirrors exactly what CreateOrder would charge.
type OrderPreview struct {
	Lines    []LinePreview `json:"lines"`
	Subtotal models.Money  `json:"subtotal"`
	Tax      models.Money  `json:"tax"`
	Total    models.Money  `json:"total"`
}

// orderBuildResult carries resolved lines and totals from the shared
// resolution pass into the transaction.
type orderBuildResult struct {
	Lines    []models.OrderLine
	Previews []LinePreview
	Subtotal decimal.Decimal
}

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusConfirmed: {
		constants.OrderStatusPendingCancellation: true,
	},
	constants.OrderStatusPendingCancellation: {
		constants.OrderStatusCancelled: true,
		constants.OrderStatusConfirmed: true,
	},
}

// buildOrderLines resolves every requested line. The preview and the creation
// path both run through here, so a quote can never drift from the charge.
func (s *OrderService) buildOrderLines(lines []CreateOrderLine) (*orderBuildResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	result := &orderBuildResult{
		Lines:    make([]models.OrderLine, 0, len(lines)),
		Previews: make([]LinePreview, 0, len(lines)),
		Subtotal: decimal.Zero,
	}
	for _, line := range lines {
		if line.Quantity < constants.OrderLineMinQuantity || line.Quantity > constants.OrderLineMaxQuantity {
			return nil, ErrInvalidQuantity
		}
		breakdown, err := s.resolver.ResolveLinePrice(LinePriceInput{
			MenuItemID:      line.MenuItemID,
			VariantID:       line.VariantID,
			AddonSelections: line.AddonSelections,
			Quantity:        line.Quantity,
		})
		if err != nil {
			return nil, err
		}

		lineTotal := breakdown.UnitTotal.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		result.Lines = append(result.Lines, models.OrderLine{
			MenuItemID:  breakdown.MenuItemID,
			VariantID:   breakdown.VariantID,
			ItemName:    breakdown.ItemName,
			VariantName: breakdown.VariantName,
			UnitPrice:   breakdown.UnitTotal,
			Quantity:    line.Quantity,
			LineTotal:   models.NewMoneyFromDecimal(lineTotal),
			Addons:      breakdown.Addons,
			Note:        strings.TrimSpace(line.Note),
		})
		result.Previews = append(result.Previews, LinePreview{
			Breakdown: *breakdown,
			Quantity:  line.Quantity,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
		})
		result.Subtotal = result.Subtotal.Add(lineTotal)
	}
	return result, nil
}

// PreviewOrder prices a prospective order without persisting anything.
func (s *OrderService) PreviewOrder(lines []CreateOrderLine) (*OrderPreview, error) {
	result, err := s.buildOrderLines(lines)
	if err != nil {
		return nil, err
	}
	return &OrderPreview{
		Lines:    result.Previews,
		Subtotal: models.NewMoneyFromDecimal(result.Subtotal),
		Tax:      models.NewMoneyFromDecimal(decimal.Zero),
		Total:    models.NewMoneyFromDecimal(result.Subtotal),
	}, nil
}

// CreateOrder resolves, prices and persists an order atomically: order row,
// lines, customer find-or-create and aggregate credit all commit or none do.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if !input.Actor.IsStaff() {
		return nil, ErrForbidden
	}
	if err := validatePayment(input.PaymentMethod, input.PaymentStatus); err != nil {
		return nil, err
	}

	result, err := s.buildOrderLines(input.Lines)
	if err != nil {
		return nil, err
	}

	ratio, err := s.settings.GetLoyaltyRatio()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:       generateOrderNo(),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Status:        constants.OrderStatusConfirmed,
		Subtotal:      models.NewMoneyFromDecimal(result.Subtotal),
		Tax:           models.NewMoneyFromDecimal(decimal.Zero),
		Total:         models.NewMoneyFromDecimal(result.Subtotal),
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: paymentStatusOrDefault(input.PaymentStatus),
		CreatedBy:     input.Actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		customerRepo := s.customerRepo.WithTx(tx)

		customer, err := s.resolveCustomer(customerRepo, input)
		if err != nil {
			return err
		}
		if customer != nil {
			order.CustomerID = &customer.ID
			if order.CustomerName == "" {
				order.CustomerName = customer.Name
			}
			if order.CustomerPhone == "" && customer.Phone != nil {
				order.CustomerPhone = *customer.Phone
			}
			order.LoyaltyPointsEarned = PointsForTotal(order.Total.Decimal, ratio)
		}

		if err := orderRepo.Create(order, result.Lines); err != nil {
			return err
		}

		if customer != nil {
			if err := customerRepo.ApplyAggregates(customer.ID, 1, order.Total.Decimal, order.LoyaltyPointsEarned); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueActivity(constants.ActivityOrderCreated, order.ID, input.Actor, models.JSON{
		"order_no": order.OrderNo,
		"total":    order.Total,
	})

	full, err := s.orderRepo.GetByID(order.ID)
	if err == nil && full != nil {
		return full, nil
	}
	return order, nil
}

// resolveCustomer links the order to a customer. Creation is optimistic: a
// uniqueness collision from a concurrent insert falls back to re-reading the
// winning row instead of failing the order.
func (s *OrderService) resolveCustomer(customerRepo repository.CustomerRepository, input CreateOrderInput) (*models.Customer, error) {
	if input.CustomerID != nil {
		customer, err := customerRepo.GetByID(*input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, ErrCustomerNotFound
		}
		return customer, nil
	}

	phone := strings.TrimSpace(input.CustomerPhone)
	email := strings.TrimSpace(input.CustomerEmail)
	if phone == "" && email == "" {
		return nil, nil
	}

	customer, err := s.lookupCustomer(customerRepo, phone, email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	fresh := &models.Customer{
		Name:     strings.TrimSpace(input.CustomerName),
		IsActive: true,
	}
	if phone != "" {
		fresh.Phone = &phone
	}
	if email != "" {
		fresh.Email = &email
	}
	if err := customerRepo.Create(fresh); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, lookupErr := s.lookupCustomer(customerRepo, phone, email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if existing == nil {
				return nil, ErrCustomerConflict
			}
			return existing, nil
		}
		return nil, err
	}
	return fresh, nil
}

func (s *OrderService) lookupCustomer(customerRepo repository.CustomerRepository, phone, email string) (*models.Customer, error) {
	if phone != "" {
		customer, err := customerRepo.FindByPhone(phone)
		if err != nil || customer != nil {
			return customer, err
		}
	}
	if email != "" {
		customer, err := customerRepo.FindByEmail(email)
		if err != nil || customer != nil {
			return customer, err
		}
	}
	return nil, nil
}

// enqueueActivity pushes a best-effort activity event. Failures are logged and
// never fail the primary operation.
func (s *OrderService) enqueueActivity(eventType string, orderID uint, actor Principal, detail models.JSON) {
	if s.queueClient == nil {
		return
	}
	if err := s.queueClient.EnqueueActivityLog(queue.ActivityLogPayload{
		EventType: eventType,
		OrderID:   orderID,
		ActorID:   actor.UserID,
		Detail:    detail,
	}); err != nil {
		logger.Warnw("activity_enqueue_failed",
			"event_type", eventType,
			"order_id", orderID,
			"error", err,
		)
	}
}

func validatePayment(method, status string) error {
	switch method {
	case constants.PaymentMethodCash, constants.PaymentMethodCard, constants.PaymentMethodUPI, constants.PaymentMethodOnline:
	default:
		return ErrPaymentMethodInvalid
	}
	switch status {
	case "", constants.PaymentStatusPaid, constants.PaymentStatusPending:
	default:
		return ErrPaymentMethodInvalid
	}
	return nil
}

func paymentStatusOrDefault(status string) string {
	if status == "" {
		return constants.PaymentStatusPaid
	}
	return status
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("POS%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
