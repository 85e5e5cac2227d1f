package pos

import (
	"strconv"
	"strings"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the order creation request body.
type CreateOrderRequest struct {
	Lines         []service.CreateOrderLine `json:"lines" binding:"required"`
	CustomerID    *uint                     `json:"customer_id"`
	CustomerName  string                    `json:"customer_name"`
	CustomerPhone string                    `json:"customer_phone"`
	CustomerEmail string                    `json:"customer_email"`
	PaymentMethod string                    `json:"payment_method" binding:"required"`
	PaymentStatus string                    `json:"payment_status"`
}

// PreviewOrderRequest is the price preview request body.
type PreviewOrderRequest struct {
	Lines []service.CreateOrderLine `json:"lines" binding:"required"`
}

// CancellationRequestBody is the cancellation request body.
type CancellationRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

// CancellationDecisionBody is the cancellation decision body.
type CancellationDecisionBody struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// CreateOrder creates an order.
func (h *Handler) CreateOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		Lines:         req.Lines,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Actor:         principal,
	})
	if err != nil {
		rules := concatMappedHandlerErrors(linePricingErrorRules, orderCreateErrorRules)
		respondWithMappedError(c, err, rules, response.CodeInternal, "order create failed")
		return
	}

	response.Success(c, order)
}

// PreviewOrder prices an order without persisting it. The preview runs the
// same resolver as CreateOrder.
func (h *Handler) PreviewOrder(c *gin.Context) {
	if _, ok := getPrincipal(c); !ok {
		return
	}

	var req PreviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	preview, err := h.OrderService.PreviewOrder(req.Lines)
	if err != nil {
		respondWithMappedError(c, err, linePricingErrorRules, response.CodeInternal, "order preview failed")
		return
	}

	response.Success(c, preview)
}

// GetOrder returns one order with lines and history.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	order, err := h.OrderService.GetOrder(uint(id))
	if err != nil {
		respondWithMappedError(c, err, cancellationErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, order)
}

// GetOrderByOrderNo returns one order looked up by its order number.
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	order, err := h.OrderService.GetOrderByNo(orderNo)
	if err != nil {
		respondWithMappedError(c, err, cancellationErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, order)
}

// GetOrders lists orders.
func (h *Handler) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 64)

	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        c.Query("status"),
		OrderNo:       c.Query("order_no"),
		CustomerID:    uint(customerID),
		CustomerPhone: c.Query("customer_phone"),
	}
	if from := c.Query("created_from"); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &parsed
		}
	}
	if to := c.Query("created_to"); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &parsed
		}
	}

	orders, total, err := h.OrderService.ListOrders(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// RequestCancellation asks to cancel a confirmed order.
func (h *Handler) RequestCancellation(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	var req CancellationRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.RequestCancellation(uint(id), principal, req.Reason)
	if err != nil {
		respondWithMappedError(c, err, cancellationErrorRules, response.CodeInternal, "cancellation request failed")
		return
	}
	response.Success(c, order)
}

// DecideCancellation approves or rejects a pending cancellation. Admin only.
func (h *Handler) DecideCancellation(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	var req CancellationDecisionBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.DecideCancellation(uint(id), principal, req.Approve, req.Notes)
	if err != nil {
		respondWithMappedError(c, err, cancellationErrorRules, response.CodeInternal, "cancellation decision failed")
		return
	}
	response.Success(c, order)
}
