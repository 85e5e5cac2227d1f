package pos

import (
	"errors"
	"strconv"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCustomers lists customers with derived standings.
func (h *Handler) GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	if phone := c.Query("phone"); phone != "" {
		view, err := h.CustomerService.FindByPhone(phone)
		if err != nil {
			if errors.Is(err, service.ErrCustomerInputInvalid) {
				respondError(c, response.CodeBadRequest, "customer phone required", nil)
				return
			}
			if errors.Is(err, service.ErrCustomerNotFound) {
				respondError(c, response.CodeNotFound, "customer not found", nil)
				return
			}
			respondError(c, response.CodeInternal, "customer fetch failed", err)
			return
		}
		response.Success(c, view)
		return
	}

	views, total, err := h.CustomerService.ListCustomers(repository.CustomerListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    c.Query("search"),
		OnlyActive: c.Query("include_inactive") != "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "customer fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// GetCustomer returns one customer with its derived standing.
func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	view, err := h.CustomerService.GetCustomer(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "customer fetch failed", err)
		return
	}
	response.Success(c, view)
}
