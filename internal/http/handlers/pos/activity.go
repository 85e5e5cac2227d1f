package pos

import (
	"strconv"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetActivity lists the activity feed.
func (h *Handler) GetActivity(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	orderID, _ := strconv.ParseUint(c.Query("order_id"), 10, 64)
	actorID, _ := strconv.ParseUint(c.Query("actor_id"), 10, 64)

	entries, total, err := h.ActivityService.List(repository.ActivityLogListFilter{
		Page:      page,
		PageSize:  pageSize,
		EventType: c.Query("event_type"),
		OrderID:   uint(orderID),
		ActorID:   uint(actorID),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "activity fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, entries, pagination)
}
