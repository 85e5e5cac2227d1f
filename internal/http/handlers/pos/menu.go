package pos

import (
	"strconv"

	"github.com/rajat6235/Robusters-POS-sub001/internal/http/response"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetCategories lists menu categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}

// GetMenuItems lists menu items.
func (h *Handler) GetMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	items, total, err := h.CatalogService.ListItems(repository.MenuItemListFilter{
		Page:          page,
		PageSize:      pageSize,
		CategoryID:    uint(categoryID),
		Search:        c.Query("search"),
		OnlyAvailable: c.Query("include_unavailable") != "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "menu fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, items, pagination)
}

// GetMenuItem returns one menu item with its variants and effective addons.
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	item, err := h.CatalogService.GetMenuItem(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "menu fetch failed", err)
		return
	}
	if item == nil {
		respondError(c, response.CodeNotFound, "menu item not found", nil)
		return
	}

	addons, err := h.CatalogService.GetEffectiveAddons(item)
	if err != nil {
		respondError(c, response.CodeInternal, "menu fetch failed", err)
		return
	}

	response.Success(c, gin.H{
		"item":   item,
		"addons": addons,
	})
}
