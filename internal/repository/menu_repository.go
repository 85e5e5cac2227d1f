package repository

import (
	"errors"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"gorm.io/gorm"
)

// MenuRepository is the read-only catalog accessor. The order core never
// mutates catalog rows.
type MenuRepository interface {
	GetItemByID(id uint) (*models.MenuItem, error)
	GetVariant(itemID, variantID uint) (*models.Variant, error)
	ListItems(filter MenuItemListFilter) ([]models.MenuItem, int64, error)
	ListCategories() ([]models.Category, error)
	WithTx(tx *gorm.DB) *GormMenuRepository
}

// GormMenuRepository is the GORM implementation.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a menu repository.
func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormMenuRepository) WithTx(tx *gorm.DB) *GormMenuRepository {
	if tx == nil {
		return r
	}
	return &GormMenuRepository{db: tx}
}

// GetItemByID fetches a menu item with its variants.
func (r *GormMenuRepository) GetItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Variants").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetVariant fetches a variant scoped to its owning item.
func (r *GormMenuRepository) GetVariant(itemID, variantID uint) (*models.Variant, error) {
	var variant models.Variant
	if err := r.db.Where("id = ? AND menu_item_id = ?", variantID, itemID).First(&variant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// ListItems lists menu items with variants.
func (r *GormMenuRepository) ListItems(filter MenuItemListFilter) ([]models.MenuItem, int64, error) {
	query := r.db.Model(&models.MenuItem{})
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var items []models.MenuItem
	if err := query.Preload("Variants").Preload("Category").
		Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListCategories lists all categories in display order.
func (r *GormMenuRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
