package repository

import (
	"errors"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"gorm.io/gorm"
)

// AddonRepository reads addon catalog rows and their category/item links.
type AddonRepository interface {
	GetByID(id uint) (*models.Addon, error)
	ListCategoryLinks(categoryID uint) ([]models.CategoryAddon, error)
	ListItemLinks(itemID uint) ([]models.ItemAddon, error)
	WithTx(tx *gorm.DB) *GormAddonRepository
}

// GormAddonRepository is the GORM implementation.
type GormAddonRepository struct {
	db *gorm.DB
}

// NewAddonRepository creates an addon repository.
func NewAddonRepository(db *gorm.DB) *GormAddonRepository {
	return &GormAddonRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAddonRepository) WithTx(tx *gorm.DB) *GormAddonRepository {
	if tx == nil {
		return r
	}
	return &GormAddonRepository{db: tx}
}

// GetByID fetches one addon.
func (r *GormAddonRepository) GetByID(id uint) (*models.Addon, error) {
	var addon models.Addon
	if err := r.db.First(&addon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &addon, nil
}

// ListCategoryLinks lists addon links for a category with addons preloaded.
func (r *GormAddonRepository) ListCategoryLinks(categoryID uint) ([]models.CategoryAddon, error) {
	var links []models.CategoryAddon
	if err := r.db.Preload("Addon").
		Where("category_id = ?", categoryID).
		Order("id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// ListItemLinks lists item-level addon overrides with addons preloaded.
func (r *GormAddonRepository) ListItemLinks(itemID uint) ([]models.ItemAddon, error) {
	var links []models.ItemAddon
	if err := r.db.Preload("Addon").
		Where("menu_item_id = ?", itemID).
		Order("id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
