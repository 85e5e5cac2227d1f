package service

import (
	"sort"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
)

// CatalogService is the read-only accessor over menu items, variants and
// addons. It never mutates catalog data.
type CatalogService struct {
	menuRepo  repository.MenuRepository
	addonRepo repository.AddonRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(menuRepo repository.MenuRepository, addonRepo repository.AddonRepository) *CatalogService {
	return &CatalogService{menuRepo: menuRepo, addonRepo: addonRepo}
}

// EffectiveAddon is an addon as it applies to one menu item, after category
// links and item-level overrides are folded in.
type EffectiveAddon struct {
	AddonID     uint         `json:"addon_id"`
	Name        string       `json:"name"`
	Unit        string       `json:"unit"`
	UnitPrice   models.Money `json:"unit_price"`
	MaxQuantity int          `json:"max_quantity"` // 0 means uncapped
}

// GetMenuItem fetches a menu item with its variants. Returns (nil, nil) when
// the item does not exist.
func (s *CatalogService) GetMenuItem(id uint) (*models.MenuItem, error) {
	return s.menuRepo.GetItemByID(id)
}

// GetVariant fetches a variant scoped to its item.
func (s *CatalogService) GetVariant(itemID, variantID uint) (*models.Variant, error) {
	return s.menuRepo.GetVariant(itemID, variantID)
}

// ListCategories lists menu categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.menuRepo.ListCategories()
}

// ListItems lists menu items.
func (s *CatalogService) ListItems(filter repository.MenuItemListFilter) ([]models.MenuItem, int64, error) {
	return s.menuRepo.ListItems(filter)
}

// GetEffectiveAddons resolves the addon set permitted for an item:
// category-linked addons, minus item-level exclusions, plus item-level
// allowances. Item overrides win over category overrides, which win over the
// addon's own price and cap. Unavailable addons are not part of the set.
func (s *CatalogService) GetEffectiveAddons(item *models.MenuItem) ([]EffectiveAddon, error) {
	categoryLinks, err := s.addonRepo.ListCategoryLinks(item.CategoryID)
	if err != nil {
		return nil, err
	}
	itemLinks, err := s.addonRepo.ListItemLinks(item.ID)
	if err != nil {
		return nil, err
	}

	effective := make(map[uint]EffectiveAddon, len(categoryLinks)+len(itemLinks))
	for _, link := range categoryLinks {
		if link.Addon.ID == 0 || !link.Addon.IsAvailable {
			continue
		}
		entry := EffectiveAddon{
			AddonID:     link.AddonID,
			Name:        link.Addon.Name,
			Unit:        link.Addon.Unit,
			UnitPrice:   link.Addon.Price,
			MaxQuantity: link.Addon.MaxQuantity,
		}
		if link.PriceOverride != nil {
			entry.UnitPrice = *link.PriceOverride
		}
		effective[link.AddonID] = entry
	}

	for _, link := range itemLinks {
		if !link.IsAllowed {
			delete(effective, link.AddonID)
			continue
		}
		if link.Addon.ID == 0 || !link.Addon.IsAvailable {
			continue
		}
		entry, ok := effective[link.AddonID]
		if !ok {
			entry = EffectiveAddon{
				AddonID:     link.AddonID,
				Name:        link.Addon.Name,
				Unit:        link.Addon.Unit,
				UnitPrice:   link.Addon.Price,
				MaxQuantity: link.Addon.MaxQuantity,
			}
		}
		if link.PriceOverride != nil {
			entry.UnitPrice = *link.PriceOverride
		}
		if link.MaxQuantityOverride != nil {
			entry.MaxQuantity = *link.MaxQuantityOverride
		}
		effective[link.AddonID] = entry
	}

	result := make([]EffectiveAddon, 0, len(effective))
	for _, entry := range effective {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AddonID < result[j].AddonID })
	return result, nil
}
