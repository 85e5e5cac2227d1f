package service

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// PriceResolver computes the price of one order line. The preview endpoint and
// order creation share this resolver, so a quoted price is always the charged
// price.
type PriceResolver struct {
	catalog *CatalogService
}

// NewPriceResolver creates a price resolver.
func NewPriceResolver(catalog *CatalogService) *PriceResolver {
	return &PriceResolver{catalog: catalog}
}

// AddonSelectionInput is one requested addon on a line.
type AddonSelectionInput struct {
	AddonID  uint `json:"addon_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// LinePriceInput identifies what to price.
type LinePriceInput struct {
	MenuItemID      uint                  `json:"menu_item_id" binding:"required"`
	VariantID       *uint                 `json:"variant_id"`
	AddonSelections []AddonSelectionInput `json:"addon_selections"`
	Quantity        int                   `json:"quantity" binding:"required"`
}

// PriceBreakdown is the resolved per-unit price of a line: base price plus the
// per-addon subtotals. Quantity multiplication happens at aggregation, not
// here, so the per-unit decomposition stays displayable.
type PriceBreakdown struct {
	MenuItemID  uint                   `json:"menu_item_id"`
	ItemName    string                 `json:"item_name"`
	VariantID   *uint                  `json:"variant_id,omitempty"`
	VariantName string                 `json:"variant_name,omitempty"`
	BasePrice   models.Money           `json:"base_price"`
	Addons      models.AddonSelections `json:"addons"`
	UnitTotal   models.Money           `json:"unit_total"`
}

// ResolveLinePrice prices one line against the current catalog.
func (r *PriceResolver) ResolveLinePrice(input LinePriceInput) (*PriceBreakdown, error) {
	item, err := r.catalog.GetMenuItem(input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	if !item.IsAvailable {
		return nil, ErrMenuItemUnavailable
	}

	breakdown := &PriceBreakdown{
		MenuItemID: item.ID,
		ItemName:   item.Name,
	}

	var base decimal.Decimal
	if item.IsVariantPriced {
		if input.VariantID == nil {
			return nil, ErrVariantRequired
		}
		variant, err := r.catalog.GetVariant(item.ID, *input.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || !variant.IsAvailable {
			return nil, ErrVariantInvalid
		}
		base = variant.Price.Decimal
		breakdown.VariantID = input.VariantID
		breakdown.VariantName = variant.Name
	} else {
		if input.VariantID != nil {
			return nil, ErrVariantNotAllowed
		}
		if item.BasePrice == nil {
			return nil, ErrItemPriceMissing
		}
		base = item.BasePrice.Decimal
	}
	breakdown.BasePrice = models.NewMoneyFromDecimal(base)

	total := base
	if len(input.AddonSelections) > 0 {
		effective, err := r.catalog.GetEffectiveAddons(item)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]EffectiveAddon, len(effective))
		for _, entry := range effective {
			byID[entry.AddonID] = entry
		}

		// selections are a set keyed by addon; repeated entries merge into
		// one before the cap applies
		merged := make([]AddonSelectionInput, 0, len(input.AddonSelections))
		mergedIndex := make(map[uint]int, len(input.AddonSelections))
		for _, selection := range input.AddonSelections {
			if selection.Quantity < constants.OrderLineMinQuantity {
				return nil, ErrAddonQuantityInvalid
			}
			if i, ok := mergedIndex[selection.AddonID]; ok {
				merged[i].Quantity += selection.Quantity
				continue
			}
			mergedIndex[selection.AddonID] = len(merged)
			merged = append(merged, selection)
		}

		breakdown.Addons = make(models.AddonSelections, 0, len(merged))
		for _, selection := range merged {
			entry, ok := byID[selection.AddonID]
			if !ok {
				return nil, ErrAddonNotAllowed
			}
			if entry.MaxQuantity > 0 && selection.Quantity > entry.MaxQuantity {
				return nil, ErrAddonQuantityInvalid
			}
			subtotal := entry.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(selection.Quantity)))
			breakdown.Addons = append(breakdown.Addons, models.AddonSelection{
				AddonID:   entry.AddonID,
				Name:      entry.Name,
				UnitPrice: entry.UnitPrice,
				Quantity:  selection.Quantity,
				Subtotal:  models.NewMoneyFromDecimal(subtotal),
			})
			total = total.Add(subtotal)
		}
	}

	breakdown.UnitTotal = models.NewMoneyFromDecimal(total)
	return breakdown, nil
}
