package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups menu items.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // primary key
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`  // display name
	SortOrder int            `gorm:"default:0;index" json:"sort_order"` // sort weight
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // created at
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// MenuItem is a sellable catalog entry. The order core only reads this table.
type MenuItem struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                // primary key
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`                   // category reference
	Name            string         `gorm:"not null;index" json:"name"`                          // display name
	Description     string         `gorm:"type:varchar(1000)" json:"description,omitempty"`     // short description
	DietType        string         `gorm:"type:varchar(20);not null" json:"diet_type"`          // veg / non_veg / egg
	BasePrice       *Money         `gorm:"type:decimal(20,2)" json:"base_price,omitempty"`      // flat price; nil when variant-priced
	IsVariantPriced bool           `gorm:"not null;default:false" json:"is_variant_priced"`     // price comes from a variant
	IsAvailable     bool           `gorm:"default:true;index" json:"is_available"`              // availability flag
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`                   // sort weight
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                             // created at
	UpdatedAt       time.Time      `json:"updated_at"`                                          // updated at
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                      // soft delete

	Category Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // category
	Variants []Variant `gorm:"foreignKey:MenuItemID" json:"variants,omitempty"` // priced variants
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}

// Variant is a priced option of a menu item (size/portion). A variant-priced
// item must carry at least one variant and every priced line references
// exactly one available variant.
type Variant struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                                         // primary key
	MenuItemID  uint           `gorm:"not null;index;uniqueIndex:idx_variant_item_name" json:"menu_item_id"`         // owning item
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_variant_item_name" json:"name"`     // variant name (unique per item)
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                           // variant price
	IsAvailable bool           `gorm:"default:true;index" json:"is_available"`                                       // availability flag
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                                            // sort weight
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                                      // created at
	UpdatedAt   time.Time      `json:"updated_at"`                                                                   // updated at
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                               // soft delete
}

// TableName sets the table name.
func (Variant) TableName() string {
	return "variants"
}

// Addon is an independently priced extra, linkable to categories and items.
type Addon struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // primary key
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`                   // display name
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // base price
	Unit        string         `gorm:"type:varchar(50)" json:"unit,omitempty"`             // unit descriptor (piece, scoop)
	MaxQuantity int            `gorm:"not null;default:0" json:"max_quantity"`             // default per-line cap (0 = uncapped)
	IsAvailable bool           `gorm:"default:true;index" json:"is_available"`             // availability flag
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // created at
	UpdatedAt   time.Time      `json:"updated_at"`                                         // updated at
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete
}

// TableName sets the table name.
func (Addon) TableName() string {
	return "addons"
}

// CategoryAddon links an addon to a category, optionally overriding its price.
type CategoryAddon struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                                       // primary key
	CategoryID    uint      `gorm:"not null;index;uniqueIndex:idx_category_addon" json:"category_id"`          // category reference
	AddonID       uint      `gorm:"not null;index;uniqueIndex:idx_category_addon" json:"addon_id"`             // addon reference
	PriceOverride *Money    `gorm:"type:decimal(20,2)" json:"price_override,omitempty"`                        // category-level price override
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                                   // created at

	Addon Addon `gorm:"foreignKey:AddonID" json:"addon,omitempty"` // linked addon
}

// TableName sets the table name.
func (CategoryAddon) TableName() string {
	return "category_addons"
}

// ItemAddon overrides addon rules for a specific menu item. IsAllowed=false
// removes a category-linked addon from the item; IsAllowed=true links the
// addon directly with optional price and cap overrides.
type ItemAddon struct {
	ID                  uint      `gorm:"primarykey" json:"id"`                                               // primary key
	MenuItemID          uint      `gorm:"not null;index;uniqueIndex:idx_item_addon" json:"menu_item_id"`      // item reference
	AddonID             uint      `gorm:"not null;index;uniqueIndex:idx_item_addon" json:"addon_id"`          // addon reference
	IsAllowed           bool      `gorm:"not null;default:true" json:"is_allowed"`                            // false = explicit exclusion
	PriceOverride       *Money    `gorm:"type:decimal(20,2)" json:"price_override,omitempty"`                 // item-level price override
	MaxQuantityOverride *int      `json:"max_quantity_override,omitempty"`                                    // item-level cap override
	CreatedAt           time.Time `gorm:"index" json:"created_at"`                                            // created at

	Addon Addon `gorm:"foreignKey:AddonID" json:"addon,omitempty"` // linked addon
}

// TableName sets the table name.
func (ItemAddon) TableName() string {
	return "item_addons"
}
