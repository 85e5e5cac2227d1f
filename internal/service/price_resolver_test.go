package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type resolverFixture struct {
	resolver *PriceResolver
	db       *gorm.DB

	snacks    models.Category
	beverages models.Category

	sandwich    models.MenuItem // flat 180, cheese via category
	chickenRoll models.MenuItem // flat 150, cheese overridden to 30 cap 2
	masalaChai  models.MenuItem // flat 30, cheese excluded
	cappuccino  models.MenuItem // variant priced
	seasonal    models.MenuItem // unavailable
	brokenFlat  models.MenuItem // flat without a price

	small models.Variant // 140, available
	large models.Variant // 180, unavailable

	cheese   models.Addon // 40, cap 3
	iceCream models.Addon // 60, never linked
}

func setupResolverTest(t *testing.T) *resolverFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:price_resolver_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{}, &models.MenuItem{}, &models.Variant{},
		&models.Addon{}, &models.CategoryAddon{}, &models.ItemAddon{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	f := &resolverFixture{db: db}
	catalog := NewCatalogService(repository.NewMenuRepository(db), repository.NewAddonRepository(db))
	f.resolver = NewPriceResolver(catalog)

	f.snacks = models.Category{Name: "Snacks"}
	f.beverages = models.Category{Name: "Hot Beverages"}
	mustCreate(t, db, &f.snacks)
	mustCreate(t, db, &f.beverages)

	price := func(value int64) *models.Money {
		m := models.NewMoneyFromDecimal(decimal.NewFromInt(value))
		return &m
	}

	f.sandwich = models.MenuItem{CategoryID: f.snacks.ID, Name: "Veg Grilled Sandwich", DietType: "veg", BasePrice: price(180), IsAvailable: true}
	f.chickenRoll = models.MenuItem{CategoryID: f.snacks.ID, Name: "Chicken Roll", DietType: "non_veg", BasePrice: price(150), IsAvailable: true}
	f.masalaChai = models.MenuItem{CategoryID: f.snacks.ID, Name: "Masala Chai", DietType: "veg", BasePrice: price(30), IsAvailable: true}
	f.cappuccino = models.MenuItem{CategoryID: f.beverages.ID, Name: "Cappuccino", DietType: "veg", IsVariantPriced: true, IsAvailable: true}
	f.seasonal = models.MenuItem{CategoryID: f.snacks.ID, Name: "Seasonal Special", DietType: "veg", BasePrice: price(200), IsAvailable: false}
	f.brokenFlat = models.MenuItem{CategoryID: f.snacks.ID, Name: "Unpriced Item", DietType: "veg", IsAvailable: true}
	mustCreate(t, db, &f.sandwich)
	mustCreate(t, db, &f.chickenRoll)
	mustCreate(t, db, &f.masalaChai)
	mustCreate(t, db, &f.cappuccino)
	mustCreate(t, db, &f.seasonal)
	mustCreate(t, db, &f.brokenFlat)

	f.small = models.Variant{MenuItemID: f.cappuccino.ID, Name: "Small", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(140)), IsAvailable: true}
	f.large = models.Variant{MenuItemID: f.cappuccino.ID, Name: "Large", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(180)), IsAvailable: false}
	mustCreate(t, db, &f.small)
	mustCreate(t, db, &f.large)

	f.cheese = models.Addon{Name: "Extra Cheese", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(40)), Unit: "slice", MaxQuantity: 3, IsAvailable: true}
	f.iceCream = models.Addon{Name: "Ice Cream Scoop", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(60)), Unit: "scoop", IsAvailable: true}
	mustCreate(t, db, &f.cheese)
	mustCreate(t, db, &f.iceCream)

	mustCreate(t, db, &models.CategoryAddon{CategoryID: f.snacks.ID, AddonID: f.cheese.ID})

	overridePrice := models.NewMoneyFromDecimal(decimal.NewFromInt(30))
	overrideCap := 2
	mustCreate(t, db, &models.ItemAddon{MenuItemID: f.chickenRoll.ID, AddonID: f.cheese.ID, IsAllowed: true, PriceOverride: &overridePrice, MaxQuantityOverride: &overrideCap})
	mustCreate(t, db, &models.ItemAddon{MenuItemID: f.masalaChai.ID, AddonID: f.cheese.ID, IsAllowed: false})

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T failed: %v", value, err)
	}
}

func TestResolveLinePriceFlatWithAddons(t *testing.T) {
	f := setupResolverTest(t)

	breakdown, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID: f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{
			{AddonID: f.cheese.ID, Quantity: 2},
		},
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !breakdown.BasePrice.Decimal.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected base 180, got %s", breakdown.BasePrice.Decimal.String())
	}
	if !breakdown.UnitTotal.Decimal.Equal(decimal.NewFromInt(260)) {
		t.Fatalf("expected unit total 260, got %s", breakdown.UnitTotal.Decimal.String())
	}
	if len(breakdown.Addons) != 1 {
		t.Fatalf("expected 1 addon entry, got %d", len(breakdown.Addons))
	}
	if !breakdown.Addons[0].Subtotal.Decimal.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected addon subtotal 80, got %s", breakdown.Addons[0].Subtotal.Decimal.String())
	}
}

func TestResolveLinePriceVariantPriced(t *testing.T) {
	f := setupResolverTest(t)

	breakdown, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID: f.cappuccino.ID,
		VariantID:  &f.small.ID,
		Quantity:   1,
	})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !breakdown.UnitTotal.Decimal.Equal(decimal.NewFromInt(140)) {
		t.Fatalf("expected 140, got %s", breakdown.UnitTotal.Decimal.String())
	}
	if breakdown.VariantName != "Small" {
		t.Fatalf("expected variant name Small, got %s", breakdown.VariantName)
	}
}

func TestResolveLinePriceVariantErrors(t *testing.T) {
	f := setupResolverTest(t)

	// variant-priced item needs a variant
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: f.cappuccino.ID, Quantity: 1}); !errors.Is(err, ErrVariantRequired) {
		t.Fatalf("expected variant required, got %v", err)
	}
	// unavailable variant
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: f.cappuccino.ID, VariantID: &f.large.ID, Quantity: 1}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected variant invalid, got %v", err)
	}
	// variant belonging to another item
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: f.sandwich.ID, VariantID: &f.small.ID, Quantity: 1}); !errors.Is(err, ErrVariantNotAllowed) {
		t.Fatalf("expected variant not allowed, got %v", err)
	}
}

func TestResolveLinePriceItemErrors(t *testing.T) {
	f := setupResolverTest(t)

	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: 999999, Quantity: 1}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: f.seasonal.ID, Quantity: 1}); !errors.Is(err, ErrMenuItemUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{MenuItemID: f.brokenFlat.ID, Quantity: 1}); !errors.Is(err, ErrItemPriceMissing) {
		t.Fatalf("expected price missing, got %v", err)
	}
}

func TestResolveLinePriceAddonRules(t *testing.T) {
	f := setupResolverTest(t)

	// unlinked addon
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.iceCream.ID, Quantity: 1}},
		Quantity:        1,
	}); !errors.Is(err, ErrAddonNotAllowed) {
		t.Fatalf("expected addon not allowed, got %v", err)
	}

	// excluded at item level
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.masalaChai.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.cheese.ID, Quantity: 1}},
		Quantity:        1,
	}); !errors.Is(err, ErrAddonNotAllowed) {
		t.Fatalf("expected excluded addon to be rejected, got %v", err)
	}

	// over the cap
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.cheese.ID, Quantity: 4}},
		Quantity:        1,
	}); !errors.Is(err, ErrAddonQuantityInvalid) {
		t.Fatalf("expected quantity invalid, got %v", err)
	}

	// zero quantity
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.cheese.ID, Quantity: 0}},
		Quantity:        1,
	}); !errors.Is(err, ErrAddonQuantityInvalid) {
		t.Fatalf("expected quantity invalid, got %v", err)
	}
}

func TestResolveLinePriceRepeatedAddonSelections(t *testing.T) {
	f := setupResolverTest(t)

	// duplicates merge before the cap check: 2+2 against cap 3 must fail
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID: f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{
			{AddonID: f.cheese.ID, Quantity: 2},
			{AddonID: f.cheese.ID, Quantity: 2},
		},
		Quantity: 1,
	}); !errors.Is(err, ErrAddonQuantityInvalid) {
		t.Fatalf("expected split selections over cap to be rejected, got %v", err)
	}

	// duplicates whose merged quantity stays within the cap price as one entry
	breakdown, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID: f.sandwich.ID,
		AddonSelections: []AddonSelectionInput{
			{AddonID: f.cheese.ID, Quantity: 1},
			{AddonID: f.cheese.ID, Quantity: 2},
		},
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if len(breakdown.Addons) != 1 {
		t.Fatalf("expected merged addon entry, got %d", len(breakdown.Addons))
	}
	if breakdown.Addons[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", breakdown.Addons[0].Quantity)
	}
	// 180 base + 40 * 3
	if !breakdown.UnitTotal.Decimal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected 300, got %s", breakdown.UnitTotal.Decimal.String())
	}
}

func TestResolveLinePriceItemOverridesWin(t *testing.T) {
	f := setupResolverTest(t)

	breakdown, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.chickenRoll.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.cheese.ID, Quantity: 2}},
		Quantity:        1,
	})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	// 150 base + overridden 30 * 2
	if !breakdown.UnitTotal.Decimal.Equal(decimal.NewFromInt(210)) {
		t.Fatalf("expected 210, got %s", breakdown.UnitTotal.Decimal.String())
	}

	// the tighter item-level cap applies
	if _, err := f.resolver.ResolveLinePrice(LinePriceInput{
		MenuItemID:      f.chickenRoll.ID,
		AddonSelections: []AddonSelectionInput{{AddonID: f.cheese.ID, Quantity: 3}},
		Quantity:        1,
	}); !errors.Is(err, ErrAddonQuantityInvalid) {
		t.Fatalf("expected cap override to reject 3, got %v", err)
	}
}
