package main

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/config"
	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	var managerCount int64
	models.DB.Model(&models.User{}).Where("username = ?", "manager").Count(&managerCount)
	if managerCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash manager password: %v", err)
		} else if err := models.DB.Create(&models.User{
			Username:     "manager",
			PasswordHash: string(hash),
			DisplayName:  "Counter Manager",
			Role:         constants.RoleManager,
			IsActive:     true,
		}).Error; err != nil {
			stdLog.Printf("Failed to create manager account: %v", err)
		} else {
			stdLog.Printf("Created manager account (change the default password)")
		}
	} else {
		stdLog.Printf("Manager account already exists")
	}

	money := func(value string) models.Money {
		return models.NewMoneyFromDecimal(decimal.RequireFromString(value))
	}
	moneyPtr := func(value string) *models.Money {
		m := money(value)
		return &m
	}
	intPtr := func(value int) *int {
		return &value
	}

	categories := []models.Category{
		{Name: "Hot Beverages", SortOrder: 10},
		{Name: "Cold Beverages", SortOrder: 20},
		{Name: "Snacks", SortOrder: 30},
		{Name: "Desserts", SortOrder: 40},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	items := []models.MenuItem{
		{
			CategoryID:  categoryIDs["Hot Beverages"],
			Name:        "Masala Chai",
			Description: "Spiced milk tea brewed fresh per cup",
			DietType:    constants.DietTypeVeg,
			BasePrice:   moneyPtr("30"),
			SortOrder:   10,
			IsAvailable: true,
		},
		{
			CategoryID:      categoryIDs["Hot Beverages"],
			Name:            "Cappuccino",
			Description:     "Espresso with steamed milk foam",
			DietType:        constants.DietTypeVeg,
			IsVariantPriced: true,
			SortOrder:       20,
			IsAvailable:     true,
		},
		{
			CategoryID:  categoryIDs["Cold Beverages"],
			Name:        "Cold Coffee",
			Description: "Blended iced coffee with milk",
			DietType:    constants.DietTypeVeg,
			BasePrice:   moneyPtr("180"),
			SortOrder:   10,
			IsAvailable: true,
		},
		{
			CategoryID:      categoryIDs["Cold Beverages"],
			Name:            "Fresh Lime Soda",
			Description:     "Sweet or salted, made to order",
			DietType:        constants.DietTypeVeg,
			IsVariantPriced: true,
			SortOrder:       20,
			IsAvailable:     true,
		},
		{
			CategoryID:  categoryIDs["Snacks"],
			Name:        "Veg Grilled Sandwich",
			Description: "Three-layer grilled sandwich with chutney",
			DietType:    constants.DietTypeVeg,
			BasePrice:   moneyPtr("120"),
			SortOrder:   10,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Snacks"],
			Name:        "Chicken Roll",
			Description: "Egg paratha wrap with grilled chicken",
			DietType:    constants.DietTypeNonVeg,
			BasePrice:   moneyPtr("150"),
			SortOrder:   20,
			IsAvailable: true,
		},
		{
			CategoryID:  categoryIDs["Desserts"],
			Name:        "Chocolate Brownie",
			Description: "Served warm",
			DietType:    constants.DietTypeEgg,
			BasePrice:   moneyPtr("90"),
			SortOrder:   10,
			IsAvailable: true,
		},
	}
	for _, item := range items {
		var existing models.MenuItem
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create menu item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created menu item: %s", item.Name)
			}
		} else {
			stdLog.Printf("Menu item already exists: %s", item.Name)
		}
	}

	itemIDs := map[string]uint{}
	var itemList []models.MenuItem
	if err := models.DB.Find(&itemList).Error; err != nil {
		stdLog.Printf("Failed to load menu items: %v", err)
	}
	for _, item := range itemList {
		itemIDs[item.Name] = item.ID
	}

	variants := []models.Variant{
		{MenuItemID: itemIDs["Cappuccino"], Name: "Small", Price: money("140"), SortOrder: 10, IsAvailable: true},
		{MenuItemID: itemIDs["Cappuccino"], Name: "Large", Price: money("180"), SortOrder: 20, IsAvailable: true},
		{MenuItemID: itemIDs["Fresh Lime Soda"], Name: "Regular", Price: money("70"), SortOrder: 10, IsAvailable: true},
		{MenuItemID: itemIDs["Fresh Lime Soda"], Name: "Jumbo", Price: money("100"), SortOrder: 20, IsAvailable: true},
	}
	for _, variant := range variants {
		if variant.MenuItemID == 0 {
			continue
		}
		var existing models.Variant
		if err := models.DB.Where("menu_item_id = ? AND name = ?", variant.MenuItemID, variant.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&variant).Error; err != nil {
				stdLog.Printf("Failed to create variant %s: %v", variant.Name, err)
			} else {
				stdLog.Printf("Created variant: %s", variant.Name)
			}
		}
	}

	addons := []models.Addon{
		{Name: "Extra Cheese", Price: money("40"), Unit: "slice", MaxQuantity: 3, IsAvailable: true},
		{Name: "Extra Shot", Price: money("50"), Unit: "shot", MaxQuantity: 2, IsAvailable: true},
		{Name: "Whipped Cream", Price: money("30"), Unit: "scoop", IsAvailable: true},
		{Name: "Ice Cream Scoop", Price: money("60"), Unit: "scoop", MaxQuantity: 2, IsAvailable: true},
	}
	for _, addon := range addons {
		var existing models.Addon
		if err := models.DB.Where("name = ?", addon.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&addon).Error; err != nil {
				stdLog.Printf("Failed to create addon %s: %v", addon.Name, err)
			} else {
				stdLog.Printf("Created addon: %s", addon.Name)
			}
		}
	}

	addonIDs := map[string]uint{}
	var addonList []models.Addon
	if err := models.DB.Find(&addonList).Error; err != nil {
		stdLog.Printf("Failed to load addons: %v", err)
	}
	for _, addon := range addonList {
		addonIDs[addon.Name] = addon.ID
	}

	categoryAddons := []models.CategoryAddon{
		{CategoryID: categoryIDs["Hot Beverages"], AddonID: addonIDs["Extra Shot"]},
		{CategoryID: categoryIDs["Cold Beverages"], AddonID: addonIDs["Whipped Cream"]},
		{CategoryID: categoryIDs["Cold Beverages"], AddonID: addonIDs["Ice Cream Scoop"]},
		{CategoryID: categoryIDs["Snacks"], AddonID: addonIDs["Extra Cheese"]},
	}
	for _, link := range categoryAddons {
		if link.CategoryID == 0 || link.AddonID == 0 {
			continue
		}
		var existing models.CategoryAddon
		if err := models.DB.Where("category_id = ? AND addon_id = ?", link.CategoryID, link.AddonID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&link).Error; err != nil {
				stdLog.Printf("Failed to link category addon: %v", err)
			}
		}
	}

	itemAddons := []models.ItemAddon{
		// chai never takes an espresso shot
		{MenuItemID: itemIDs["Masala Chai"], AddonID: addonIDs["Extra Shot"], IsAllowed: false},
		// cheaper cheese on the chicken roll, capped tighter
		{MenuItemID: itemIDs["Chicken Roll"], AddonID: addonIDs["Extra Cheese"], IsAllowed: true, PriceOverride: moneyPtr("30"), MaxQuantityOverride: intPtr(2)},
		// brownie sells ice cream directly
		{MenuItemID: itemIDs["Chocolate Brownie"], AddonID: addonIDs["Ice Cream Scoop"], IsAllowed: true},
	}
	for _, link := range itemAddons {
		if link.MenuItemID == 0 || link.AddonID == 0 {
			continue
		}
		var existing models.ItemAddon
		if err := models.DB.Where("menu_item_id = ? AND addon_id = ?", link.MenuItemID, link.AddonID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&link).Error; err != nil {
				stdLog.Printf("Failed to link item addon: %v", err)
			}
		}
	}

	settings := []models.Setting{
		{Key: constants.SettingKeyLoyaltyRatio, ValueJSON: models.JSON(map[string]interface{}{
			constants.SettingFieldSpendAmount:  "10",
			constants.SettingFieldPointsEarned: 1,
		})},
		{Key: constants.SettingKeyTierThresholds, ValueJSON: models.JSON(map[string]interface{}{
			"bronze":   "0",
			"silver":   "1000",
			"gold":     "5000",
			"platinum": "10000",
		})},
		{Key: constants.SettingKeyVipThreshold, ValueJSON: models.JSON(map[string]interface{}{
			constants.SettingFieldMinOrders: 10,
		})},
	}
	for _, setting := range settings {
		var existing models.Setting
		if err := models.DB.Where("key = ?", setting.Key).First(&existing).Error; err != nil {
			if err := models.DB.Create(&setting).Error; err != nil {
				stdLog.Printf("Failed to create setting %s: %v", setting.Key, err)
			} else {
				stdLog.Printf("Created setting: %s", setting.Key)
			}
		} else {
			stdLog.Printf("Setting already exists: %s", setting.Key)
		}
	}

	stdLog.Println("Seed completed")
}
