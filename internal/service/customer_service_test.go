package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCustomerServiceTest(t *testing.T) (*CustomerService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:customer_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCustomerService(repository.NewCustomerRepository(db), NewSettingService(repository.NewSettingRepository(db)))
	return svc, db
}

func TestFindByPhone(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	phone := "9811111111"
	customer := models.Customer{
		Name:          "Asha",
		Phone:         &phone,
		TotalOrders:   3,
		TotalSpent:    models.NewMoneyFromDecimal(decimal.NewFromInt(1200)),
		LoyaltyPoints: 120,
		IsActive:      true,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	view, err := svc.FindByPhone(" 9811111111 ")
	if err != nil {
		t.Fatalf("find by phone failed: %v", err)
	}
	if view.Customer.ID != customer.ID {
		t.Fatalf("unexpected customer: %d", view.Customer.ID)
	}
	if view.Standing.Tier != constants.TierSilver {
		t.Fatalf("expected silver at 1200 spend, got %s", view.Standing.Tier)
	}

	if _, err := svc.FindByPhone("9800000000"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	for _, blank := range []string{"", "   "} {
		if _, err := svc.FindByPhone(blank); !errors.Is(err, ErrCustomerInputInvalid) {
			t.Fatalf("expected input invalid for %q, got %v", blank, err)
		}
	}
}
