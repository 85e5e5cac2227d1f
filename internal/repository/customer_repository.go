package repository

import (
	"errors"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerRepository is the customer data accessor. Aggregate mutations use
// SQL-level increments so concurrent transactions never lose updates.
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	FindByPhone(phone string) (*models.Customer, error)
	FindByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	ApplyAggregates(id uint, orderDelta int, spentDelta decimal.Decimal, pointsDelta int) error
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
	WithTx(tx *gorm.DB) *GormCustomerRepository
}

// GormCustomerRepository is the GORM implementation.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// GetByID fetches a customer.
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// FindByPhone fetches a customer by phone.
func (r *GormCustomerRepository) FindByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// FindByEmail fetches a customer by email.
func (r *GormCustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create inserts a customer; uniqueness violations surface as
// gorm.ErrDuplicatedKey for the caller to resolve.
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// ApplyAggregates adjusts the running aggregates in place. Deltas may be
// negative (cancellation reversal).
func (r *GormCustomerRepository) ApplyAggregates(id uint, orderDelta int, spentDelta decimal.Decimal, pointsDelta int) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_orders":   gorm.Expr("total_orders + ?", orderDelta),
		"total_spent":    gorm.Expr("total_spent + ?", spentDelta),
		"loyalty_points": gorm.Expr("loyalty_points + ?", pointsDelta),
	}).Error
}

// List lists customers.
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var customers []models.Customer
	if err := query.Order("id desc").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}
