package service

import (
	"strings"

	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
)

// CustomerService exposes customer reads together with the derived loyalty
// standing.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	settings     *SettingService
}

// NewCustomerService creates a customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, settings *SettingService) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, settings: settings}
}

// CustomerView pairs the stored aggregates with the derived tier and VIP flag.
type CustomerView struct {
	Customer *models.Customer `json:"customer"`
	Standing CustomerStanding `json:"standing"`
}

// GetCustomer fetches one customer and derives its standing.
func (s *CustomerService) GetCustomer(id uint) (*CustomerView, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.buildView(customer)
}

// FindByPhone fetches one customer by phone and derives its standing.
func (s *CustomerService) FindByPhone(phone string) (*CustomerView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrCustomerInputInvalid
	}
	customer, err := s.customerRepo.FindByPhone(phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.buildView(customer)
}

// ListCustomers lists customers with derived standings.
func (s *CustomerService) ListCustomers(filter repository.CustomerListFilter) ([]CustomerView, int64, error) {
	customers, total, err := s.customerRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	thresholds, err := s.settings.GetTierThresholds()
	if err != nil {
		return nil, 0, err
	}
	vip, err := s.settings.GetVipThreshold()
	if err != nil {
		return nil, 0, err
	}
	views := make([]CustomerView, 0, len(customers))
	for i := range customers {
		views = append(views, CustomerView{
			Customer: &customers[i],
			Standing: StandingFor(&customers[i], thresholds, vip),
		})
	}
	return views, total, nil
}

func (s *CustomerService) buildView(customer *models.Customer) (*CustomerView, error) {
	thresholds, err := s.settings.GetTierThresholds()
	if err != nil {
		return nil, err
	}
	vip, err := s.settings.GetVipThreshold()
	if err != nil {
		return nil, err
	}
	return &CustomerView{
		Customer: customer,
		Standing: StandingFor(customer, thresholds, vip),
	}, nil
}
