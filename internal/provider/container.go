package provider

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/authz"
	"github.com/rajat6235/Robusters-POS-sub001/internal/cache"
	"github.com/rajat6235/Robusters-POS-sub001/internal/config"
	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/queue"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
	"github.com/rajat6235/Robusters-POS-sub001/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo        repository.UserRepository
	MenuRepo        repository.MenuRepository
	AddonRepo       repository.AddonRepository
	CustomerRepo    repository.CustomerRepository
	OrderRepo       repository.OrderRepository
	SettingRepo     repository.SettingRepository
	ActivityLogRepo repository.ActivityLogRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	CatalogService  *service.CatalogService
	PriceResolver   *service.PriceResolver
	SettingService  *service.SettingService
	OrderService    *service.OrderService
	CustomerService *service.CustomerService
	ActivityService *service.ActivityService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.MenuRepo = repository.NewMenuRepository(db)
	c.AddonRepo = repository.NewAddonRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.ActivityLogRepo = repository.NewActivityLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.MenuRepo, c.AddonRepo)
	c.PriceResolver = service.NewPriceResolver(c.CatalogService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CustomerRepo, c.PriceResolver, c.SettingService, c.QueueClient)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.SettingService)
	c.ActivityService = service.NewActivityService(c.ActivityLogRepo)
}
