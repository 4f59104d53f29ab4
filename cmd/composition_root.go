package cmd

import (
	"log/slog"

	httpin "wiggy/internal/adapters/in/http"
	"wiggy/internal/adapters/out/postgres"
	"wiggy/internal/adapters/out/postgres/orderrepo"
	"wiggy/internal/adapters/out/postgres/restaurantrepo"
	"wiggy/internal/adapters/out/postgres/userrepo"
	"wiggy/internal/adapters/out/security"
	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/core/application/usecases/queries"
	"wiggy/internal/core/domain/services"
	"wiggy/internal/core/ports"
	"wiggy/internal/jobs"

	"gorm.io/gorm"
)

// Dependencies are the adapters the composition root cannot build from Config alone.
type Dependencies struct {
	DB *gorm.DB
	// Publisher may be nil; committed events are then dropped.
	Publisher ports.EventPublisher
	// Hasher defaults to argon2 with library defaults.
	Hasher ports.PasswordHasher
	Logger *slog.Logger
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	messenger  *services.StatusMessenger
	quotes     *services.QuoteGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, deps Dependencies) (*CompositionRoot, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	hasher := deps.Hasher
	if hasher == nil {
		hasher = security.NewArgon2Hasher()
	}
	tokens, err := security.NewJWTService(config.JWTSecret, config.JWTExpiry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     deps.DB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(deps.DB, deps.Publisher, logger),
		hasher:     hasher,
		tokens:     tokens,
		messenger:  services.NewStatusMessenger(nil),
		quotes:     services.NewQuoteGenerator(nil),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderPlacer(c.messenger))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.messenger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.messenger)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orderUoWFactory(), c.messenger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens, c.quotes)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateAddFavoriteRestaurantCommandHandler() commands.AddFavoriteRestaurantCommandHandler {
	var f commands.FavoriteUoWFactory = FuncFavoriteUoWFactory(func() commands.FavoriteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFavoriteRestaurantCommandHandler(f)
}

// Query handlers read outside any transaction, so their repositories track nothing.

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetUserOrderQueryHandler() queries.GetUserOrderQueryHandler {
	return queries.NewGetUserOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(restaurantrepo.NewGormRestaurantRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(restaurantrepo.NewGormRestaurantRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(restaurantrepo.NewGormRestaurantRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(userrepo.NewGormUserRepository(c.gormDB, nil))
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		RegisterUser:      c.CreateRegisterUserCommandHandler(),
		AuthenticateUser:  c.CreateAuthenticateUserCommandHandler(),
		AddFavorite:       c.CreateAddFavoriteRestaurantCommandHandler(),
		GetUserOrders:     c.CreateGetUserOrdersQueryHandler(),
		GetUserOrder:      c.CreateGetUserOrderQueryHandler(),
		GetRestaurants:    c.CreateGetRestaurantsQueryHandler(),
		GetRestaurant:     c.CreateGetRestaurantQueryHandler(),
		GetRestaurantMenu: c.CreateGetRestaurantMenuQueryHandler(),
		GetCurrentUser:    c.CreateGetCurrentUserQueryHandler(),
	}, c.tokens, c.logger)
}

// CreateJobManager returns a manager with the order progress job when it is enabled,
// otherwise an empty one.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if !c.config.OrderProgressEnabled {
		return jobs.NewJobManager()
	}
	handler := c.CreateAdvanceOrdersCommandHandler()
	return jobs.NewJobManager(jobs.NewOrderProgressJob(
		&handler,
		c.config.OrderProgressSchedule,
		c.config.OrderProgressAge,
		orderProgressBatchSize,
		c.logger,
	))
}

const orderProgressBatchSize = 50

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFavoriteUoWFactory func() commands.FavoriteUoW

func (f FuncFavoriteUoWFactory) Create() commands.FavoriteUoW {
	return f()
}
