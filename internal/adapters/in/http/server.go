// Package http exposes the order engine, the catalog and the account operations over
// JSON/HTTP with echo. Every route lives under /api, except /health and the Swagger UI.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"wiggy/api"
	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/core/application/usecases/queries"
	"wiggy/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	RegisterUser      commands.RegisterUserCommandHandler
	AuthenticateUser  commands.AuthenticateUserCommandHandler
	AddFavorite       commands.AddFavoriteRestaurantCommandHandler

	// Query handlers
	GetUserOrders     queries.GetUserOrdersQueryHandler
	GetUserOrder      queries.GetUserOrderQueryHandler
	GetRestaurants    queries.GetRestaurantsQueryHandler
	GetRestaurant     queries.GetRestaurantQueryHandler
	GetRestaurantMenu queries.GetRestaurantMenuQueryHandler
	GetCurrentUser    queries.GetCurrentUserQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	tokens   ports.TokenService
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, tokens ports.TokenService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e. Request bodies and parameters of the /api routes are
// validated against the embedded OpenAPI document.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}
	validate, err := OpenAPIValidator(doc, s.logger)
	if err != nil {
		return err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group("/api")

	orders := g.Group("/orders", s.requireAuth)
	orders.POST("", s.CreateOrder, validate)
	orders.GET("/my-orders", s.GetMyOrders, validate)
	orders.GET("/:id", s.GetOrder, validate)
	orders.PATCH("/:id/status", s.UpdateOrderStatus, validate)
	orders.DELETE("/:id", s.CancelOrder, validate)

	restaurants := g.Group("/restaurants")
	restaurants.GET("", s.GetRestaurants, validate)
	restaurants.GET("/:id", s.GetRestaurant, validate)
	restaurants.GET("/:id/menu", s.GetRestaurantMenu, validate)
	restaurants.POST("/:id/favorite", s.AddFavoriteRestaurant, s.requireAuth, validate)

	auth := g.Group("/auth")
	auth.POST("/register", s.RegisterUser, validate)
	auth.POST("/login", s.Login, validate)
	auth.GET("/me", s.Me, s.requireAuth, validate)

	return nil
}

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

var swaggerOnce sync.Once

// registerSwaggerDoc publishes the document to the swag registry echo-swagger reads from.
// The registry is process-wide and rejects a second registration.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		})
	})
	return nil
}
