package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type commandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type queryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists the use cases the HTTP surface exposes.
type Handlers struct {
	AddCartItem         commandHandler[commands.AddCartItemCommand]
	SetCartItemQuantity commandHandler[commands.SetCartItemQuantityCommand]
	ClearCart           commandHandler[commands.ClearCartCommand]
	Checkout            commandHandler[commands.CheckoutCommand]
	RequestTransition   commandHandler[commands.RequestTransitionCommand]
	ClaimOrder          commandHandler[commands.ClaimOrderCommand]
	ReleaseOrder        commandHandler[commands.ReleaseOrderCommand]
	CreateDriver        commandHandler[commands.CreateDriverCommand]
	ChangeAvailability  commandHandler[commands.ChangeDriverAvailabilityCommand]
	CreateBusiness      commandHandler[commands.CreateBusinessCommand]
	CreateProduct       commandHandler[commands.CreateProductCommand]

	GetCart            queryHandler[queries.GetCartQuery, queries.CartView]
	GetClaimableOrders queryHandler[queries.GetClaimableOrdersQuery, []queries.ClaimableOrder]
	GetOrderTracking   queryHandler[queries.GetOrderTrackingQuery, queries.OrderTracking]
	GetDrivers         queryHandler[queries.GetDriversQuery, []queries.DriverView]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h                 Handlers
	metrics           *metrics.Metrics
	logger            *slog.Logger
	claimablePageSize int
}

// NewServer creates a new HTTP server. claimablePageSize is used when a
// claimable listing does not ask for a limit.
func NewServer(h Handlers, m *metrics.Metrics, logger *slog.Logger, claimablePageSize int) *Server {
	return &Server{
		h:                 h,
		metrics:           m,
		logger:            logger.With("component", "http_server"),
		claimablePageSize: claimablePageSize,
	}
}

// Register mounts the routes and middleware on e.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.Recover())
	e.Use(s.measure)
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1", withActor)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PUT("/cart/items/:productID", s.SetCartItemQuantity)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.Checkout)
	api.GET("/orders/claimable", s.GetClaimableOrders)
	api.GET("/orders/:orderID/tracking", s.GetOrderTracking)
	api.POST("/orders/:orderID/transitions", s.RequestTransition)
	api.POST("/orders/:orderID/claim", s.ClaimOrder)
	api.POST("/orders/:orderID/release", s.ReleaseOrder)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:driverID/availability", s.ChangeDriverAvailability)

	api.POST("/businesses", s.CreateBusiness)
	api.POST("/businesses/:businessID/products", s.CreateProduct)
}

// New builds an echo instance with the server registered.
func New(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	s.Register(e)
	return e
}
