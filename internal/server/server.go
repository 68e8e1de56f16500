package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"storefront-api/internal/handler"
	"storefront-api/internal/middleware"
	"storefront-api/internal/token"
)

type Server struct {
	echo     *echo.Echo
	verifier *token.Verifier

	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	catalogHandler *handler.CatalogHandler
	reviewHandler  *handler.ReviewHandler
	adminHandler   *handler.AdminHandler
}

func NewServer(
	verifier *token.Verifier,
	userHandler *handler.UserHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	catalogHandler *handler.CatalogHandler,
	reviewHandler *handler.ReviewHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		verifier:       verifier,
		userHandler:    userHandler,
		cartHandler:    cartHandler,
		orderHandler:   orderHandler,
		paymentHandler: paymentHandler,
		catalogHandler: catalogHandler,
		reviewHandler:  reviewHandler,
		adminHandler:   adminHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(s.verifier)

	// -------- auth & favorites --------
	auth := api.Group("/auth")
	auth.POST("/register", s.userHandler.Register)
	auth.POST("/login", s.userHandler.Login)

	favorites := auth.Group("/favorites", requireAuth)
	favorites.GET("", s.userHandler.Favorites)
	favorites.POST("/:productId", s.userHandler.AddFavorite)
	favorites.DELETE("/:productId", s.userHandler.RemoveFavorite)

	// -------- catalog --------
	products := api.Group("/products", requireAuth)
	products.POST("", s.catalogHandler.CreateProduct)
	products.GET("", s.catalogHandler.ListProducts)
	products.GET("/:id", s.catalogHandler.GetProduct)

	categories := api.Group("/categories", requireAuth)
	categories.POST("", s.catalogHandler.CreateCategory)
	categories.GET("", s.catalogHandler.ListCategories)

	// -------- cart & checkout --------
	cart := api.Group("/cart", requireAuth)
	cart.POST("/:userId", s.cartHandler.AddItem)
	cart.GET("/:userId", s.cartHandler.Get)

	orders := api.Group("/orders", requireAuth)
	orders.POST("/:userId", s.orderHandler.Checkout)
	orders.GET("/:userId", s.orderHandler.Get)

	// -------- payment gateway --------
	payment := api.Group("/payment", requireAuth)
	payment.POST("/pay", s.paymentHandler.Pay)
	payment.GET("/verify", s.paymentHandler.Verify)

	// -------- reviews --------
	reviews := api.Group("/reviews", requireAuth)
	reviews.POST("/:productId", s.reviewHandler.Create)

	// -------- admin --------
	admin := api.Group("/admin")
	admin.POST("/register", s.userHandler.RegisterAdmin)
	admin.POST("/login", s.userHandler.Login)

	managed := admin.Group("", requireAuth, middleware.RequireAdmin())
	managed.GET("/users", s.adminHandler.ListUsers)
	managed.DELETE("/users/:id", s.adminHandler.DeleteUser)
	managed.GET("/products", s.adminHandler.ListProducts)
	managed.DELETE("/products/:id", s.adminHandler.DeleteProduct)
	managed.GET("/comments", s.adminHandler.ListReviews)
	managed.DELETE("/comments/:id", s.adminHandler.DeleteReview)
	managed.POST("/discounts", s.adminHandler.CreateDiscount)
	managed.GET("/discounts", s.adminHandler.ListDiscounts)
	managed.DELETE("/discounts/:id", s.adminHandler.DeleteDiscount)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router, mainly for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
