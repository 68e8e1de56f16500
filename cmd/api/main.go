package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront-api/internal/client"
	"storefront-api/internal/config"
	"storefront-api/internal/handler"
	"storefront-api/internal/repository"
	"storefront-api/internal/server"
	"storefront-api/internal/service"
	"storefront-api/internal/token"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.DatabaseURL)
	gateway := client.NewZarinpalClient(&cfg.Zarinpal)

	issuer := token.NewIssuer(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	verifier := token.NewVerifier(cfg.Auth.SecretKey)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	discountRepo := repository.NewDiscountRepository(db)

	userService := service.NewUserService(userRepo, productRepo, issuer)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(db, cartRepo, orderRepo)
	paymentService := service.NewPaymentService(gateway, orderRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	discountService := service.NewDiscountService(discountRepo)

	srv := server.NewServer(
		verifier,
		handler.NewUserHandler(userService),
		handler.NewCartHandler(cartService),
		handler.NewOrderHandler(checkoutService),
		handler.NewPaymentHandler(paymentService),
		handler.NewCatalogHandler(catalogService),
		handler.NewReviewHandler(reviewService),
		handler.NewAdminHandler(userService, catalogService, reviewService, discountService),
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
