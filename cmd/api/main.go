package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"futurefunded/internal/client"
	"futurefunded/internal/config"
	"futurefunded/internal/repository"
	"futurefunded/internal/server"
	"futurefunded/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
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

	db := client.InitSQLiteClient(cfg.DatabasePath)
	donationRepo := repository.NewDonationRepository(db)

	stripeClient := client.NewStripeClient(cfg.Stripe.SecretKey)
	paypalClient := client.NewPayPalClient(&cfg.PayPal)

	paymentService := service.NewPaymentService(
		cfg.DemoMode,
		stripeClient,
		paypalClient,
		donationRepo,
	)

	srv := server.NewServer(paymentService, cfg.DemoMode)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	if cfg.DemoMode {
		log.Println("Demo mode on: provider responses are synthesized locally")
	}

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error:", err)
	}
}
