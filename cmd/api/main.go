package main

import (
	"log"

	"pix_server/internal/adapter/http/routes"
	"pix_server/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PIX Checkout API
// @version         1.0
// @description     PIX checkout: charge creation, gateway webhooks and WhatsApp notifications.

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
