package main

import (
	"log"

	"estatehub/internal/config"
	"estatehub/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Local development keeps secrets in .env; absence is fine in prod.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.New()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
