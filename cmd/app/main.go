package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vlatan/transcript-api/internal/server"
)

func main() {

	// Load the local .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using the process environment")
	}

	// Create and run the server
	if err := server.NewServer().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
