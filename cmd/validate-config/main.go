package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/nutricoach/nutricoach-api/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid.")
	fmt.Printf("  - HTTP Port: %s\n", cfg.Server.Port)
	fmt.Printf("  - Gin Mode: %s\n", cfg.Server.GinMode)
	fmt.Printf("  - Max Page Size: %d\n", cfg.Server.MaxPageSize)
	fmt.Printf("  - DB Host: %s\n", cfg.DB.Host)
	fmt.Printf("  - DB Port: %s\n", cfg.DB.Port)
	fmt.Printf("  - DB User: %s\n", cfg.DB.User)
	fmt.Printf("  - DB Password: %s\n", maskSecret(cfg.DB.Password))
	fmt.Printf("  - DB Name: %s\n", cfg.DB.DBName)
	fmt.Printf("  - DB SSL Mode: %s\n", cfg.DB.SSLMode)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 4 {
		return "***"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
