//go:build ignore

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/examhub/examhub-api/internal/auth"
	"github.com/examhub/examhub-api/internal/database"
	"github.com/examhub/examhub-api/internal/database/models"
	"github.com/examhub/examhub-api/pkg/config"
	"github.com/examhub/examhub-api/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" {
		email = "admin@examhub.local"
	}
	if password == "" {
		password = "Admin123!"
	}
	if name == "" {
		name = "Admin"
	}

	store := database.NewUserStore(db)
	ctx := context.Background()

	if _, err := store.FindByEmail(ctx, email); err == nil {
		fmt.Printf("Admin user already exists: %s\n", email)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		log.Fatalf("failed to look up admin user: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// Seeded admin skips the verification flow
	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		IsVerified:   true,
	}
	if err := store.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("Admin user created successfully!\n")
	fmt.Printf("Email: %s\n", admin.Email)
}
