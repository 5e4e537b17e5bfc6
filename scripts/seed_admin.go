// Seed script for the first admin account.
//
// Admin accounts cannot be created through the registration endpoint, so a
// fresh deployment runs this once before logging in.
//
// Usage: go run scripts/seed_admin.go -email admin@example.com -password <pw>

package main

import (
	"errors"
	"flag"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	name := flag.String("name", "Admin", "display name of the admin account")
	email := flag.String("email", "", "email of the admin account")
	password := flag.String("password", "", "password of the admin account")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	users := repository.NewUserRepository(db)

	if _, err := users.FindByEmail(*email); err == nil {
		log.Fatalf("a user with email %s already exists", *email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to check existing user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &model.User{
		Name:     *name,
		Email:    *email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := users.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin account %s created (id=%d)", *email, admin.ID)
}
