package main

import (
	"context"
	"os"

	"storerating/internal/app/auth"
	"storerating/internal/app/dsn"
	"storerating/internal/app/repository"
	"storerating/internal/app/service"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// New runs AutoMigrate for users, stores and ratings.
	repo, err := repository.New(dsnStr)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	defer repo.Close()

	log.Info("Database migration completed successfully")

	seed := service.AdminSeed{
		Name:     os.Getenv("ADMIN_NAME"),
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		Address:  os.Getenv("ADMIN_ADDRESS"),
	}
	if seed.Email == "" || seed.Password == "" {
		log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	created, err := service.EnsureAdmin(context.Background(), repo, auth.NewHasher(0), seed)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if created {
		log.Infof("Admin %s created", seed.Email)
	} else {
		log.Infof("Admin %s already exists", seed.Email)
	}
}
