package main

import (
	"context"
	"fmt"

	"storerating/internal/app/dsn"
	"storerating/internal/app/rating"
	"storerating/internal/app/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// checkdb prints every store with its rating count and average, read
// straight from the database without migrating it.
func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	repo := repository.NewWithDB(db)
	defer repo.Close()

	stores, err := repo.ListStoresWithRatings(context.Background())
	if err != nil {
		log.Fatal("Failed to get stores:", err)
	}

	fmt.Println("Stores in database:")
	for _, store := range stores {
		avg := "no ratings yet"
		if s := rating.Format(rating.Average(store.RatingValues())); s != nil {
			avg = *s
		}
		fmt.Printf("ID: %d, Name: %s, Owner: %d, Ratings: %d, Average: %s\n",
			store.ID, store.Name, store.OwnerID, len(store.Ratings), avg)
	}
}
