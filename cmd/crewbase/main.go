package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/studentwork-dev/crewbase/db"
	"github.com/studentwork-dev/crewbase/internal/auth"
	"github.com/studentwork-dev/crewbase/internal/handlers"
	"github.com/studentwork-dev/crewbase/internal/router"
	"github.com/studentwork-dev/crewbase/internal/store"
)

func main() {
	var err error

	err = godotenv.Load()

	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err = auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	var uri string

	if uri = os.Getenv("MONGO_URI"); uri == "" {
		uri = "mongodb://localhost:27017"
		log.Println("MONGO_URI not set, defaulting to mongodb://localhost:27017")
	}

	var dbName string

	if dbName = os.Getenv("MONGO_DB"); dbName == "" {
		dbName = "crewbase"
	}

	if err = db.Connect(uri, dbName); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	store.Init(db.Database)
	handlers.Init()

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err = r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
