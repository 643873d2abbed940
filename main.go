package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()

	if os.Getenv("SESSION_SECRET") == "" {
		log.Fatal("missing required env SESSION_SECRET")
	}

	// Init DB
	db := initDatabase()

	// Schema evolves additively
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	users := store.NewGormUserStore(db)
	products := store.NewGormProductStore(db)

	if err := seedAdmin(users); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	sessions := initSessionStore()

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getenv("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, users, products, sessions)

	port := getenv("PORT", "8080")
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// initSessionStore picks Redis when configured, in-process memory otherwise.
func initSessionStore() session.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Sessions in memory (set REDIS_ADDR to survive restarts)")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}

	log.Printf("Sessions in Redis at %s", addr)
	return session.NewRedisStore(client)
}

// seedAdmin bootstraps the first admin account from the environment, so a
// fresh deployment has someone who can reach /admin.
func seedAdmin(users store.UserStore) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil // already seeded
	}

	admin := models.User{Username: username, IsAdmin: true}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := users.Insert(ctx, &admin); err != nil {
		return err
	}
	log.Printf("Seeded admin user %q", username)
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
