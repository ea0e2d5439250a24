package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anand7670/portfolio-backend/api"
	appconfig "github.com/anand7670/portfolio-backend/config"
	"github.com/anand7670/portfolio-backend/database"
	"github.com/anand7670/portfolio-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := appconfig.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		appconfig.GetString(cfg, "DB_HOST", "localhost"),
		appconfig.GetString(cfg, "DB_USER", "postgres"),
		appconfig.GetString(cfg, "DB_PASSWORD", ""),
		appconfig.GetString(cfg, "DB_NAME", "portfolio"),
		appconfig.GetString(cfg, "DB_PORT", "5432"),
		appconfig.GetString(cfg, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := currentDB.Migrate(); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	// First-boot bootstrap: admin credential, portfolio defaults, starter catalog
	adminEmail := appconfig.GetString(cfg, "ADMIN_EMAIL", "admin@anandyadav.com")
	adminPassword := appconfig.GetString(cfg, "ADMIN_PASSWORD", "admin123")
	if err := currentDB.Seed(adminEmail, adminPassword); err != nil {
		fmt.Printf("Error seeding database: %v\n", err)
		os.Exit(1)
	}

	store, err := newAssetStore(cfg)
	if err != nil {
		fmt.Printf("Error initializing asset store: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newAssetStore selects the blob backend: local disk by default, S3 when configured
func newAssetStore(cfg map[string]string) (storage.Store, error) {
	switch backend := appconfig.GetString(cfg, "ASSET_STORE", "disk"); backend {
	case "s3":
		bucket := appconfig.GetString(cfg, "S3_BUCKET", "")
		if bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when ASSET_STORE=s3")
		}
		return storage.NewS3Store(context.Background(), bucket)
	case "disk":
		return storage.NewDiskStore(appconfig.GetString(cfg, "UPLOAD_DIR", "uploads")), nil
	default:
		return nil, fmt.Errorf("unsupported ASSET_STORE: %s", backend)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
