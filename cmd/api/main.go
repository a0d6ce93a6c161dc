package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"portfolio/internal/api"
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	log.Printf("api bootstrapped with db host=%s port=%d db=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := db.AutoMigrate(
		&database.Project{},
		&database.ResumeEntry{},
		&database.Stat{},
		&database.ContactField{},
		&database.CVFile{},
		&database.AdminUser{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Printf("database migrated")

	if err := seedAdminUser(db, cfg.Auth.SeedPassword); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	adapter, err := database.NewAdapter(db)
	if err != nil {
		log.Fatalf("init query adapter: %v", err)
	}

	storageClient, err := storage.NewClient(cfg.MinIO, cfg.MinIO.ImagesBucket, cfg.MinIO.CVBucket)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}
	log.Printf("storage client ready, buckets=%s,%s", cfg.MinIO.ImagesBucket, cfg.MinIO.CVBucket)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer asynqClient.Close()

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, adapter, asynqClient, redisClient, storageClient, logger, cfg)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("api listening on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}

// seedAdminUser creates the single panel account on first boot. An existing
// row always wins; the table is read-only afterward.
func seedAdminUser(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&database.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		log.Printf("no admin user present and ADMIN_SEED_PASSWORD unset, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&database.AdminUser{
		Username: "admin",
		Password: hashed,
		Email:    "admin@localhost",
	}).Error; err != nil {
		return err
	}
	log.Printf("seeded admin user")
	return nil
}
