package main

import (
	"log"

	"github.com/Soriano-1807/ayudantech-backend/internal/config"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/internal/server"
	"github.com/Soriano-1807/ayudantech-backend/pkg/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seedApprovalWindow(db); err != nil {
		log.Fatalf("failed to seed approval window: %v", err)
	}
	if err := seedAssistantTypes(db); err != nil {
		log.Fatalf("failed to seed assistant types: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, upload rate limiting disabled")
	}

	srv := server.NewServer(cfg, db, redisClient)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Administrator{},
		&model.Assistant{},
		&model.Supervisor{},
		&model.Faculty{},
		&model.Career{},
		&model.Position{},
		&model.AssistantType{},
		&model.Assistantship{},
		&model.Period{},
		&model.Activity{},
		&model.Approval{},
		&model.ApprovalWindow{},
	)
}

// The approval window is a single row that only ever gets toggled, so it
// must exist before the first request comes in.
func seedApprovalWindow(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ApprovalWindow{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		window := model.ApprovalWindow{IsOpen: false}
		if err := db.Create(&window).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedAssistantTypes(db *gorm.DB) error {
	defaultTypes := []model.AssistantType{
		{Type: "Académica"},
		{Type: "Administrativa"},
		{Type: "Investigación"},
	}

	for _, t := range defaultTypes {
		var count int64
		if err := db.Model(&model.AssistantType{}).
			Where("type = ?", t.Type).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
