package main

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/httpapi"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/store/rabbitmq"
	"portfolio-backend/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := seedAdmin(gdb, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rds.Ping(pingCtx); err != nil {
		log.Printf("redis unavailable, view counters disabled: %v", err)
		rds = nil
	}
	cancel()

	rabbit, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Printf("rabbitmq unavailable, chat analytics disabled: %v", err)
		rabbit = nil
	}

	r, h := httpapi.NewRouter(gdb, cfg, rds, rabbit)
	defer h.Close()

	log.Printf("server listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// seedAdmin creates the configured admin account on first boot.
func seedAdmin(gdb *gorm.DB, cfg config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	repo := portfolio.NewRepo(gdb)
	ctx := context.Background()

	if _, err := repo.GetAdminByUsername(ctx, cfg.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if err := repo.CreateAdmin(ctx, &models.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}); err != nil {
		return err
	}
	log.Printf("seeded admin user %q", cfg.AdminUsername)
	return nil
}
