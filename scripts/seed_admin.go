// Seeds the initial administrator account.
//
// Intended for first deployment, before any user exists. Running it again
// against a database that already has an admin is a no-op.
//
// Usage: go run scripts/seed_admin.go -email admin@example.com -password <pw>

package main

import (
	"academy_backend/internal/config"
	"academy_backend/internal/model"
	"academy_backend/pkg/database"
	"academy_backend/pkg/logger"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *password == "" {
		log.Fatal("a non-empty -password is required")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, false)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count)
	if count > 0 {
		log.Println("an admin account already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := model.User{
		Name:     "Administrator",
		Email:    *email,
		Password: string(hash),
		Role:     model.Admin,
		Language: "ar",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin account %s created", *email)
}
