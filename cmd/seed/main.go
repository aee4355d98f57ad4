// Command seed creates the initial administrator account from environment
// variables.  It is idempotent: an existing account with the same email is
// left untouched.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/database"
	"github.com/dmolina/parroquia-api/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	nombre := os.Getenv("ADMIN_NOMBRE")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if nombre == "" {
		nombre = "Administrador"
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	if _, err := users.GetByEmail(ctx, email); err == nil {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("lookup: %v", err)
	}

	id, err := users.Create(ctx, email, password, nombre, "admin", cfg.BcryptCost)
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %s created (id=%d)", email, id)
}
