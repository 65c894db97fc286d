package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/danukusuma/campgrounds-api/config"
	"github.com/danukusuma/campgrounds-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, 'demoUser', 'demo@example.com', $2)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, uuid.NewString(), hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=demoUser password=%s\n", userID, password)

	seeds := []struct {
		title    string
		location string
		price    float64
		lon, lat float64
	}{
		{"Forest Creek", "Bend, Oregon", 24.50, -121.3153, 44.0582},
		{"Maple Hollow", "Stowe, Vermont", 31.00, -72.6874, 44.4654},
		{"Dusty Mesa", "Moab, Utah", 18.75, -109.5498, 38.5733},
	}
	for _, s := range seeds {
		id := uuid.NewString()
		if _, err := db.Exec(`
			INSERT INTO campgrounds (id, title, description, location, price, lon, lat, author_id)
			VALUES ($1, $2, 'Seeded demo campground.', $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, id, s.title, s.location, s.price, s.lon, s.lat, userID); err != nil {
			log.Fatalf("failed to seed campground %q: %v", s.title, err)
		}
		fmt.Printf("seeded campground: id=%s title=%q\n", id, s.title)
	}
}
