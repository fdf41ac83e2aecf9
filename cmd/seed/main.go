package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/adityawp/campusmarket/config"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// Local-dev seeder: one admin, one member and a few listings in each state so
// the moderation queue and public feed have something to show.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := seedUser(db, "admin@campus.test", "campusadmin", "Campus Admin", "admin123", "admin")
	memberID := seedUser(db, "demo@campus.test", "demoseller", "Demo Seller", "password123", "member")
	fmt.Printf("seeded admin=%s member=%s\n", adminID, memberID)

	seedListing(db, memberID, "Calculus textbook, 3rd ed", "Light wear, no notes inside.", 25, "books", "active")
	seedListing(db, memberID, "Mini fridge", "Works fine, pickup only.", 60, "appliances", "active")
	seedListing(db, memberID, "Desk lamp", "LED, adjustable arm.", 12, "furniture", "pending")
	seedListing(db, adminID, "Bike lock", "Combination lock, like new.", 8, "sports", "pending")
	fmt.Println("seeded sample listings")
}

func seedUser(db *sql.DB, email, username, name, password, role string) string {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, username, password_hash, name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
		RETURNING id
	`, email, username, hash, name, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	fmt.Printf("seeded user: email=%s password=%s role=%s\n", email, password, role)
	return id
}

func seedListing(db *sql.DB, ownerID, title, description string, price float64, category, status string) {
	if _, err := db.Exec(`
		INSERT INTO listings (owner_id, title, description, price, category, status)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (SELECT 1 FROM listings WHERE owner_id = $1 AND title = $2)
	`, ownerID, title, description, price, category, status); err != nil {
		log.Fatalf("failed to seed listing %q: %v", title, err)
	}
}
