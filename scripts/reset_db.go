package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Dev helper: wipes business data (clients, items, invoices) and
// resets sequences. Users are kept so logins keep working.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL BILLING DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all invoices and their lines")
	fmt.Println("  - Delete all clients")
	fmt.Println("  - Delete all items")
	fmt.Println("  - Reset ID and invoice number sequences")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "billing_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("Resetting database...")

	ctx := context.Background()

	statements := []string{
		"DELETE FROM invoice_lines",
		"DELETE FROM invoices",
		"DELETE FROM clients",
		"DELETE FROM items",
		"ALTER SEQUENCE invoices_id_seq RESTART WITH 1",
		"ALTER SEQUENCE invoice_lines_id_seq RESTART WITH 1",
		"ALTER SEQUENCE clients_id_seq RESTART WITH 1",
		"ALTER SEQUENCE items_id_seq RESTART WITH 1",
		"ALTER SEQUENCE invoice_number_sequence RESTART WITH 1",
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed: %s: %v", stmt, err)
		}
		fmt.Printf("  OK: %s\n", stmt)
	}

	fmt.Println()
	fmt.Println("Database reset complete.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
