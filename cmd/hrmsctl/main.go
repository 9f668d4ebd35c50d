package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hrms-backend/internal/config"
	"hrms-backend/internal/infrastructure/database"
)

const usage = `Usage: hrmsctl <command>

Commands:
  init    Create the database schema
  reset   Drop and recreate the database schema (destroys all data)
  status  Show connection info and table status
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	db, err := connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "init":
		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("init failed: %v", err)
		}
		fmt.Println("Schema initialized")
	case "reset":
		if err := db.DropSchema(ctx); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		fmt.Println("Schema reset")
	case "status":
		if err := printStatus(ctx, db); err != nil {
			log.Fatalf("status failed: %v", err)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func connect() (*database.PostgresDB, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func printStatus(ctx context.Context, db *database.PostgresDB) error {
	fmt.Printf("Host:     %s:%d\n", db.Config.Host, db.Config.Port)
	fmt.Printf("Database: %s\n", db.Config.DBName)

	if err := db.HealthCheck(ctx); err != nil {
		fmt.Printf("Health:   FAILED (%v)\n", err)
		return nil
	}
	fmt.Println("Health:   OK")

	for _, table := range []string{"employees", "attendance"} {
		exists, err := db.TableExists(ctx, table)
		if err != nil {
			return err
		}
		state := "missing"
		if exists {
			state = "present"
		}
		fmt.Printf("Table %-11s %s\n", table+":", state)
	}

	return nil
}
