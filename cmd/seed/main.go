// Command main runs the database seeder for Stockroom.
package main

import (
	"flag"
	"log"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/seed"
)

func main() {
	numEmployees := flag.Int("employees", 20, "Number of synthetic employees to create")
	numRequests := flag.Int("requests", 100, "Number of synthetic requests to create")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d employees, %d requests, clean=%v\n", *numEmployees, *numRequests, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(database.DB, seed.Options{
		NumEmployees: *numEmployees,
		NumRequests:  *numRequests,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. Built-in users: admin/admin123, john/john123, jane/jane123")
}
