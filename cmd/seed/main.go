package main

import (
	"context"
	"flag"
	"log"

	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/config/db"
	"github.com/linskybing/logistics-go/internal/repository"
)

func main() {
	file := flag.String("file", "configs/seed.example.yaml", "YAML file with users and checklist templates")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	data, err := application.LoadSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	report, err := application.NewSeeder(repository.New(db.DB)).Seed(context.Background(), data)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seed complete: users created=%d skipped=%d, templates created=%d skipped=%d",
		report.UsersCreated, report.UsersSkipped, report.TemplatesCreated, report.TemplatesSkipped)
}
