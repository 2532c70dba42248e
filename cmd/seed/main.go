package main

import (
	"context"
	"flag"

	"sedbms/internal/config"
	"sedbms/internal/db"
	"sedbms/internal/logger"
	"sedbms/internal/repository"
	"sedbms/internal/seed"
)

func main() {
	file := flag.String("file", "", "TOML fixture to load instead of the built-in one")
	flag.Parse()

	log := logger.GetInstance()
	log.Info("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	path := *file
	if path == "" {
		path = cfg.SeedFile
	}
	fixture, err := seed.Load(path)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	repos := seed.Repos{
		Users:    repository.NewUserRepository(gormDB),
		Students: repository.NewStudentRepository(gormDB),
		Subjects: repository.NewSubjectRepository(gormDB),
		Marks:    repository.NewMarkRepository(gormDB),
	}

	res, err := seed.Apply(context.Background(), repos, fixture)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Info("Seed completed successfully!")
	log.Infof("  - Users created: %d", res.Users)
	log.Infof("  - Students created: %d", res.Students)
	log.Infof("  - Subjects created: %d", res.Subjects)
	log.Infof("  - Marks created: %d", res.Marks)
}
