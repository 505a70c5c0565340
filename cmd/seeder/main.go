// Seeder bulk-loads doctor records (with nested timings) from a JSON file.
// It runs once against an empty doctors table and aborts otherwise, so it is
// safe to re-run on an already seeded database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"schedula/config"
	"schedula/internal/domain/entity"
	"schedula/internal/infrastructure/database"
	"schedula/internal/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	filePath := flag.String("file", "doctors.json", "path to the doctors JSON file")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	doctorRepo := repository.NewDoctorRepository(db)
	ctx := context.Background()

	count, err := doctorRepo.Count(ctx)
	if err != nil {
		logrus.Fatalf("Failed to count doctors: %v", err)
	}
	if count > 0 {
		logrus.Warnf("Doctors table is not empty (%d records), aborting seed", count)
		return
	}

	payload, err := os.ReadFile(*filePath)
	if err != nil {
		logrus.Fatalf("Failed to read %s: %v", *filePath, err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(payload, &doctors); err != nil {
		logrus.Fatalf("Failed to parse %s: %v", *filePath, err)
	}
	if len(doctors) == 0 {
		logrus.Warn("No doctors found in seed file, nothing to do")
		return
	}

	logrus.Infof("Found %d doctors to seed", len(doctors))

	for i := range doctors {
		if err := doctorRepo.Create(ctx, &doctors[i]); err != nil {
			logrus.Fatalf("Failed to insert doctor %s: %v", doctors[i].ID, err)
		}
	}

	logrus.Infof("Seed complete: %d doctors inserted", len(doctors))
}
