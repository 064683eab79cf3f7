package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/medibook/booking-platform/cmd/mainconfig"
	appconfig "github.com/medibook/booking-platform/internal/config"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/pkg/logging"
)

// seed loads the stock specialty and doctor catalog into DynamoDB. Safe to
// re-run; existing records are overwritten.
func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	repo := directory.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.DoctorsTable, cfg.SpecialtiesTable, logger)
	if err := directory.SeedDefaults(ctx, repo); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("catalog seeded",
		"specialties", len(directory.DefaultSpecialties()),
		"doctors", len(directory.DefaultDoctors()),
	)
}
