package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"htmlblock/internal/config"
	"htmlblock/internal/repository/postgres"
	"htmlblock/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop the blocks table before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo blocks")
	clearData := flag.Bool("clear-data", false, "Clear all blocks (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	seeder := seed.NewBlockSeeder(pool, tables, logger)

	if *dropTables {
		logger.Info("dropping tables", "prefix", cfg.TablePrefix)
		if err := seeder.DropTables(ctx); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	if *clearData {
		logger.Info("clearing data", "prefix", cfg.TablePrefix)
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		return
	}

	if err := seeder.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}
	logger.Info("schema ready", "table", tables.Blocks)

	if *schemaOnly {
		return
	}

	if err := seeder.SeedScenarios(ctx); err != nil {
		log.Fatalf("Failed to seed demo blocks: %v", err)
	}
}
