package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"htmlblock/internal/repository/postgres"
	blocksvc "htmlblock/internal/service/block"
)

// BlockSeeder sets up the blocks schema and loads the demo scenarios.
type BlockSeeder struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewBlockSeeder creates a new block seeder
func NewBlockSeeder(pool *pgxpool.Pool, tables *postgres.TableNames, logger *slog.Logger) *BlockSeeder {
	return &BlockSeeder{
		pool:   pool,
		tables: tables,
		logger: logger,
	}
}

// EnsureSchema creates the blocks table if it does not exist.
func (s *BlockSeeder) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			course_id TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT 'Text',
			data TEXT NOT NULL DEFAULT '',
			editor TEXT NOT NULL DEFAULT 'visual',
			allow_javascript BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS %s_course_id_idx ON %s (course_id);
	`, s.tables.Blocks, s.tables.Blocks, s.tables.Blocks)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create blocks table: %w", err)
	}
	return nil
}

// DropTables drops the blocks table.
func (s *BlockSeeder) DropTables(ctx context.Context) error {
	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, s.tables.Blocks)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("drop blocks table: %w", err)
	}
	return nil
}

// ClearData deletes all blocks but keeps the schema.
func (s *BlockSeeder) ClearData(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, s.tables.Blocks)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear blocks table: %w", err)
	}
	return nil
}

// SeedScenarios inserts one course per demo scenario, each holding the
// scenario's blocks.
func (s *BlockSeeder) SeedScenarios(ctx context.Context) error {
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, course_id, display_name, data, editor, allow_javascript, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, s.tables.Blocks)

	seeded := 0
	for _, scenario := range blocksvc.Scenarios() {
		course := "demo/" + slug(scenario.Name)
		for i, b := range scenario.Blocks {
			// Deterministic IDs so re-seeding is idempotent
			id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s/%d", course, i)))
			_, err := s.pool.Exec(ctx, query,
				id.String(), course, "Text", b.Data, "visual", b.AllowJavascript, now, now)
			if err != nil {
				return fmt.Errorf("seed scenario %q block %d: %w", scenario.Name, i, err)
			}
			seeded++
		}
		s.logger.Info("scenario seeded", "scenario", scenario.Name, "course_id", course)
	}

	s.logger.Info("demo blocks seeded", "count", seeded)
	return nil
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}
