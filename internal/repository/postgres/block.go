package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"htmlblock/internal/domain"
	"htmlblock/internal/domain/models"
	"htmlblock/internal/domain/repositories"
)

// PostgresBlockRepository implements the BlockRepository interface
type PostgresBlockRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(config *RepositoryConfig) repositories.BlockRepository {
	return &PostgresBlockRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new block
func (r *PostgresBlockRepository) Create(ctx context.Context, block *models.Block) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, course_id, display_name, data, editor, allow_javascript, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, r.tables.Blocks)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		block.ID,
		block.CourseID,
		block.DisplayName,
		block.Data,
		block.Editor,
		block.AllowJavascript,
		block.CreatedAt,
		block.UpdatedAt,
	).Scan(&block.CreatedAt, &block.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create block: %w", err)
	}

	return nil
}

// GetByID retrieves a block by ID, optionally scoped to a course
func (r *PostgresBlockRepository) GetByID(ctx context.Context, id, courseID string) (*models.Block, error) {
	var query string
	var args []interface{}

	if courseID != "" {
		query = fmt.Sprintf(`
			SELECT id, course_id, display_name, data, editor, allow_javascript, created_at, updated_at
			FROM %s
			WHERE id = $1 AND course_id = $2
		`, r.tables.Blocks)
		args = []interface{}{id, courseID}
	} else {
		query = fmt.Sprintf(`
			SELECT id, course_id, display_name, data, editor, allow_javascript, created_at, updated_at
			FROM %s
			WHERE id = $1
		`, r.tables.Blocks)
		args = []interface{}{id}
	}

	var block models.Block
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, args...).Scan(
		&block.ID,
		&block.CourseID,
		&block.DisplayName,
		&block.Data,
		&block.Editor,
		&block.AllowJavascript,
		&block.CreatedAt,
		&block.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get block: %w", err)
	}

	return &block, nil
}

// ListByCourse lists all blocks placed in a course
func (r *PostgresBlockRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Block, error) {
	query := fmt.Sprintf(`
		SELECT id, course_id, display_name, data, editor, allow_javascript, created_at, updated_at
		FROM %s
		WHERE course_id = $1
		ORDER BY created_at
	`, r.tables.Blocks)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		var block models.Block
		err := rows.Scan(
			&block.ID,
			&block.CourseID,
			&block.DisplayName,
			&block.Data,
			&block.Editor,
			&block.AllowJavascript,
			&block.CreatedAt,
			&block.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	return blocks, nil
}

// Update replaces the editable fields of an existing block
func (r *PostgresBlockRepository) Update(ctx context.Context, block *models.Block) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET display_name = $1, editor = $2, allow_javascript = $3, updated_at = NOW()
		WHERE id = $4 AND course_id = $5
		RETURNING updated_at
	`, r.tables.Blocks)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		block.DisplayName,
		block.Editor,
		block.AllowJavascript,
		block.ID,
		block.CourseID,
	).Scan(&block.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("block %s: %w", block.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update block: %w", err)
	}

	return nil
}

// UpdateData replaces only the stored HTML body. The value is written
// byte-exact; no escaping happens on this path.
func (r *PostgresBlockRepository) UpdateData(ctx context.Context, id, courseID, data string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET data = $1, updated_at = NOW()
		WHERE id = $2 AND course_id = $3
	`, r.tables.Blocks)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, data, id, courseID)
	if err != nil {
		return fmt.Errorf("update block data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a block
func (r *PostgresBlockRepository) Delete(ctx context.Context, id, courseID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND course_id = $2
	`, r.tables.Blocks)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, courseID)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
