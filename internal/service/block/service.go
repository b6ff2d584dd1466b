package block

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"htmlblock/internal/config"
	"htmlblock/internal/domain"
	"htmlblock/internal/domain/models"
	"htmlblock/internal/domain/repositories"
	"htmlblock/internal/domain/services"
	"htmlblock/internal/service/block/sanitizer"
)

// blockService implements the BlockService interface
type blockService struct {
	blockRepo repositories.BlockRepository
	txManager repositories.TransactionManager
	sanitizer *sanitizer.HTMLSanitizer
	stripper  *sanitizer.HTMLSanitizer
	logger    *slog.Logger
}

// NewBlockService creates a new block service
func NewBlockService(
	blockRepo repositories.BlockRepository,
	txManager repositories.TransactionManager,
	htmlSanitizer *sanitizer.HTMLSanitizer,
	logger *slog.Logger,
) services.BlockService {
	return &blockService{
		blockRepo: blockRepo,
		txManager: txManager,
		sanitizer: htmlSanitizer,
		stripper:  sanitizer.NewStrictHTMLSanitizer(),
		logger:    logger,
	}
}

// CreateBlock creates a block populated with the field schema defaults
func (s *blockService) CreateBlock(ctx context.Context, req *services.CreateBlockRequest) (*models.Block, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.CourseID,
			validation.Required,
			validation.Length(1, config.MaxCourseIDLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	block := models.NewBlock(req.CourseID)
	block.ID = uuid.New().String()
	now := time.Now()
	block.CreatedAt = now
	block.UpdatedAt = now

	if err := s.blockRepo.Create(ctx, block); err != nil {
		return nil, err
	}

	s.logger.Debug("block created", "block_id", block.ID, "course_id", block.CourseID)

	return block, nil
}

// GetBlock retrieves a block by ID
func (s *blockService) GetBlock(ctx context.Context, id, courseID string) (*models.Block, error) {
	return s.blockRepo.GetByID(ctx, id, courseID)
}

// ListBlocks lists the blocks placed in a course
func (s *blockService) ListBlocks(ctx context.Context, courseID string) ([]models.Block, error) {
	return s.blockRepo.ListByCourse(ctx, courseID)
}

// UpdateBlock updates the editable fields of a block. Fields left nil in
// the request keep their stored values.
func (s *blockService) UpdateBlock(ctx context.Context, id string, req *services.UpdateBlockRequest) (*models.Block, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	block, err := s.blockRepo.GetByID(ctx, id, req.CourseID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		block.DisplayName = *req.DisplayName
	}
	if req.Editor != nil {
		block.Editor = models.EditorMode(*req.Editor)
	}
	if req.AllowJavascript != nil {
		block.AllowJavascript = *req.AllowJavascript
	}

	if err := s.blockRepo.Update(ctx, block); err != nil {
		return nil, err
	}

	return block, nil
}

// UpdateContent replaces the stored HTML body verbatim and echoes the
// accepted value back. No sanitization, escaping, or size check happens
// here: the body is a read-time concern and must round-trip byte-exact so
// that toggling allow_javascript later recovers the original content.
func (s *blockService) UpdateContent(ctx context.Context, id, courseID, content string) (string, error) {
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.blockRepo.GetByID(txCtx, id, courseID); err != nil {
			return err
		}
		return s.blockRepo.UpdateData(txCtx, id, courseID, content)
	})
	if err != nil {
		return "", err
	}

	return content, nil
}

// DeleteBlock removes a block
func (s *blockService) DeleteBlock(ctx context.Context, id, courseID string) error {
	return s.blockRepo.Delete(ctx, id, courseID)
}

// EffectiveHTML is the read-path gate of the block: raw stored body when
// JavaScript is allowed, sanitized body otherwise. Evaluated on every call
// and never written back, so the stored value always stays the original
// author-submitted content.
func (s *blockService) EffectiveHTML(block *models.Block) string {
	if block.AllowJavascript {
		return block.Data
	}

	clean, err := s.sanitizer.Sanitize(block.Data)
	if err != nil {
		// Least permissive safe output: the body as escaped plain text
		s.logger.Warn("sanitize failed, escaping content as text", "block_id", block.ID, "error", err)
		return html.EscapeString(block.Data)
	}
	return clean
}

// WordCount reports the number of words in the visible text of the
// sanitized body. The count ignores markup and scripts, so it is stable
// across the allow_javascript toggle.
func (s *blockService) WordCount(block *models.Block) int {
	text, err := s.stripper.Sanitize(block.Data)
	if err != nil {
		text = block.Data
	}
	return len(strings.Fields(html.UnescapeString(text)))
}

// validateUpdateRequest validates an editable-fields update
func (s *blockService) validateUpdateRequest(req *services.UpdateBlockRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DisplayName,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxDisplayNameLength),
		),
		validation.Field(&req.Editor,
			validation.NilOrNotEmpty,
			validation.In(string(models.EditorVisual), string(models.EditorRaw)),
		),
	)
}
