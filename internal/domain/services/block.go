package services

import (
	"context"

	"htmlblock/internal/domain/models"
)

// BlockService handles HTML block business logic
type BlockService interface {
	// CreateBlock creates a block populated with the field schema defaults
	CreateBlock(ctx context.Context, req *CreateBlockRequest) (*models.Block, error)

	// GetBlock retrieves a block by ID
	GetBlock(ctx context.Context, id, courseID string) (*models.Block, error)

	// ListBlocks lists the blocks placed in a course
	ListBlocks(ctx context.Context, courseID string) ([]models.Block, error)

	// UpdateBlock updates the editable fields of a block
	UpdateBlock(ctx context.Context, id string, req *UpdateBlockRequest) (*models.Block, error)

	// UpdateContent replaces the stored HTML body verbatim and returns the
	// accepted value. The body is stored exactly as submitted; sanitization
	// is a read-time concern.
	UpdateContent(ctx context.Context, id, courseID, content string) (string, error)

	// DeleteBlock removes a block
	DeleteBlock(ctx context.Context, id, courseID string) error

	// EffectiveHTML is the read-path gate: the raw stored body when the
	// block allows JavaScript, the sanitized body otherwise. Computed on
	// every call, never cached, never written back.
	EffectiveHTML(block *models.Block) string

	// WordCount reports the number of words in the visible text of the
	// block's sanitized body.
	WordCount(block *models.Block) int
}

// CreateBlockRequest represents a block creation request
type CreateBlockRequest struct {
	CourseID string `json:"course_id"`
	UserID   string `json:"-"` // Set by handler from auth context, not from request body
}

// UpdateBlockRequest represents an editable-fields update. Nil pointers
// leave the corresponding field unchanged.
type UpdateBlockRequest struct {
	CourseID        string  `json:"course_id"`
	DisplayName     *string `json:"display_name,omitempty"`
	Editor          *string `json:"editor,omitempty"`
	AllowJavascript *bool   `json:"allow_javascript,omitempty"`
}
