package handler

import (
	"log/slog"
	"net/http"

	"htmlblock/internal/domain/models"
	"htmlblock/internal/domain/services"
	"htmlblock/internal/httputil"
)

// BlockHandler handles block HTTP requests
type BlockHandler struct {
	blockService services.BlockService
	logger       *slog.Logger
}

// NewBlockHandler creates a new block handler
func NewBlockHandler(blockService services.BlockService, logger *slog.Logger) *BlockHandler {
	return &BlockHandler{
		blockService: blockService,
		logger:       logger,
	}
}

// blockResponse is a block plus derived read-time values
type blockResponse struct {
	*models.Block
	WordCount int `json:"word_count"`
}

func (h *BlockHandler) respondBlock(w http.ResponseWriter, status int, block *models.Block) {
	httputil.RespondJSON(w, status, blockResponse{
		Block:     block,
		WordCount: h.blockService.WordCount(block),
	})
}

// CreateBlock creates a new block with schema defaults
// POST /api/blocks
func (h *BlockHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBlockRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	block, err := h.blockService.CreateBlock(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.respondBlock(w, http.StatusCreated, block)
}

// ListBlocks lists the blocks in a course
// GET /api/blocks?course_id=...
func (h *BlockHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	course, err := courseID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	blocks, err := h.blockService.ListBlocks(r.Context(), course)
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]blockResponse, 0, len(blocks))
	for i := range blocks {
		out = append(out, blockResponse{
			Block:     &blocks[i],
			WordCount: h.blockService.WordCount(&blocks[i]),
		})
	}
	httputil.RespondJSON(w, http.StatusOK, out)
}

// GetBlock returns the stored fields of a block. Data is returned raw;
// sanitization applies only to rendered views.
// GET /api/blocks/{id}?course_id=...
func (h *BlockHandler) GetBlock(w http.ResponseWriter, r *http.Request) {
	course, err := courseID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	block, err := h.blockService.GetBlock(r.Context(), r.PathValue("id"), course)
	if err != nil {
		handleError(w, err)
		return
	}

	h.respondBlock(w, http.StatusOK, block)
}

// UpdateBlock updates the editable fields of a block
// PATCH /api/blocks/{id}
func (h *BlockHandler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateBlockRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	block, err := h.blockService.UpdateBlock(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.respondBlock(w, http.StatusOK, block)
}

// DeleteBlock deletes a block
// DELETE /api/blocks/{id}?course_id=...
func (h *BlockHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	course, err := courseID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.blockService.DeleteBlock(r.Context(), r.PathValue("id"), course); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// contentPayload carries the raw HTML body of a block. The value is opaque
// to this endpoint: whatever arrives is stored and echoed back unchanged.
type contentPayload struct {
	Content string `json:"content"`
}

// UpdateContent replaces the block body verbatim
// POST /api/blocks/{id}/content?course_id=...
func (h *BlockHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	course, err := courseID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	// Content bodies are unbounded and untyped: authors submit whatever
	// their editor produced.
	var payload contentPayload
	if err := httputil.ParseJSONUnbounded(r, &payload); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.blockService.UpdateContent(r.Context(), r.PathValue("id"), course, payload.Content)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contentPayload{Content: stored})
}

// HealthCheck reports service liveness
// GET /health
func (h *BlockHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
