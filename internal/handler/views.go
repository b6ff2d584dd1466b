package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"htmlblock/internal/domain/services"
	"htmlblock/internal/httputil"
	"htmlblock/internal/render"
)

// ViewHandler renders block view fragments
type ViewHandler struct {
	blockService  services.BlockService
	renderer      *render.Renderer
	defaultLocale string
	logger        *slog.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(blockService services.BlockService, renderer *render.Renderer, defaultLocale string, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{
		blockService:  blockService,
		renderer:      renderer,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// StudentView renders the learner-facing fragment. The body passes through
// the read-time gate: raw when the block allows JavaScript, sanitized
// otherwise.
// GET /api/blocks/{id}/views/student?course_id=...
func (h *ViewHandler) StudentView(w http.ResponseWriter, r *http.Request) {
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

	fragment, err := h.renderer.StudentView(block, h.blockService.EffectiveHTML(block))
	if err != nil {
		h.logger.Error("failed to render student view", "block_id", block.ID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, fragment)
}

// StudioView renders the authoring fragment: the raw body in an editable
// form plus the editor assets and initializer.
// GET /api/blocks/{id}/views/studio?course_id=...
func (h *ViewHandler) StudioView(w http.ResponseWriter, r *http.Request) {
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

	fragment, err := h.renderer.StudioView(block, h.locale(r))
	if err != nil {
		h.logger.Error("failed to render studio view", "block_id", block.ID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, fragment)
}

// locale resolves the requested locale: explicit query param, then the
// first Accept-Language tag, then the configured default.
func (h *ViewHandler) locale(r *http.Request) string {
	if loc := r.URL.Query().Get("locale"); loc != "" {
		return loc
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		first, _, _ := strings.Cut(header, ",")
		if tag, _, ok := strings.Cut(strings.TrimSpace(first), ";"); ok || tag != "" {
			return tag
		}
	}
	return h.defaultLocale
}
