package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"htmlblock/internal/domain"
	"htmlblock/internal/domain/models"
	"htmlblock/internal/domain/services"
	"htmlblock/internal/render"
	"htmlblock/internal/service/block/sanitizer"
)

// fakeBlockService backs handlers with an in-memory block map and the real
// sanitization gate.
type fakeBlockService struct {
	blocks    map[string]*models.Block
	sanitizer *sanitizer.HTMLSanitizer
}

func newFakeBlockService() *fakeBlockService {
	return &fakeBlockService{
		blocks:    make(map[string]*models.Block),
		sanitizer: sanitizer.MustNewHTMLSanitizer(),
	}
}

func (s *fakeBlockService) CreateBlock(ctx context.Context, req *services.CreateBlockRequest) (*models.Block, error) {
	if req.CourseID == "" {
		return nil, fmt.Errorf("%w: course_id is required", domain.ErrValidation)
	}
	block := models.NewBlock(req.CourseID)
	block.ID = fmt.Sprintf("block-%d", len(s.blocks)+1)
	s.blocks[block.ID] = block
	return block, nil
}

func (s *fakeBlockService) GetBlock(ctx context.Context, id, courseID string) (*models.Block, error) {
	block, ok := s.blocks[id]
	if !ok || block.CourseID != courseID {
		return nil, fmt.Errorf("%w: block %s", domain.ErrNotFound, id)
	}
	return block, nil
}

func (s *fakeBlockService) ListBlocks(ctx context.Context, courseID string) ([]models.Block, error) {
	var out []models.Block
	for _, b := range s.blocks {
		if b.CourseID == courseID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBlockService) UpdateBlock(ctx context.Context, id string, req *services.UpdateBlockRequest) (*models.Block, error) {
	block, err := s.GetBlock(ctx, id, req.CourseID)
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
	return block, nil
}

func (s *fakeBlockService) UpdateContent(ctx context.Context, id, courseID, content string) (string, error) {
	block, err := s.GetBlock(ctx, id, courseID)
	if err != nil {
		return "", err
	}
	block.Data = content
	return block.Data, nil
}

func (s *fakeBlockService) DeleteBlock(ctx context.Context, id, courseID string) error {
	if _, err := s.GetBlock(ctx, id, courseID); err != nil {
		return err
	}
	delete(s.blocks, id)
	return nil
}

func (s *fakeBlockService) EffectiveHTML(block *models.Block) string {
	if block.AllowJavascript {
		return block.Data
	}
	clean, err := s.sanitizer.Sanitize(block.Data)
	if err != nil {
		return ""
	}
	return clean
}

func (s *fakeBlockService) WordCount(block *models.Block) int {
	return len(strings.Fields(block.Data))
}

func newTestMux(t *testing.T, svc services.BlockService) *http.ServeMux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	blockHandler := NewBlockHandler(svc, logger)

	loader := render.NewLoader(render.DefaultAssets(), "/static")
	renderer, err := render.NewRenderer(loader)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	viewHandler := NewViewHandler(svc, renderer, "en", logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/blocks", blockHandler.CreateBlock)
	mux.HandleFunc("GET /api/blocks", blockHandler.ListBlocks)
	mux.HandleFunc("GET /api/blocks/{id}", blockHandler.GetBlock)
	mux.HandleFunc("PATCH /api/blocks/{id}", blockHandler.UpdateBlock)
	mux.HandleFunc("DELETE /api/blocks/{id}", blockHandler.DeleteBlock)
	mux.HandleFunc("POST /api/blocks/{id}/content", blockHandler.UpdateContent)
	mux.HandleFunc("GET /api/blocks/{id}/views/student", viewHandler.StudentView)
	mux.HandleFunc("GET /api/blocks/{id}/views/studio", viewHandler.StudioView)
	mux.HandleFunc("GET /api/scenarios", Scenarios)
	mux.HandleFunc("GET /health", blockHandler.HealthCheck)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func seedBlock(t *testing.T, svc *fakeBlockService, courseID string) *models.Block {
	t.Helper()
	block, err := svc.CreateBlock(context.Background(), &services.CreateBlockRequest{CourseID: courseID})
	if err != nil {
		t.Fatalf("seed block: %v", err)
	}
	return block
}

func TestCreateBlock(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)

	rec := doJSON(t, mux, http.MethodPost, "/api/blocks", map[string]string{"course_id": "course-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got blockResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.DisplayName != "Text" {
		t.Errorf("expected default display name %q, got %q", "Text", got.DisplayName)
	}
	if got.Editor != models.EditorVisual {
		t.Errorf("expected default editor %q, got %q", models.EditorVisual, got.Editor)
	}
	if got.AllowJavascript {
		t.Error("expected allow_javascript to default to false")
	}
}

func TestCreateBlockMissingCourse(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodPost, "/api/blocks", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetBlockReturnsRawData(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)

	block := seedBlock(t, svc, "course-1")
	block.Data = `<b>hi</b><script>alert(1)</script>`

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/"+block.ID+"?course_id=course-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got blockResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Data != block.Data {
		t.Errorf("stored data altered on read: %q", got.Data)
	}
}

func TestGetBlockNotFound(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/missing?course_id=course-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetBlockRequiresCourse(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/some-id", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateContentEchoesVerbatim(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)
	block := seedBlock(t, svc, "course-1")

	rec := doJSON(t, mux, http.MethodPost, "/api/blocks/"+block.ID+"/content?course_id=course-1",
		map[string]string{"content": "<i>new</i>"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got contentPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Content != "<i>new</i>" {
		t.Errorf("expected echoed content %q, got %q", "<i>new</i>", got.Content)
	}
	if svc.blocks[block.ID].Data != "<i>new</i>" {
		t.Errorf("expected stored data %q, got %q", "<i>new</i>", svc.blocks[block.ID].Data)
	}
}

func TestUpdateContentUnknownBlock(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodPost, "/api/blocks/missing/content?course_id=course-1",
		map[string]string{"content": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteBlock(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)
	block := seedBlock(t, svc, "course-1")

	rec := doJSON(t, mux, http.MethodDelete, "/api/blocks/"+block.ID+"?course_id=course-1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := svc.blocks[block.ID]; ok {
		t.Error("block still present after delete")
	}
}

func TestScenarios(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodGet, "/api/scenarios", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) == 0 {
		t.Error("expected at least one scenario")
	}
}

func TestHealthCheck(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
