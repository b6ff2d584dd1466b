package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"htmlblock/internal/render"
)

func TestStudentViewSanitizesByDefault(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)

	block := seedBlock(t, svc, "course-1")
	block.Data = `<b>hi</b><script>alert(1)</script>`

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/"+block.ID+"/views/student?course_id=course-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var fragment render.Fragment
	if err := json.Unmarshal(rec.Body.Bytes(), &fragment); err != nil {
		t.Fatalf("decode fragment: %v", err)
	}
	if !strings.Contains(fragment.Content, "<b>hi</b>") {
		t.Errorf("expected benign markup preserved, got %q", fragment.Content)
	}
	if strings.Contains(fragment.Content, "<script") {
		t.Errorf("script leaked into student view: %q", fragment.Content)
	}
	if len(fragment.CSS) == 0 {
		t.Error("expected fragment to carry the block stylesheet")
	}
}

func TestStudentViewRawWhenJavascriptAllowed(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)

	block := seedBlock(t, svc, "course-1")
	block.Data = `<b>hi</b><script>alert(1)</script>`
	block.AllowJavascript = true

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/"+block.ID+"/views/student?course_id=course-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var fragment render.Fragment
	if err := json.Unmarshal(rec.Body.Bytes(), &fragment); err != nil {
		t.Fatalf("decode fragment: %v", err)
	}
	if !strings.Contains(fragment.Content, `<script>alert(1)</script>`) {
		t.Errorf("expected raw body when javascript is allowed, got %q", fragment.Content)
	}
}

func TestStudioViewCarriesEditorInit(t *testing.T) {
	svc := newFakeBlockService()
	mux := newTestMux(t, svc)

	block := seedBlock(t, svc, "course-1")
	block.Data = `<p>body</p>`

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/"+block.ID+"/views/studio?course_id=course-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var fragment render.Fragment
	if err := json.Unmarshal(rec.Body.Bytes(), &fragment); err != nil {
		t.Fatalf("decode fragment: %v", err)
	}
	if fragment.InitFn != "HTMLBlockStudio" {
		t.Errorf("expected studio initializer, got %q", fragment.InitFn)
	}
	if fragment.InitArgs["editor"] != "visual" {
		t.Errorf("expected editor init arg %q, got %v", "visual", fragment.InitArgs["editor"])
	}
}

func TestStudentViewUnknownBlock(t *testing.T) {
	mux := newTestMux(t, newFakeBlockService())

	rec := doJSON(t, mux, http.MethodGet, "/api/blocks/missing/views/student?course_id=course-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLocaleResolution(t *testing.T) {
	h := &ViewHandler{defaultLocale: "en"}

	tests := []struct {
		name   string
		query  string
		header string
		want   string
	}{
		{"query wins", "locale=es", "fr-FR,fr;q=0.9", "es"},
		{"accept language first tag", "", "pt-BR,pt;q=0.9,en;q=0.8", "pt-BR"},
		{"accept language quality stripped", "", "de;q=0.7", "de"},
		{"default", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/blocks/x/views/studio?"+tt.query, nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			if got := h.locale(req); got != tt.want {
				t.Errorf("expected locale %q, got %q", tt.want, got)
			}
		})
	}
}
