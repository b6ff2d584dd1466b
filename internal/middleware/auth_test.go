package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"htmlblock/internal/domain/models"
	"htmlblock/internal/httputil"
)

// stubVerifier accepts one known token and rejects everything else.
type stubVerifier struct {
	token  string
	userID string
}

func (v *stubVerifier) VerifyToken(token string) (*models.AuthorClaims, error) {
	if token != v.token {
		return nil, fmt.Errorf("unknown token")
	}
	return &models.AuthorClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: v.userID},
	}, nil
}

func (v *stubVerifier) Close() error { return nil }

func TestAuthRoutes(t *testing.T) {
	verifier := &stubVerifier{token: "good-token", userID: "user-1"}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httputil.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(verifier)(next)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"health is public", "/health", "", http.StatusOK},
		{"static assets are public", "/static/css/html.css", "", http.StatusOK},
		{"student view is public", "/api/blocks/abc/views/student", "", http.StatusOK},
		{"studio view requires token", "/api/blocks/abc/views/studio", "", http.StatusUnauthorized},
		{"block api requires token", "/api/blocks", "", http.StatusUnauthorized},
		{"bad token rejected", "/api/blocks", "bad-token", http.StatusUnauthorized},
		{"good token accepted", "/api/blocks", "good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && tt.token == "good-token" && gotUserID != "user-1" {
				t.Errorf("user ID in context = %q, want %q", gotUserID, "user-1")
			}
		})
	}
}
