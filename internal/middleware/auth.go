package middleware

import (
	"net/http"
	"strings"

	"htmlblock/internal/auth"
	"htmlblock/internal/httputil"
)

// publicPrefixes are served without a bearer token: learner-facing assets
// and the health probe.
var publicPrefixes = []string{"/health", "/static/"}

// isPublic reports whether a path is learner-facing. The student view is
// public like the assets it references; everything else under /api/ is an
// authoring surface and requires authentication.
func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.HasPrefix(path, "/api/blocks/") && strings.HasSuffix(path, "/views/student")
}

// Auth validates the Authorization bearer token on authoring routes and
// stores the author's user ID in the request context.
func Auth(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}
