package handler

import (
	"net/http"

	"htmlblock/internal/httputil"
	blocksvc "htmlblock/internal/service/block"
)

// Scenarios returns the canned demo block configurations
// GET /api/scenarios
func Scenarios(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, blocksvc.Scenarios())
}
