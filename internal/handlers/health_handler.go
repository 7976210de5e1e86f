// internal/handlers/health_handler.go
package handlers

import (
	"net/http"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/webutil"

	"gorm.io/gorm"
)

type healthResponse struct {
	Status string `json:"status"`
}

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth は DB に ping できれば 200、できなければ 503 を返します。
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.Error("Health check failed: could not get DB object", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
