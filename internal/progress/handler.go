package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartx-backend/internal/shared/server/middleware"
	"smartx-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/progress", h.progress)
	rg.GET("/dashboard", h.dashboard)
}

func (h *Handler) progress(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	report, err := h.Svc.Progress(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load progress", nil)
		return
	}
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) dashboard(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	overview, err := h.Svc.Overview(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load dashboard", nil)
		return
	}
	respond.JSON(c, http.StatusOK, overview)
}
