package tests

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartx-backend/internal/documents"
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
	rg.POST("/documents/:id/tests", h.generate)
	rg.GET("/documents/:id/tests", h.listByDocument)
	rg.GET("/tests/:id", h.get)
	rg.POST("/tests/:id/submit", h.submit)
	rg.GET("/attempts/:id", h.getAttempt)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	test, err := h.Svc.Generate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "generation_failed", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate test", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toDetail(test))
}

func (h *Handler) listByDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	result, err := h.Svc.ListByDocument(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tests", nil)
		return
	}

	resp := make([]TestSummary, 0, len(result))
	for _, test := range result {
		resp = append(resp, toSummary(test))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	test, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "test not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch test", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toDetail(test))
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	attempt, err := h.Svc.Submit(c.Request.Context(), userID, c.Param("id"), req.Answers)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "test not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit answers", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, toAttemptResponse(attempt))
}

func (h *Handler) getAttempt(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	attempt, err := h.Svc.GetAttempt(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrAttemptNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "attempt not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch attempt", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toAttemptResponse(attempt))
}
