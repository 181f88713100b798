package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/candidates"
	"hirehand-backend/internal/shared/server/respond"
	"hirehand-backend/internal/shared/telemetry"
)

// Handler exposes the review surface: list all candidates and set their
// verification outcome. Routes are mounted behind the admin secret check.
type Handler struct {
	Profiles *candidates.Repo
}

// NewHandler constructs a Handler.
func NewHandler(profiles *candidates.Repo) *Handler {
	return &Handler{Profiles: profiles}
}

// RegisterRoutes attaches admin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidates", h.list)
	rg.POST("/candidates/:id/status", h.updateStatus)
}

func (h *Handler) list(c *gin.Context) {
	profiles, err := h.Profiles.List(c.Request.Context())
	if err != nil {
		telemetry.Error("admin.list_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list candidates", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"candidates": profiles})
}

type updateStatusBody struct {
	VerificationStatus string `json:"verificationStatus"`
	IsPro              *bool  `json:"isPro"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var body updateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if !candidates.ValidStatus(body.VerificationStatus) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "verificationStatus must be pending, verified or rejected", nil)
		return
	}

	profile, err := h.Profiles.UpdateStatus(c.Request.Context(), c.Param("id"), body.VerificationStatus, body.IsPro)
	if err != nil {
		if errors.Is(err, candidates.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		telemetry.Error("admin.update_status_failed", map[string]any{"profile_id": c.Param("id"), "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		return
	}

	respond.JSON(c, http.StatusOK, profile)
}
