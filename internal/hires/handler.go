package hires

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hirehand-backend/internal/candidates"
	"hirehand-backend/internal/shared/server/respond"
	"hirehand-backend/internal/shared/telemetry"
)

// ProfileGetter checks that the referenced candidate exists.
type ProfileGetter interface {
	GetByID(ctx context.Context, id string) (candidates.Profile, error)
}

// Handler wires HTTP handlers to hire intent storage.
type Handler struct {
	Repo     Repo
	Profiles ProfileGetter
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, profiles ProfileGetter) *Handler {
	return &Handler{Repo: repo, Profiles: profiles}
}

// RegisterRoutes attaches hire routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hire-intents", h.create)
}

type createIntentBody struct {
	EmployerName  string `json:"employerName"`
	EmployerPhone string `json:"employerPhone"`
	ProfileID     string `json:"profileId"`
	Message       string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	var body createIntentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if body.EmployerName == "" || body.EmployerPhone == "" || body.ProfileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "employerName, employerPhone and profileId are required", nil)
		return
	}

	if _, err := h.Profiles.GetByID(c.Request.Context(), body.ProfileID); err != nil {
		if errors.Is(err, candidates.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}

	intent := Intent{
		ID:            uuid.NewString(),
		EmployerName:  body.EmployerName,
		EmployerPhone: body.EmployerPhone,
		ProfileID:     body.ProfileID,
		Message:       body.Message,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), intent); err != nil {
		telemetry.Error("hire_intent.create_failed", map[string]any{"profile_id": body.ProfileID, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save hire intent", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, intent)
}
