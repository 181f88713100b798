package employers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hirehand-backend/internal/shared/server/respond"
	"hirehand-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to employer request storage and matching.
type Handler struct {
	Repo    Repo
	Matcher *Matcher
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, matcher *Matcher) *Handler {
	return &Handler{Repo: repo, Matcher: matcher}
}

// RegisterRoutes attaches employer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/employer-requests", h.create)
	rg.GET("/employer-requests/:id", h.get)
	rg.GET("/matches", h.matches)
}

type createRequestBody struct {
	Phone              string `json:"phone"`
	Service            string `json:"service"`
	Locality           string `json:"locality"`
	GenderPreference   string `json:"genderPreference"`
	HireType           string `json:"hireType"`
	SkillLevel         string `json:"skillLevel"`
	MaxSalary          int64  `json:"maxSalary"`
	MinExperienceYears int    `json:"minExperienceYears"`
}

func (h *Handler) create(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if body.Phone == "" || body.Service == "" || body.Locality == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "phone, service and locality are required", nil)
		return
	}
	if body.MaxSalary <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "maxSalary must be positive", nil)
		return
	}
	if body.MinExperienceYears < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "minExperienceYears must not be negative", nil)
		return
	}

	req := Request{
		ID:                 uuid.NewString(),
		Phone:              body.Phone,
		Service:            body.Service,
		Locality:           body.Locality,
		GenderPreference:   body.GenderPreference,
		HireType:           body.HireType,
		SkillLevel:         body.SkillLevel,
		MaxSalary:          body.MaxSalary,
		MinExperienceYears: body.MinExperienceYears,
		CreatedAt:          time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), req); err != nil {
		telemetry.Error("employer_request.create_failed", map[string]any{"service": req.Service, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save request", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, req)
}

func (h *Handler) get(c *gin.Context) {
	req, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "employer request not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch request", nil)
		return
	}
	respond.JSON(c, http.StatusOK, req)
}

func (h *Handler) matches(c *gin.Context) {
	requestID := c.Query("requestId")
	if requestID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "requestId is required", nil)
		return
	}

	req, err := h.Repo.GetByID(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "employer request not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch request", nil)
		return
	}

	matched, err := h.Matcher.Match(c.Request.Context(), req)
	if err != nil {
		telemetry.Error("matches.failed", map[string]any{"request_id": requestID, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute matches", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"request": req,
		"matches": matched,
	})
}
