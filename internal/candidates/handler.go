package candidates

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/shared/server/respond"
)

const maxSubmissionSize = 25 << 20 // id image + audio recording

// Handler wires HTTP handlers to the pipeline.
type Handler struct {
	Pipeline *Pipeline
	Repo     *Repo
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *Pipeline, repo *Repo) *Handler {
	return &Handler{Pipeline: pipeline, Repo: repo}
}

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates", h.process)
	rg.GET("/candidates/:id", h.get)
}

func (h *Handler) process(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionSize)

	idImage, err := readFilePart(c, "idImage")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "idImage is required", nil)
		return
	}
	audio, err := readFilePart(c, "audioBlob")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "audioBlob is required", nil)
		return
	}
	faceMatch := c.PostForm("faceMatchPercent")
	if faceMatch == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "faceMatchPercent is required", nil)
		return
	}

	profileID, err := h.Pipeline.Process(c.Request.Context(), ProcessInput{
		IDImage:          idImage,
		Audio:            audio,
		FaceMatchPercent: faceMatch,
	})
	if err != nil {
		var se *StageError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.As(err, &se) && se.Stage == StagePersistence:
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		case errors.As(err, &se):
			respond.Error(c, http.StatusBadGateway, "processing_failed", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process submission", nil)
		}
		return
	}

	c.Set("profileId", profileID)
	respond.JSON(c, http.StatusCreated, gin.H{"profileId": profileID})
}

func (h *Handler) get(c *gin.Context) {
	profile, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, profile)
}

func readFilePart(c *gin.Context, field string) (FilePart, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return FilePart{}, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return FilePart{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return FilePart{}, err
	}
	return FilePart{
		Name:        fileHeader.Filename,
		ContentType: partContentType(fileHeader),
		Data:        data,
	}, nil
}

func partContentType(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return fh.Header.Get("Content-Type")
}
