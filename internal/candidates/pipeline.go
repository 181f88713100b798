package candidates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hirehand-backend/internal/extraction"
	"hirehand-backend/internal/shared/metrics"
	"hirehand-backend/internal/shared/storage/blob"
	"hirehand-backend/internal/shared/telemetry"
	"hirehand-backend/internal/speech"
	"hirehand-backend/internal/vision"
)

// FilePart is one uploaded artifact held in memory for the duration of a run.
type FilePart struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProcessInput carries the three mandatory submission parts.
type ProcessInput struct {
	IDImage          FilePart
	Audio            FilePart
	FaceMatchPercent string
}

// Pipeline orchestrates one onboarding run: store both artifacts, analyze
// them, merge the outputs into a Profile and persist it exactly once.
// All dependencies are constructed at process start and injected.
type Pipeline struct {
	Blob      blob.Store
	OCR       vision.OCRService
	Speech    speech.Transcriber
	Extractor extraction.Extractor
	Repo      *Repo
}

// Process runs the full pipeline and returns the new profile ID. On any
// fatal stage failure it returns a single error naming the stage, and no
// profile is written. Structured-extraction parse trouble degrades to
// defaults inside the extractor and does not fail the run.
func (p *Pipeline) Process(ctx context.Context, in ProcessInput) (string, error) {
	if len(in.IDImage.Data) == 0 {
		return "", fmt.Errorf("%w: idImage is required", ErrInvalidInput)
	}
	if len(in.Audio.Data) == 0 {
		return "", fmt.Errorf("%w: audioBlob is required", ErrInvalidInput)
	}
	rawScore := strings.TrimSpace(in.FaceMatchPercent)
	if rawScore == "" {
		return "", fmt.Errorf("%w: faceMatchPercent is required", ErrInvalidInput)
	}
	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return "", fmt.Errorf("%w: faceMatchPercent must be numeric", ErrInvalidInput)
	}

	metrics.IncPipelineStarted()
	startedAt := time.Now()

	// Stage 1: both artifacts go to durable storage concurrently. Downstream
	// analysis never runs against artifacts that were not stored.
	var imageURL, audioURL string
	uploadStart := time.Now()
	uploads, uploadCtx := errgroup.WithContext(ctx)
	uploads.Go(func() error {
		url, err := p.Blob.Put(uploadCtx, in.IDImage.Name, in.IDImage.ContentType, bytes.NewReader(in.IDImage.Data))
		if err != nil {
			return fmt.Errorf("id image: %w", err)
		}
		imageURL = url
		return nil
	})
	uploads.Go(func() error {
		url, err := p.Blob.Put(uploadCtx, in.Audio.Name, in.Audio.ContentType, bytes.NewReader(in.Audio.Data))
		if err != nil {
			return fmt.Errorf("audio: %w", err)
		}
		audioURL = url
		return nil
	})
	err = uploads.Wait()
	metrics.ObserveStageDuration(StageUpload, time.Since(uploadStart).Seconds())
	if err != nil {
		metrics.IncPipelineFailed(StageUpload)
		return "", stageErr(StageUpload, err)
	}

	// Stage 2: OCR and transcription are independent; join both, first
	// failure wins and is fatal.
	var ocrText, transcript string
	analysis, analysisCtx := errgroup.WithContext(ctx)
	analysis.Go(func() error {
		start := time.Now()
		text, err := p.OCR.ParseImageURL(analysisCtx, imageURL)
		metrics.ObserveStageDuration(StageOCR, time.Since(start).Seconds())
		if err != nil {
			return stageErr(StageOCR, err)
		}
		ocrText = text
		return nil
	})
	analysis.Go(func() error {
		start := time.Now()
		text, err := p.Speech.Transcribe(analysisCtx, in.Audio.Name, in.Audio.Data)
		metrics.ObserveStageDuration(StageTranscription, time.Since(start).Seconds())
		if err != nil {
			return stageErr(StageTranscription, err)
		}
		transcript = text
		return nil
	})
	if err := analysis.Wait(); err != nil {
		stage := StageOCR
		var se *StageError
		if errors.As(err, &se) {
			stage = se.Stage
		}
		metrics.IncPipelineFailed(stage)
		return "", err
	}

	// Stage 3: local heuristic, never fails.
	name := ExtractName(ocrText)

	// Stage 4: structured extraction needs the transcript, so it is the one
	// stage ordered after transcription.
	extractStart := time.Now()
	fields, err := p.Extractor.Extract(ctx, transcript)
	metrics.ObserveStageDuration(StageExtraction, time.Since(extractStart).Seconds())
	if err != nil {
		metrics.IncPipelineFailed(StageExtraction)
		return "", stageErr(StageExtraction, err)
	}

	// Stage 5: assemble and persist in a single key write.
	profile := Profile{
		ID:                 uuid.NewString(),
		Name:               name,
		FaceMatchScore:     score,
		IDImageURL:         imageURL,
		AudioURL:           audioURL,
		Transcript:         transcript,
		Skills:             fields.Skills,
		ExperienceYears:    fields.ExperienceYears,
		SalaryExpectation:  fields.SalaryExpectation,
		VerificationStatus: StatusPending,
		CreatedAt:          time.Now().UTC(),
	}
	if err := p.Repo.Create(ctx, profile); err != nil {
		metrics.IncPipelineFailed(StagePersistence)
		return "", stageErr(StagePersistence, err)
	}

	metrics.IncPipelineCompleted()
	telemetry.Info("pipeline.completed", map[string]any{
		"profile_id":  profile.ID,
		"duration_ms": float64(time.Since(startedAt).Microseconds()) / 1000.0,
		"name_found":  name != NameNotFound,
		"skills":      len(profile.Skills),
	})
	return profile.ID, nil
}
