package candidates

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

// ErrInvalidInput is returned for client errors before any external call is made.
var ErrInvalidInput = errors.New("invalid input")

// Pipeline stage names used in error messages and metrics labels.
const (
	StageUpload        = "upload"
	StageOCR           = "ocr"
	StageTranscription = "transcription"
	StageExtraction    = "extraction"
	StagePersistence   = "persistence"
)

// StageError marks a fatal pipeline failure with the stage that caused it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
