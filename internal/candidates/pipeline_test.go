package candidates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"hirehand-backend/internal/extraction"
	"hirehand-backend/internal/shared/storage/kv/memory"
)

type fakeBlob struct {
	mu       sync.Mutex
	calls    []string
	failName string
	delay    map[string]time.Duration
}

func (f *fakeBlob) Put(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	f.mu.Lock()
	delay := f.delay[fileName]
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, fileName)
	f.mu.Unlock()

	if fileName == f.failName {
		return "", errors.New("bucket unavailable")
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return "https://blobs.example/" + fileName, nil
}

type fakeOCR struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (f *fakeOCR) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeOCR) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, fileName string, audio []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeExtractor struct {
	fields extraction.Fields
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, transcript string) (extraction.Fields, error) {
	if f.err != nil {
		return extraction.Fields{}, f.err
	}
	return f.fields, nil
}

type failingKV struct {
	*memory.Store
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("write refused")
}

func validInput() ProcessInput {
	return ProcessInput{
		IDImage:          FilePart{Name: "id.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
		Audio:            FilePart{Name: "note.webm", ContentType: "audio/webm", Data: []byte("webm-bytes")},
		FaceMatchPercent: "87.5",
	}
}

func newTestPipeline(store *memory.Store) (*Pipeline, *fakeBlob, *fakeOCR, *fakeTranscriber, *fakeExtractor) {
	blobStore := &fakeBlob{delay: map[string]time.Duration{}}
	ocr := &fakeOCR{text: "Name: Ramesh Kumar\nDOB: 12/03/1990"}
	transcriber := &fakeTranscriber{text: "I have five years experience cooking North Indian food, expect ten thousand rupees a month"}
	extractor := &fakeExtractor{fields: extraction.Fields{
		Skills:            []string{"North Indian cooking"},
		ExperienceYears:   5,
		SalaryExpectation: "10,000 rupees per month",
	}}
	pipeline := &Pipeline{
		Blob:      blobStore,
		OCR:       ocr,
		Speech:    transcriber,
		Extractor: extractor,
		Repo:      &Repo{KV: store},
	}
	return pipeline, blobStore, ocr, transcriber, extractor
}

func TestProcessEndToEnd(t *testing.T) {
	store := memory.New()
	pipeline, _, _, transcriber, _ := newTestPipeline(store)

	id, err := pipeline.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if id == "" {
		t.Fatal("expected a profile id")
	}

	profile, err := pipeline.Repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.Name != "Ramesh Kumar" {
		t.Errorf("name = %q", profile.Name)
	}
	if profile.FaceMatchScore != 87.5 {
		t.Errorf("faceMatchScore = %v", profile.FaceMatchScore)
	}
	if profile.IDImageURL != "https://blobs.example/id.jpg" {
		t.Errorf("idImageUrl = %q", profile.IDImageURL)
	}
	if profile.AudioURL != "https://blobs.example/note.webm" {
		t.Errorf("audioUrl = %q", profile.AudioURL)
	}
	if profile.Transcript != transcriber.text {
		t.Errorf("transcript = %q", profile.Transcript)
	}
	if len(profile.Skills) != 1 || !strings.Contains(profile.Skills[0], "cooking") {
		t.Errorf("skills = %v", profile.Skills)
	}
	if profile.ExperienceYears != 5 {
		t.Errorf("experienceYears = %v", profile.ExperienceYears)
	}
	if !strings.Contains(profile.SalaryExpectation, "10,000") {
		t.Errorf("salaryExpectation = %q", profile.SalaryExpectation)
	}
	if profile.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
	if profile.VerificationStatus != StatusPending {
		t.Errorf("verificationStatus = %q", profile.VerificationStatus)
	}
}

func TestProcessMissingInputs(t *testing.T) {
	store := memory.New()
	pipeline, blobStore, _, _, _ := newTestPipeline(store)

	cases := []struct {
		label  string
		mutate func(*ProcessInput)
	}{
		{label: "missing id image", mutate: func(in *ProcessInput) { in.IDImage.Data = nil }},
		{label: "missing audio", mutate: func(in *ProcessInput) { in.Audio.Data = nil }},
		{label: "missing face match", mutate: func(in *ProcessInput) { in.FaceMatchPercent = "" }},
		{label: "non-numeric face match", mutate: func(in *ProcessInput) { in.FaceMatchPercent = "high" }},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if _, err := pipeline.Process(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.label, err)
		}
	}

	if len(blobStore.calls) != 0 {
		t.Errorf("validation failures must not reach the blob store, got calls %v", blobStore.calls)
	}
	assertNoProfiles(t, store)
}

func TestProcessUploadFailureAbortsPipeline(t *testing.T) {
	store := memory.New()
	pipeline, blobStore, ocr, _, _ := newTestPipeline(store)
	blobStore.failName = "note.webm"

	_, err := pipeline.Process(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageUpload {
		t.Fatalf("expected upload stage error, got %v", err)
	}
	if ocr.callCount() != 0 {
		t.Error("ocr must not be called after a failed upload")
	}
	assertNoProfiles(t, store)
}

func TestProcessOCRFailureIsFatal(t *testing.T) {
	store := memory.New()
	pipeline, _, ocr, _, _ := newTestPipeline(store)
	ocr.err = errors.New("engine timeout")

	_, err := pipeline.Process(context.Background(), validInput())
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageOCR {
		t.Fatalf("expected ocr stage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "engine timeout") {
		t.Errorf("error should carry the cause, got %v", err)
	}
	assertNoProfiles(t, store)
}

func TestProcessTranscriptionFailureIsFatal(t *testing.T) {
	store := memory.New()
	pipeline, _, _, transcriber, _ := newTestPipeline(store)
	transcriber.err = errors.New("model overloaded")

	_, err := pipeline.Process(context.Background(), validInput())
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageTranscription {
		t.Fatalf("expected transcription stage error, got %v", err)
	}
	assertNoProfiles(t, store)
}

func TestProcessExtractionDegradesToDefaults(t *testing.T) {
	store := memory.New()
	pipeline, _, _, transcriber, extractor := newTestPipeline(store)
	extractor.fields = extraction.DefaultFields()

	id, err := pipeline.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("degraded extraction must not fail the run: %v", err)
	}

	profile, err := pipeline.Repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(profile.Skills) != 0 {
		t.Errorf("skills = %v, want empty", profile.Skills)
	}
	if profile.ExperienceYears != 0 {
		t.Errorf("experienceYears = %v, want 0", profile.ExperienceYears)
	}
	if profile.SalaryExpectation != "Not specified" {
		t.Errorf("salaryExpectation = %q", profile.SalaryExpectation)
	}
	if profile.Transcript != transcriber.text {
		t.Error("transcript must survive a degraded extraction")
	}
}

func TestProcessExtractionTransportFailureIsFatal(t *testing.T) {
	store := memory.New()
	pipeline, _, _, _, extractor := newTestPipeline(store)
	extractor.err = errors.New("connection refused")

	_, err := pipeline.Process(context.Background(), validInput())
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageExtraction {
		t.Fatalf("expected extraction stage error, got %v", err)
	}
	assertNoProfiles(t, store)
}

func TestProcessPersistenceFailureIsFatal(t *testing.T) {
	store := memory.New()
	pipeline, _, _, _, _ := newTestPipeline(store)
	pipeline.Repo = &Repo{KV: &failingKV{Store: store}}

	_, err := pipeline.Process(context.Background(), validInput())
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StagePersistence {
		t.Fatalf("expected persistence stage error, got %v", err)
	}
}

func TestProcessResubmissionCreatesDistinctProfiles(t *testing.T) {
	store := memory.New()
	pipeline, _, _, _, _ := newTestPipeline(store)

	first, err := pipeline.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := pipeline.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first == second {
		t.Fatal("identical inputs must still produce distinct profiles")
	}

	profiles, err := pipeline.Repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}

func TestProcessUploadOrderDoesNotChangeRecord(t *testing.T) {
	run := func(delayed string) Profile {
		store := memory.New()
		pipeline, blobStore, _, _, _ := newTestPipeline(store)
		blobStore.delay[delayed] = 20 * time.Millisecond

		id, err := pipeline.Process(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Process with %s delayed: %v", delayed, err)
		}
		profile, err := pipeline.Repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		return profile
	}

	imageSlow := run("id.jpg")
	audioSlow := run("note.webm")

	if imageSlow.IDImageURL != audioSlow.IDImageURL || imageSlow.AudioURL != audioSlow.AudioURL {
		t.Fatalf("urls differ by completion order: %+v vs %+v", imageSlow, audioSlow)
	}
	if imageSlow.Name != audioSlow.Name || imageSlow.Transcript != audioSlow.Transcript {
		t.Fatal("record content differs by upload completion order")
	}
	if fmt.Sprintf("%v", imageSlow.Skills) != fmt.Sprintf("%v", audioSlow.Skills) {
		t.Fatal("skills differ by upload completion order")
	}
}

func assertNoProfiles(t *testing.T, store *memory.Store) {
	t.Helper()
	keys, err := store.Keys(context.Background(), "candidate:")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no persisted profiles, found %v", keys)
	}
}
