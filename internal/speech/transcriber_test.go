package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestTranscribeReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"I have five years experience cooking"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	transcriber := NewOpenAITranscriberWithClient(openai.NewClientWithConfig(cfg))

	text, err := transcriber.Transcribe(context.Background(), "note.webm", []byte("fake-audio"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "I have five years experience cooking" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestTranscribeRejectsEmptyAudio(t *testing.T) {
	transcriber := NewOpenAITranscriberWithClient(openai.NewClient("test-key"))
	if _, err := transcriber.Transcribe(context.Background(), "note.webm", nil); err == nil {
		t.Fatal("expected error for empty audio")
	}
}
