package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hirehand-backend/internal/shared/storage/blob"
	"hirehand-backend/internal/shared/util"
)

// Store implements blob.Store using the local filesystem. Files are served
// back through the router's /files route, so the returned URL is resolvable
// as long as publicBaseURL points at this process.
type Store struct {
	baseDir       string
	publicBaseURL string
}

// New creates a new local blob store rooted at baseDir.
func New(baseDir, publicBaseURL string) blob.Store {
	return &Store{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes the reader to disk and returns a URL under /files.
func (s *Store) Put(ctx context.Context, fileName string, contentType string, r io.Reader) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	_ = contentType

	if err := ctx.Err(); err != nil {
		return "", err
	}

	finalName := fmt.Sprintf("%s_%s", randomID(), sanitized)
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}

	return s.publicBaseURL + "/files/" + finalName, nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ blob.Store = (*Store)(nil)
