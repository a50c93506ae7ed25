package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// FileStorage stores accommodation images under slash-separated keys
type FileStorage interface {
	Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
	Driver() string
}

// OperationRecorder records storage call latency and outcome
type OperationRecorder interface {
	RecordStorageOperation(driver, operation string, duration time.Duration, err error)
}

// ImageKey builds the key of an accommodation image:
// accommodations/{accommodationID}/{filename}
func ImageKey(accommodationID uuid.UUID, filename string) string {
	return path.Join("accommodations", accommodationID.String(), SanitizeFilename(filename))
}

// SanitizeFilename strips directories and any character outside
// letters, digits, '.', '-' and '_'
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		out = "image"
	}
	return out
}

// AvailableKey returns key, or key with a short random suffix before the
// extension when key is already taken
func AvailableKey(ctx context.Context, s FileStorage, key string) (string, error) {
	exists, err := s.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check key %s: %w", key, err)
	}
	if !exists {
		return key, nil
	}

	ext := path.Ext(key)
	base := strings.TrimSuffix(key, ext)
	for i := 0; i < 5; i++ {
		candidate := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)
		exists, err := s.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check key %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free key for %s", key)
}

// instrumented decorates a FileStorage with metrics
type instrumented struct {
	next     FileStorage
	recorder OperationRecorder
}

// WithMetrics wraps s so every call is recorded; a nil recorder returns s unchanged
func WithMetrics(s FileStorage, recorder OperationRecorder) FileStorage {
	if recorder == nil {
		return s
	}
	return &instrumented{next: s, recorder: recorder}
}

func (i *instrumented) Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	start := time.Now()
	err := i.next.Save(ctx, key, body, size, contentType)
	i.recorder.RecordStorageOperation(i.next.Driver(), "save", time.Since(start), err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.next.Delete(ctx, key)
	i.recorder.RecordStorageOperation(i.next.Driver(), "delete", time.Since(start), err)
	return err
}

func (i *instrumented) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	ok, err := i.next.Exists(ctx, key)
	i.recorder.RecordStorageOperation(i.next.Driver(), "exists", time.Since(start), err)
	return ok, err
}

func (i *instrumented) URL(key string) string {
	return i.next.URL(key)
}

func (i *instrumented) Driver() string {
	return i.next.Driver()
}
