// Package share implements the public share and retrieve operations:
// submission validation, collision-safe short key allocation, and record
// retrieval by key.
package share

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/VishardMehta/TextDrop/internal/keygen"
	"github.com/VishardMehta/TextDrop/internal/model"
	"github.com/VishardMehta/TextDrop/internal/store"
)

// maxAttempts bounds the key allocation loop. Exhausting it is reported as
// ErrKeyspaceExhausted rather than retrying forever.
const maxAttempts = 10

const shareObjectPrefix = "shares"

var (
	// ErrInvalidInput reports a submission that fails validation before any
	// record is created.
	ErrInvalidInput = errors.New("invalid submission")
	// ErrInvalidKey reports a retrieval key with an unacceptable shape.
	ErrInvalidKey = errors.New("invalid short key")
	// ErrKeyspaceExhausted reports that no free key was found within the
	// attempt budget.
	ErrKeyspaceExhausted = errors.New("failed to allocate a unique short key")
	// ErrStoreFailure reports that the persistence layer failed; it is never
	// produced for a key collision.
	ErrStoreFailure = errors.New("storage failure")
)

// ContentStore is the part of the store the service depends on.
type ContentStore interface {
	TryCreate(ctx context.Context, record *model.SharedContent) error
	Lookup(ctx context.Context, key string) (*model.SharedContent, error)
}

// Service orchestrates sharing and retrieval. It holds no locks and no
// mutable state of its own; key races are settled entirely by the store.
type Service struct {
	Store ContentStore
	// Storage is optional; nil keeps file bodies in the database.
	Storage store.StorageClient

	generate func() string
}

// NewService creates a Service using the default key generator.
func NewService(st ContentStore, storage store.StorageClient) *Service {
	return &Service{
		Store:    st,
		Storage:  storage,
		generate: keygen.Generate,
	}
}

// Share validates the submission, allocates a free short key and persists
// the record exactly once. Key collisions from the store are absorbed here:
// each conflict picks a fresh candidate, never the same one again. Storage
// failures abort immediately instead of being retried as if they were
// collisions.
func (s *Service) Share(ctx context.Context, sub Submission) (*model.SharedContent, error) {
	record, err := sub.record()
	if err != nil {
		return nil, err
	}

	if err := s.offload(record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		record.ShortKey = s.generate()

		err := s.Store.TryCreate(ctx, record)
		if err == nil {
			return record, nil
		}
		if errors.Is(err, store.ErrKeyTaken) {
			continue
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	log.Printf("short key allocation exhausted %d attempts", maxAttempts)
	return nil, ErrKeyspaceExhausted
}

// Retrieve returns the record stored under key. The key shape is checked
// before the store is queried; store.ErrNotFound passes through unchanged.
func (s *Service) Retrieve(ctx context.Context, key string) (*model.SharedContent, error) {
	if !keygen.ValidKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	record, err := s.Store.Lookup(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if record.StorageObjectName != nil {
		body, err := s.fetchRemoteBody(*record.StorageObjectName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		record.Content = body
	}

	return record, nil
}

// offload moves a file body into the storage bucket when one is configured,
// leaving only the object name in the record.
func (s *Service) offload(record *model.SharedContent) error {
	if s.Storage == nil || !record.IsFile {
		return nil
	}

	ext := ""
	if record.FileName != nil {
		ext = filepath.Ext(*record.FileName)
	}
	objectName := fmt.Sprintf("%s/%s%s", shareObjectPrefix, uuid.NewString(), ext)

	if err := s.Storage.UploadFile(objectName, bytes.NewReader(record.Content)); err != nil {
		return err
	}

	record.StorageObjectName = &objectName
	record.Content = nil
	return nil
}

func (s *Service) fetchRemoteBody(objectName string) ([]byte, error) {
	if s.Storage == nil {
		return nil, errors.New("cloud storage is disabled while the requested content is stored remotely")
	}

	reader, _, err := s.Storage.DownloadFile(objectName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close storage reader: %v", err)
		}
	}()

	return io.ReadAll(reader)
}
