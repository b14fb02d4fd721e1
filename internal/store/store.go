// Package store owns durable persistence of shared content records. The
// unique index on the short_key column is the single authority on key
// uniqueness: among concurrent inserts racing on the same key exactly one
// succeeds, the rest observe ErrKeyTaken.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/VishardMehta/TextDrop/internal/database"
	"github.com/VishardMehta/TextDrop/internal/model"
)

var (
	// ErrKeyTaken reports that a record already exists under the chosen short key.
	ErrKeyTaken = errors.New("short key already taken")
	// ErrNotFound reports that no record exists under the given short key.
	ErrNotFound = errors.New("content not found")
	// ErrUnavailable reports that the database could not serve the request.
	ErrUnavailable = errors.New("storage unavailable")
)

// queryTimeout bounds every database call so a stuck connection surfaces as
// ErrUnavailable instead of hanging the request.
const queryTimeout = 5 * time.Second

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// ContentStore persists SharedContent records in PostgreSQL through GORM.
type ContentStore struct {
	DB *database.DBinstanceStruct
}

// NewContentStore creates a ContentStore backed by the given database instance.
func NewContentStore(db *database.DBinstanceStruct) *ContentStore {
	return &ContentStore{DB: db}
}

// TryCreate inserts record under its ShortKey. It never pre-checks whether
// the key is free; the insert itself either wins or reports the conflict, so
// two callers racing on the same key cannot both succeed.
func (s *ContentStore) TryCreate(ctx context.Context, record *model.SharedContent) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := s.DB.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrKeyTaken
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Lookup returns the record stored under key by exact match.
func (s *ContentStore) Lookup(ctx context.Context, key string) (*model.SharedContent, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record model.SharedContent
	if err := s.DB.WithContext(ctx).Where("short_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &record, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
