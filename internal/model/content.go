// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// SharedContent is the persisted unit of sharing: one body of bytes plus its
// metadata, addressed by a short alphanumeric key. Records are created once
// and never updated or deleted; uniqueness of ShortKey is enforced by the
// database unique index, not by application code.
type SharedContent struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"-"`
	ShortKey string    `gorm:"type:varchar(6);uniqueIndex;not null;<-:create" json:"short_key"`

	// Content holds the raw body bytes. Nil when the body was offloaded to
	// cloud storage (see StorageObjectName).
	Content []byte `json:"-"`
	IsFile  bool   `gorm:"not null;default:false" json:"is_file"`

	// Only meaningful when IsFile is true.
	FileName    *string `gorm:"type:text" json:"file_name,omitempty"`
	FileSize    *int64  `json:"file_size,omitempty"`
	ContentType *string `gorm:"type:text" json:"content_type,omitempty"`

	// StorageObjectName is set when the body lives in the storage bucket
	// instead of the Content column.
	StorageObjectName *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
