package share

import (
	"fmt"
	"strings"

	"github.com/VishardMehta/TextDrop/internal/model"
)

// MaxContentBytes is the largest body the service accepts (10 MB). The HTTP
// layer limits request size as well; this check covers callers that reach
// the service directly.
const MaxContentBytes = 10 << 20

// Submission is one unit of content offered for sharing, either plain text
// or a file. The two variants validate and persist differently, so they are
// separate types instead of one struct with optional fields.
type Submission interface {
	// record validates the submission and builds the row to persist.
	record() (*model.SharedContent, error)
}

// TextSubmission shares a plain text snippet.
type TextSubmission struct {
	Text string
}

func (s TextSubmission) record() (*model.SharedContent, error) {
	body := strings.TrimSpace(s.Text)
	if body == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if len(body) > MaxContentBytes {
		return nil, fmt.Errorf("%w: text exceeds %d bytes", ErrInvalidInput, MaxContentBytes)
	}
	return &model.SharedContent{Content: []byte(body)}, nil
}

// FileSubmission shares a file body with its metadata. Content holds the
// decoded bytes, not their transport encoding.
type FileSubmission struct {
	Content     []byte
	FileName    string
	FileSize    int64
	ContentType string
}

func (s FileSubmission) record() (*model.SharedContent, error) {
	if len(s.Content) == 0 || s.FileName == "" {
		return nil, fmt.Errorf("%w: file content and name are required", ErrInvalidInput)
	}
	if len(s.Content) > MaxContentBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, MaxContentBytes)
	}

	name := s.FileName
	size := s.FileSize
	if size <= 0 {
		size = int64(len(s.Content))
	}
	contentType := s.ContentType

	return &model.SharedContent{
		Content:     s.Content,
		IsFile:      true,
		FileName:    &name,
		FileSize:    &size,
		ContentType: &contentType,
	}, nil
}
