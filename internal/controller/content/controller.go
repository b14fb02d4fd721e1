// Package content provides HTTP handlers for sharing and retrieving content.
package content

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VishardMehta/TextDrop/internal/share"
	"github.com/VishardMehta/TextDrop/internal/store"
	"github.com/VishardMehta/TextDrop/internal/utilities"
)

// ContentController handles the share and retrieve endpoints.
type ContentController struct {
	Service *share.Service
	// BaseURL is used to compose share links when the request carries no
	// Origin header.
	BaseURL string
}

// NewContentController creates a new instance of ContentController
func NewContentController(service *share.Service, baseURL string) *ContentController {
	return &ContentController{
		Service: service,
		BaseURL: baseURL,
	}
}

type shareRequest struct {
	Text        string `json:"text"`
	Content     string `json:"content"`
	IsFile      bool   `json:"isFile"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
}

// ShareResponse is the payload returned after a successful share.
type ShareResponse struct {
	ShortKey string `json:"shortKey"`
	URL      string `json:"url"`
}

// ContentResponse is the payload returned when content is retrieved. Text
// holds the raw text, or the base64 encoding of the body for files.
type ContentResponse struct {
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
	IsFile      bool      `json:"isFile"`
	FileName    *string   `json:"fileName,omitempty"`
	FileSize    *int64    `json:"fileSize,omitempty"`
	ContentType *string   `json:"contentType,omitempty"`
}

// ShareContent stores submitted text or a base64-encoded file and returns
// the allocated short key together with a share URL.
// @Summary Share text or a file
// @Description Text submissions carry {text}; file submissions carry {content (base64), isFile, fileName, fileSize, contentType}. Bodies above 10 MB are rejected.
// @Tags Share
// @Accept json
// @Produce json
// @Param submission body shareRequest true "Content to share"
// @Success 200 {object} ShareResponse "Short key allocated"
// @Failure 400 {object} utilities.ErrorResponse "Missing or empty content"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 500 {object} utilities.ErrorResponse "Key allocation or storage failure"
// @Router /share [post]
func (cc *ContentController) ShareContent(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body"})
		return
	}

	sub, ok := cc.buildSubmission(c, req)
	if !ok {
		return
	}

	record, err := cc.Service.Share(c.Request.Context(), sub)
	if err != nil {
		cc.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ShareResponse{
		ShortKey: record.ShortKey,
		URL:      fmt.Sprintf("%s/%s", cc.shareBase(c), record.ShortKey),
	})
}

// GetContent retrieves stored content by its short key.
// @Summary Retrieve shared content
// @Description The text field holds raw text, or base64 for file content.
// @Tags Share
// @Produce json
// @Param key path string true "Short key (4-6 alphanumeric characters)"
// @Success 200 {object} ContentResponse "Stored content"
// @Failure 400 {object} utilities.ErrorResponse "Malformed short key"
// @Failure 404 {object} utilities.ErrorResponse "Unknown short key"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /text/{key} [get]
func (cc *ContentController) GetContent(c *gin.Context) {
	record, err := cc.Service.Retrieve(c.Request.Context(), c.Param("key"))
	if err != nil {
		cc.writeServiceError(c, err)
		return
	}

	text := string(record.Content)
	if record.IsFile {
		text = base64.StdEncoding.EncodeToString(record.Content)
	}

	c.JSON(http.StatusOK, ContentResponse{
		Text:        text,
		CreatedAt:   record.CreatedAt,
		IsFile:      record.IsFile,
		FileName:    record.FileName,
		FileSize:    record.FileSize,
		ContentType: record.ContentType,
	})
}

func (cc *ContentController) buildSubmission(c *gin.Context, req shareRequest) (share.Submission, bool) {
	if !req.IsFile {
		return share.TextSubmission{Text: req.Text}, true
	}

	if req.Content == "" || req.FileName == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "File content and name are required"})
		return nil, false
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "File content is not valid base64"})
		return nil, false
	}

	return share.FileSubmission{
		Content:     decoded,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
	}, true
}

// shareBase picks the origin for composing the public share URL: the
// caller's Origin header when present, otherwise the configured base URL.
func (cc *ContentController) shareBase(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	if cc.BaseURL != "" {
		return cc.BaseURL
	}
	return "http://" + c.Request.Host
}

// writeServiceError maps service errors to transport statuses. Internal
// detail is logged, not echoed to the client.
func (cc *ContentController) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, share.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Content is required"})
	case errors.Is(err, share.ErrInvalidKey):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid short key"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Text not found"})
	case errors.Is(err, share.ErrKeyspaceExhausted):
		log.Printf("share failed: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to generate unique key"})
	default:
		log.Printf("share service error: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
	}
}
