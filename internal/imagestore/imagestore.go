// Package imagestore persists gallery images in an S3-compatible
// object store and hands back opaque references.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"serenityplace/internal/models"
)

// ErrDisabled is returned by the no-op store when uploads are attempted
// without configured storage; callers degrade to a placeholder ref.
var ErrDisabled = errors.New("image storage not configured")

// Store uploads and releases images. Upload returns a reference with a
// stable key for later release and a URL clients can render.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (models.ImageRef, error)
	Delete(ctx context.Context, key string) error
}

// objectKey spreads uploads over date-based prefixes.
func objectKey() string {
	d := time.Now()
	return fmt.Sprintf("gallery/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Disabled is a Store that rejects uploads and ignores deletes. Used
// when no S3 bucket is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, []byte, string) (models.ImageRef, error) {
	return models.ImageRef{}, ErrDisabled
}

func (Disabled) Delete(context.Context, string) error { return nil }
