package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"contentshare/internal/errors"
)

// allowedMediaTypes are the only accepted upload content types. Anything
// else fails the whole request.
var allowedMediaTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"video/mp4",
	"video/webm",
	"video/ogg",
}

// FileStorage stores an uploaded media blob and returns the path to record
// on the content. Implementations sniff the real content type; the client
// supplied header is not trusted.
type FileStorage interface {
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// detectMediaType sniffs the content type from the file bytes, rewinds the
// reader, and rejects anything outside the allowlist.
func detectMediaType(f multipart.File) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect media type: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}
	for _, allowed := range allowedMediaTypes {
		if mtype.Is(allowed) {
			return mtype, nil
		}
	}
	return nil, errors.ErrUnsupportedMediaType
}
