package gateway

import (
	"context"
	"io"
)

// FileKind tells the object store how to treat the upload. Images are
// constrained to a bounding box on ingest; documents are stored as-is.
type FileKind string

const (
	FileKindImage    FileKind = "image"
	FileKindDocument FileKind = "document"
)

// FileUpload is one inbound file already vetted by the intake layer.
type FileUpload struct {
	Name        string
	ContentType string
	Kind        FileKind
	Reader      io.Reader
}

// ObjectStorage stores binary uploads with an external object store and
// returns a durable URL to persist on the owning record. Uploads block until
// the store acknowledges receipt.
type ObjectStorage interface {
	Upload(ctx context.Context, folder string, file FileUpload) (string, error)
}
