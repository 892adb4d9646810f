package service

import (
	"context"
	"io"
)

// StoredObject identifies an uploaded document.
type StoredObject struct {
	URL string // Publicly reachable URL.
	Key string // Content identifier inside the bucket, used for deletion.
}

// ObjectStorage is the document-storage collaborator consumed by the
// listings features. Only the boundary lives in this subsystem.
type ObjectStorage interface {
	// Upload stores the content under key and returns its public location.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (*StoredObject, error)

	// Delete removes a previously uploaded object.
	Delete(ctx context.Context, key string) error
}
