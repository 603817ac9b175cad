package stores

import (
	"io"
	"time"
)

// ObjectInfo describes a stored object during listing.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store is the object-storage boundary for reference audio.
type Store interface {
	Read(key string) (io.ReadCloser, int64, error)
	Write(key string, r io.Reader, size int64, contentType string) error
	Delete(key string) error
	Exists(key string) (bool, error)
	List(prefix string) ([]ObjectInfo, error)
	PublicURL(key string) string
}

// New selects the configured backend. MinIO is the default driver.
func New(driver string) Store {
	if driver == "cos" {
		return NewCosStore()
	}
	return NewMinioStore()
}
