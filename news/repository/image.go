package repository

import "io"

// ImageRepository defines the interface for uploaded image storage.
type ImageRepository interface {
	// Store reads the upload to completion and writes it under a generated
	// unique filename that preserves originalName's extension. The generated
	// filename is returned.
	Store(originalName string, contents io.Reader) (string, error)

	// Remove deletes a stored image. Removing an image that no longer exists
	// is not an error.
	Remove(filename string) error
}
