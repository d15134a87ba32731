package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ImageStore writes uploaded images to a fixed directory under generated
// unique filenames: a millisecond timestamp plus a random suffix, keeping the
// upload's original extension.
type ImageStore struct {
	dir string
}

// NewImageStore creates the image directory if needed and returns the store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating image directory %s", dir)
	}
	return &ImageStore{dir: dir}, nil
}

// Store reads the upload to completion before returning, so a record
// referencing the image is never saved with a half-written file behind it.
func (s *ImageStore) Store(originalName string, contents io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1e9), filepath.Ext(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "creating image file")
	}
	defer f.Close()

	if _, err := io.Copy(f, contents); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "writing image file")
	}
	return name, nil
}

// Remove deletes a stored image. A missing file is not an error: the record
// pointing at it is already gone either way.
func (s *ImageStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing image %s", filename)
	}
	return nil
}
