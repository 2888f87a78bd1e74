package media

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/viant/afs"
	_ "github.com/viant/afsc/s3" // registers the s3:// scheme

	"github.com/davidbz/synexis/internal/domain"
)

// FileReader reads media through afs, so local paths, file:// and s3:// URLs resolve.
type FileReader struct {
	fs afs.Service
}

// NewFileReader creates a reader on a fresh afs service.
func NewFileReader() *FileReader {
	return &FileReader{
		fs: afs.New(),
	}
}

// Read loads the whole file at path.
// Existence is not checked up front: a missing file is detected when the read fails.
func (r *FileReader) Read(ctx context.Context, path string) ([]byte, error) {
	reader, err := r.fs.OpenURL(ctx, path)
	if err != nil {
		return nil, r.classify(ctx, path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, domain.NewMediaReadError(path, err)
	}

	return data, nil
}

func (r *FileReader) classify(ctx context.Context, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewMediaNotFoundError(path, err)
	}

	if exists, existsErr := r.fs.Exists(ctx, path); existsErr == nil && !exists {
		return domain.NewMediaNotFoundError(path, err)
	}

	return domain.NewMediaReadError(path, err)
}
