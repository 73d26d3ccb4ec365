package corpus

import (
	"context"
	"fmt"
	"os"

	"legalqa/internal/domain"
)

// FileSource reads the corpus asset from the local filesystem.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) (*domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (s *FileSource) Location() string {
	return s.path
}
