package corpus

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"legalqa/internal/port"
)

// Options select a corpus source. Path wins over URL; a URL without an http
// scheme is a path relative to Dir; with neither, the asset is located under Dir.
type Options struct {
	URL      string
	Path     string
	Dir      string
	Includes []string
	Excludes []string
	Timeout  time.Duration
}

func Resolve(opts Options) (port.CorpusSource, error) {
	switch {
	case opts.Path != "":
		return NewFileSource(opts.Path), nil
	case strings.HasPrefix(opts.URL, "http://"), strings.HasPrefix(opts.URL, "https://"):
		return NewHTTPSource(opts.URL, opts.Timeout), nil
	case opts.URL != "":
		return NewFileSource(filepath.Join(opts.Dir, opts.URL)), nil
	}

	path, err := Locate(opts.Dir, opts.Includes, opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("failed to locate corpus under %s: %w", opts.Dir, err)
	}
	return NewFileSource(path), nil
}
