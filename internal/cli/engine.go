package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"legalqa/internal/adapter/corpus"
	"legalqa/internal/usecase"
)

// loadEngine resolves the corpus source from the config and loads it,
// drawing a progress bar on w while the index is built.
func loadEngine(ctx context.Context, w io.Writer, showProgress bool) (*usecase.Engine, error) {
	cfg := GetConfig()

	source, err := corpus.Resolve(corpus.Options{
		URL:      cfg.Corpus.URL,
		Path:     cfg.Corpus.Path,
		Dir:      GetRootDir(),
		Includes: cfg.Corpus.Includes,
		Excludes: cfg.Corpus.Excludes,
		Timeout:  time.Duration(cfg.Corpus.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	engineCfg := usecase.EngineConfig{
		K1:         cfg.Search.K1,
		B:          cfg.Search.B,
		MinScore:   cfg.Search.MinScore,
		MaxResults: cfg.Search.MaxResults,
		CacheSize:  cfg.Search.CacheSize,
		CacheTTL:   time.Duration(cfg.Search.CacheTTLSeconds) * time.Second,
	}
	if showProgress {
		engineCfg.Progress = indexProgress(w)
	}

	engine := usecase.NewEngine(source, engineCfg, logger)
	if err := engine.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load corpus from %s: %w", source.Location(), err)
	}
	return engine, nil
}

func indexProgress(w io.Writer) func(done, total int) {
	var bar *progressbar.ProgressBar

	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}
		bar.Set(done)
	}
}
