// Package textload reads whole text files into memory for searching and
// benchmarking.
//
// Files are read in one shot (the matchers need the full text anyway) and
// cached by path, so repeated benchmark invocations against the same
// articles do not re-read them from disk.
package textload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/strfind/strfind/internal/errors"
)

const (
	// DefaultCacheSize is the number of loaded files kept in memory.
	DefaultCacheSize = 16

	// DefaultMaxFileSize caps a single text at 64 MB. The matchers are
	// O(n) in memory, so an unbounded read is the only real risk here.
	DefaultMaxFileSize = 64 * 1024 * 1024
)

// Loader reads and caches text files.
type Loader struct {
	cache       *lru.Cache[string, string]
	maxFileSize int64
}

// Option configures a Loader.
type Option func(*loaderConfig)

type loaderConfig struct {
	cacheSize   int
	maxFileSize int64
}

// WithCacheSize sets how many loaded files the cache holds.
func WithCacheSize(n int) Option {
	return func(c *loaderConfig) {
		c.cacheSize = n
	}
}

// WithMaxFileSize sets the per-file size cap in bytes.
func WithMaxFileSize(n int64) Option {
	return func(c *loaderConfig) {
		c.maxFileSize = n
	}
}

// New creates a Loader.
func New(opts ...Option) (*Loader, error) {
	cfg := loaderConfig{
		cacheSize:   DefaultCacheSize,
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New[string, string](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create file cache: %w", err)
	}

	return &Loader{
		cache:       cache,
		maxFileSize: cfg.maxFileSize,
	}, nil
}

// Load returns the contents of path, from cache when possible.
// Non-UTF8 content is logged and returned as-is: the matchers are
// byte-oriented, so searching still works.
func (l *Loader) Load(path string) (string, error) {
	if text, ok := l.cache.Get(path); ok {
		slog.Debug("text_cache_hit", slog.String("path", path))
		return text, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound,
				fmt.Sprintf("text file %s does not exist", path), err).
				WithDetail("path", path).
				WithSuggestion("check the path passed via --texts or the config file")
		}
		return "", errors.Wrap(errors.ErrCodeFilePermission, err).WithDetail("path", path)
	}
	if info.Size() > l.maxFileSize {
		return "", errors.New(errors.ErrCodeFileTooLarge,
			fmt.Sprintf("text file %s is %d bytes, cap is %d", path, info.Size(), l.maxFileSize), nil).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFilePermission, err).WithDetail("path", path)
	}

	if !utf8.Valid(data) {
		slog.Warn("text_not_utf8", slog.String("path", path))
	}

	text := string(data)
	l.cache.Add(path, text)
	slog.Debug("text_loaded", slog.String("path", path), slog.Int("bytes", len(text)))
	return text, nil
}

// LoadAll loads several files concurrently and returns their contents in
// input order. The first failure cancels the remaining reads.
func (l *Loader) LoadAll(ctx context.Context, paths ...string) ([]string, error) {
	texts := make([]string, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := l.Load(path)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// Purge drops all cached file contents.
func (l *Loader) Purge() {
	l.cache.Purge()
}
