package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"
	"github.com/rs/zerolog"
	"github.com/ryanuber/go-glob"
)

type SourceFile struct {
	Name string
	Path string
	Size int64
}

// FileSource enumerates candidate match files.
type FileSource interface {
	List(ctx context.Context, dir string) ([]SourceFile, error)
	Open(file SourceFile) (io.ReadCloser, error)
}

// DirSource lists regular files in a single directory whose names match a
// glob pattern, in natural order.
type DirSource struct {
	Pattern string
}

func NewDirSource(cfg *config.Config) *DirSource {
	return &DirSource{Pattern: cfg.ImportPattern}
}

func (d *DirSource) List(_ context.Context, dir string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory: %w", err)
	}

	pattern := strings.ToLower(d.Pattern)
	if pattern == "" {
		pattern = "*"
	}

	var files []SourceFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !glob.Glob(pattern, strings.ToLower(entry.Name())) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		files = append(files, SourceFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i].Name, files[j].Name)
	})

	return files, nil
}

func (d *DirSource) Open(file SourceFile) (io.ReadCloser, error) {
	return os.Open(file.Path)
}

type ScanService struct {
	source      FileSource
	importer    *ImportService
	defaultDir  string
	maxFileSize int64
	logger      zerolog.Logger
}

func NewScanService(source FileSource, importer *ImportService, cfg *config.Config, logger zerolog.Logger) *ScanService {
	return &ScanService{
		source:      source,
		importer:    importer,
		defaultDir:  cfg.ImportDir,
		maxFileSize: cfg.ImportMaxFileSize,
		logger:      logger,
	}
}

// ImportDirectory imports every candidate file in dir one at a time with
// the overwrite policy. A failing file is reported in its result and the
// scan moves on. An empty dir means the configured import directory.
func (s *ScanService) ImportDirectory(ctx context.Context, dir string) ([]domain.FileImportResult, domain.ImportSummary, error) {
	if dir == "" {
		dir = s.defaultDir
	}

	files, err := s.source.List(ctx, dir)
	if err != nil {
		return nil, domain.ImportSummary{}, err
	}

	s.logger.Info().Str("dir", dir).Int("files", len(files)).Msg("scanning for matches")

	results := make([]domain.FileImportResult, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, domain.Summarize(results), err
		}
		results = append(results, s.importFile(ctx, file))
	}

	summary := domain.Summarize(results)
	s.logger.Info().
		Str("dir", dir).
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("scan finished")

	return results, summary, nil
}

// ImportFiles imports the given paths in order with the overwrite policy.
func (s *ScanService) ImportFiles(ctx context.Context, paths []string) ([]domain.FileImportResult, domain.ImportSummary) {
	results := make([]domain.FileImportResult, 0, len(paths))
	for _, path := range paths {
		file := SourceFile{Name: filepath.Base(path), Path: path}
		info, err := os.Stat(path)
		if err != nil {
			results = append(results, domain.FileImportResult{
				File:         file.Name,
				ImportResult: errorResult("", fmt.Errorf("failed to stat file: %w", err)),
			})
			continue
		}
		file.Size = info.Size()
		results = append(results, s.importFile(ctx, file))
	}
	return results, domain.Summarize(results)
}

func (s *ScanService) importFile(ctx context.Context, file SourceFile) domain.FileImportResult {
	log := s.logger.With().Str("file", file.Name).Str("size", humanize.Bytes(uint64(file.Size))).Logger() //nolint:gosec

	if file.Size > s.maxFileSize {
		err := fmt.Errorf("file is %s, limit is %s", humanize.Bytes(uint64(file.Size)), humanize.Bytes(uint64(s.maxFileSize))) //nolint:gosec
		log.Warn().Err(err).Msg("skipping oversized file")
		return domain.FileImportResult{File: file.Name, ImportResult: errorResult("", err)}
	}

	rc, err := s.source.Open(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to open match file")
		return domain.FileImportResult{File: file.Name, ImportResult: errorResult("", fmt.Errorf("failed to open file: %w", err))}
	}
	defer rc.Close()

	result := s.importer.ImportReader(ctx, io.LimitReader(rc, s.maxFileSize+1), file.Path)
	log.Debug().Str("status", string(result.Status)).Str("match_id", result.MatchID).Msg("file processed")

	return domain.FileImportResult{File: file.Name, ImportResult: result}
}
