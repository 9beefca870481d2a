// Package archive lists the music files handed in for the event and probes
// their durations where the format allows it.
//
// The archive is treated as a flat list of filenames; directory structure
// carries no meaning beyond string matching. Durations are best-effort: a
// file whose length cannot be determined keeps DurationKnown=false, which is
// a distinct state from having no file at all and must survive through to
// reporting.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"isrevy/internal/domain/model"
)

// audioExtensions lists the file types accepted into the pool.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".aac":  true,
	".flac": true,
	".ogg":  true,
	".wma":  true,
}

const defaultProbeWorkers = 4

// Scanner reads a music archive from a directory or a ZIP file.
type Scanner struct {
	workers int
}

// Option applies a configuration option to the Scanner.
type Option func(*Scanner)

// WithProbeWorkers bounds the number of concurrent duration probes.
func WithProbeWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewScanner creates a Scanner with configuration options.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{workers: defaultProbeWorkers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan lists the archive at path (directory or ZIP) and probes durations.
// The returned order is the listing order of the underlying medium, which
// is stable between runs.
func (s *Scanner) Scan(ctx context.Context, path string) ([]*model.MusicAsset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	var assets []*model.MusicAsset
	var probes []probe
	if info.IsDir() {
		assets, probes, err = s.scanDir(path)
	} else {
		assets, probes, err = s.scanZip(path)
	}
	if err != nil {
		return nil, err
	}

	s.runProbes(ctx, probes)
	return assets, nil
}

// probe is one pending duration measurement that fills its asset.
type probe struct {
	asset *model.MusicAsset
	read  func() error
}

func isAudio(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

func (s *Scanner) scanDir(dir string) ([]*model.MusicAsset, []probe, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	var assets []*model.MusicAsset
	var probes []probe
	for _, entry := range entries {
		if entry.IsDir() || !isAudio(entry.Name()) {
			continue
		}
		a := &model.MusicAsset{Filename: entry.Name()}
		assets = append(assets, a)
		if isWAV(a.Filename) {
			full := filepath.Join(dir, entry.Name())
			probes = append(probes, probe{asset: a, read: func() error {
				return probeWAVFile(full, a)
			}})
		}
	}
	return assets, probes, nil
}

// runProbes measures durations on a small bounded worker pool. Each worker
// writes only its own asset, so no locking is needed beyond the wait.
func (s *Scanner) runProbes(ctx context.Context, probes []probe) {
	if len(probes) == 0 {
		return
	}
	jobs := make(chan probe)
	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				// A failed probe leaves DurationKnown=false.
				_ = p.read()
			}
		}()
	}
	for _, p := range probes {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()
}
