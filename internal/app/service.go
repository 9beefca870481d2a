// Package service runs the admin pipeline: read the source files,
// reconcile them, allocate music, build the timeline and record the
// result as a run.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"isrevy/internal/adapters/archive"
	"isrevy/internal/adapters/fsexport"
	"isrevy/internal/adapters/orderfile"
	"isrevy/internal/adapters/regsheet"
	"isrevy/internal/adapters/repository"
	"isrevy/internal/domain/model"
	"isrevy/internal/domain/music"
	"isrevy/internal/domain/order"
	"isrevy/internal/domain/reconcile"
	"isrevy/internal/domain/schedule"
	"isrevy/pkg/logger"
	"isrevy/pkg/metrics"
)

const defaultProbeWorkers = 4

// Sources names the input files for one run. Every path is optional, but
// at least one of the registration sheet and the export must be present.
type Sources struct {
	RegistrationPath string
	ExportPath       string
	MusicPath        string
	OrderPath        string
	Title            string
}

// Service coordinates the pipeline phases. Each phase finishes before the
// next reads its output, so the participant records have exactly one
// writer at a time.
type Service struct {
	mu sync.Mutex

	store        repository.Store
	schedCfg     schedule.Config
	probeWorkers int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the run store that completed runs are saved to.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithScheduleConfig sets the timeline tunables.
func WithScheduleConfig(cfg schedule.Config) Option {
	return func(s *Service) {
		s.schedCfg = cfg
	}
}

// WithProbeWorkers sets how many music files are probed concurrently.
func WithProbeWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.probeWorkers = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:        repository.NewMemoryStore(),
		probeWorkers: defaultProbeWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Store returns the run store so the HTTP surface can read from it.
func (s *Service) Store() repository.Store {
	return s.store
}

// Run executes one full pass over the source files and saves the result.
// Runs are serialized; the returned Run is a finished snapshot.
func (s *Service) Run(ctx context.Context, src Sources) (repository.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src.RegistrationPath == "" && src.ExportPath == "" {
		return repository.Run{}, ErrNoSources
	}

	started := time.Now()

	regRows, export, err := s.loadSources(ctx, src)
	if err != nil {
		return repository.Run{}, err
	}

	participants := reconcile.Reconcile(regRows, export.Rows)
	metrics.UpdateParticipants(len(participants))
	s.logger.Info(ctx, "sources reconciled",
		logger.Int("registrations", len(regRows)),
		logger.Int("exportRows", len(export.Rows)),
		logger.Int("participants", len(participants)),
	)

	if src.MusicPath != "" {
		if err := s.allocateMusic(ctx, src.MusicPath, participants); err != nil {
			return repository.Run{}, err
		}
	}

	discrepancies := reconcile.Discrepancies(participants)
	for _, d := range discrepancies {
		metrics.RecordDiscrepancy(string(d.Kind))
	}

	skating := skatingOrder(participants)
	if src.OrderPath != "" {
		skating, err = s.applySavedOrder(ctx, src.OrderPath, skating)
		if err != nil {
			return repository.Run{}, err
		}
	}

	entries := schedule.Build(skating, s.schedCfg)
	metrics.RecordScheduleBuild(len(entries))

	run := repository.Run{
		Title:         src.Title,
		Participants:  participants,
		Discrepancies: discrepancies,
		Schedule:      entries,
		Officials:     export.Officials,
	}
	id, err := s.store.Save(ctx, run)
	if err != nil {
		return repository.Run{}, fmt.Errorf("%w: %w", ErrRun, err)
	}
	run.ID = id

	metrics.RecordRunDuration(time.Since(started).Seconds())
	s.logger.Info(ctx, "run complete",
		logger.String("run", id),
		logger.Int("entries", len(entries)),
		logger.Int("discrepancies", len(discrepancies)),
		logger.Duration("took", time.Since(started)),
	)

	return run, nil
}

// SaveOrder writes the current skating order of the latest run to path so
// a later run can restore it.
func (s *Service) SaveOrder(ctx context.Context, path string) error {
	run, err := s.store.Latest(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRun, err)
	}
	skating := make([]*model.Participant, 0, len(run.Schedule))
	for _, e := range run.Schedule {
		if e.Kind == schedule.KindSkater {
			skating = append(skating, e.Participant)
		}
	}
	if err := orderfile.Save(path, skating, run.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrRun, err)
	}
	return nil
}

func (s *Service) loadSources(ctx context.Context, src Sources) ([]model.RegistrationRow, fsexport.Export, error) {
	var regRows []model.RegistrationRow
	var export fsexport.Export

	if src.RegistrationPath != "" {
		rows, err := regsheet.ReadFile(src.RegistrationPath)
		if err != nil {
			return nil, fsexport.Export{}, fmt.Errorf("%w: %w", ErrSource, err)
		}
		regRows = rows
		metrics.RecordSourceRows("registration", len(rows))
		s.logger.Debug(ctx, "registration sheet read",
			logger.String("path", src.RegistrationPath),
			logger.Int("rows", len(rows)),
		)
	}

	if src.ExportPath != "" {
		var err error
		if strings.EqualFold(filepath.Ext(src.ExportPath), ".zip") {
			export, err = fsexport.ReadZip(src.ExportPath)
		} else {
			export, err = fsexport.ReadFile(src.ExportPath)
		}
		if err != nil {
			return nil, fsexport.Export{}, fmt.Errorf("%w: %w", ErrSource, err)
		}
		metrics.RecordSourceRows("export", len(export.Rows))
		s.logger.Debug(ctx, "export read",
			logger.String("path", src.ExportPath),
			logger.Int("rows", len(export.Rows)),
			logger.Int("officials", export.Officials),
		)
	}

	return regRows, export, nil
}

func (s *Service) allocateMusic(ctx context.Context, path string, participants []*model.Participant) error {
	scanner := archive.NewScanner(archive.WithProbeWorkers(s.probeWorkers))
	assets, err := scanner.Scan(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSource, err)
	}
	metrics.RecordSourceRows("music", len(assets))

	music.Allocate(participants, assets)

	assigned := 0
	for _, p := range participants {
		if !p.Skating() {
			continue
		}
		if p.Asset != nil {
			assigned++
			metrics.RecordMusicAssignment(true)
		} else {
			metrics.RecordMusicAssignment(false)
		}
	}
	s.logger.Info(ctx, "music allocated",
		logger.Int("assets", len(assets)),
		logger.Int("assigned", assigned),
	)
	return nil
}

func (s *Service) applySavedOrder(ctx context.Context, path string, skating []*model.Participant) ([]*model.Participant, error) {
	doc, err := orderfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	s.logger.Debug(ctx, "saved order applied",
		logger.String("path", path),
		logger.Int("keys", len(doc.Keys)),
	)
	return order.Apply(doc.Keys, skating), nil
}

// skatingOrder keeps the participants expected on the ice, in table order.
func skatingOrder(participants []*model.Participant) []*model.Participant {
	skating := make([]*model.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Skating() {
			skating = append(skating, p)
		}
	}
	return skating
}
