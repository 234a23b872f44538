package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Engine orchestrates a scan: one walker goroutine feeds a bounded pool of
// workers whose results are folded into a report by a single aggregator.
type Engine struct {
	opts          *Options
	logger        *slog.Logger
	processor     *FileProcessor
	aggregator    *reportAggregator
	concurrency   int
	totalScanned  atomic.Int64
	fatalOccurred atomic.Bool
}

// NewEngine creates an Engine from resolved options. Every injected
// dependency of opts except GitClient must be set; Scan does that.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("%w: Logger implementation (slog.Handler) cannot be nil", ErrConfigValidation)
	}
	if opts.CacheManager == nil || opts.LanguageDetector == nil || opts.EncodingHandler == nil {
		return nil, fmt.Errorf("%w: cache manager, language detector and encoding handler must be resolved", ErrConfigValidation)
	}
	if opts.EventHooks == nil {
		opts.EventHooks = &NoOpHooks{}
	}
	logger := slog.New(opts.Logger).With(slog.String("component", "engine"))

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
		opts.Concurrency = concurrency
		logger.Debug("Concurrency auto-detected", slog.Int("count", concurrency))
	}

	e := &Engine{
		opts:        &opts,
		logger:      logger,
		aggregator:  newReportAggregator(),
		concurrency: concurrency,
	}
	e.processor = NewFileProcessor(e.opts, opts.Logger, opts.CacheManager, opts.LanguageDetector, opts.EncodingHandler)
	return e, nil
}

// Run performs the scan. The report is always returned; err is non-nil when
// the run was cancelled, the walk failed, or a file error stopped it under
// OnErrorStop.
func (e *Engine) Run(ctx context.Context) (report Report, finalErr error) {
	startTime := time.Now()
	e.logger.Info("Starting scan", slog.Int("concurrency", e.concurrency), slog.Bool("cacheEnabled", e.opts.CacheEnabled))

	defer func() {
		if e.opts.CacheEnabled {
			if persistErr := e.opts.CacheManager.Persist(e.opts.CacheFilePath); persistErr != nil {
				e.logger.Error("Failed to persist cache index", slog.String("path", e.opts.CacheFilePath), slog.String("error", persistErr.Error()))
				if finalErr == nil {
					finalErr = persistErr
				}
			}
		}
		report = e.aggregator.getReport(e.opts, startTime, e.totalScanned.Load(), e.fatalOccurred.Load())
		e.logger.Info("Scan finished",
			slog.Duration("duration", time.Since(startTime)),
			slog.Int("detected", report.Summary.DetectedCount),
			slog.Int("undetected", report.Summary.UndetectedCount),
			slog.Int("cached", report.Summary.CachedCount),
			slog.Int("skipped", report.Summary.SkippedCount),
			slog.Int("errors", report.Summary.ErrorCount),
			slog.Bool("fatalErrorOccurred", report.Summary.FatalErrorOccurred),
		)
		if hookErr := e.opts.EventHooks.OnRunComplete(report); hookErr != nil {
			e.logger.Warn("OnRunComplete hook returned an error", slog.String("error", hookErr.Error()))
		}
	}()

	walker, err := NewWalker(e.opts, e.aggregator.addSkipped, e.opts.Logger)
	if err != nil {
		e.fatalOccurred.Store(true)
		return Report{}, fmt.Errorf("walker initialization failed: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan FileJob, e.concurrency)
	results := make(chan any, e.concurrency)

	aggregatorDone := make(chan struct{})
	go e.aggregateResults(results, aggregatorDone)

	g.Go(func() error { return walker.StartWalk(gctx, jobs) })
	e.logger.Debug("Starting worker pool", slog.Int("count", e.concurrency))
	for i := range e.concurrency {
		g.Go(func() error { return e.worker(gctx, i, jobs, results) })
	}

	waitErr := g.Wait()
	close(results)
	<-aggregatorDone

	switch {
	case ctx.Err() != nil:
		e.logger.Info("Scan cancelled", slog.String("reason", ctx.Err().Error()))
		e.fatalOccurred.Store(true)
		return Report{}, ctx.Err()
	case waitErr != nil:
		e.fatalOccurred.Store(true)
		var stop *stopError
		if errors.As(waitErr, &stop) {
			return Report{}, fmt.Errorf("processing stopped due to fatal error in '%s': %w", stop.path, stop.err)
		}
		return Report{}, waitErr
	}
	return Report{}, nil
}

// stopError is returned by a worker to cancel the run under OnErrorStop.
type stopError struct {
	path string
	err  error
}

func (s *stopError) Error() string { return fmt.Sprintf("%s: %v", s.path, s.err) }
func (s *stopError) Unwrap() error { return s.err }

func (e *Engine) worker(ctx context.Context, workerID int, jobs <-chan FileJob, results chan<- any) (err error) {
	wLogger := e.logger.With(slog.Int("workerID", workerID))
	var current string
	defer func() {
		if r := recover(); r != nil {
			wLogger.Error("Panic recovered in worker", slog.Any("panicValue", r), slog.String("path", current))
			panicErr := fmt.Errorf("panic while processing file: %v", r)
			results <- ErrorInfo{Path: current, Error: panicErr.Error(), IsFatal: true}
			err = &stopError{path: current, err: panicErr}
		}
	}()

	wLogger.Debug("Worker started")
	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				wLogger.Debug("Worker shutting down (channel closed)")
				return nil
			}
			current = job.RelPath
			result, status, procErr := e.processor.ProcessFile(ctx, job)
			if procErr != nil && ctx.Err() != nil {
				return nil
			}
			results <- result
			if procErr != nil && status == StatusFailed && e.opts.OnErrorMode == OnErrorStop {
				wLogger.Info("Worker detected fatal error condition, signalling stop", slog.String("path", job.RelPath), slog.String("error", procErr.Error()))
				return &stopError{path: job.RelPath, err: procErr}
			}
		case <-ctx.Done():
			wLogger.Debug("Worker shutting down (context cancelled)")
			return nil
		}
	}
}

// aggregateResults reads results until the channel is closed.
func (e *Engine) aggregateResults(results <-chan any, done chan<- struct{}) {
	defer close(done)
	count := int64(0)
	for result := range results {
		count++
		switch r := result.(type) {
		case FileResult:
			e.aggregator.addFile(r)
		case SkippedInfo:
			e.aggregator.addSkipped(r)
		case ErrorInfo:
			e.aggregator.addError(r)
		default:
			e.logger.Warn("Aggregator received unknown result type", slog.String("type", fmt.Sprintf("%T", result)))
		}
	}
	e.totalScanned.Store(count)
	e.logger.Debug("Result aggregator finished", slog.Int64("resultsProcessed", count))
}

// --- reportAggregator ---

// reportAggregator collects results. The walker adds skips concurrently
// with the aggregator goroutine, hence the mutex.
type reportAggregator struct {
	mu      sync.Mutex
	files   []FileResult
	skipped []SkippedInfo
	errors  []ErrorInfo
}

func newReportAggregator() *reportAggregator {
	return &reportAggregator{
		files:   make([]FileResult, 0, 512),
		skipped: make([]SkippedInfo, 0, 128),
		errors:  make([]ErrorInfo, 0, 32),
	}
}

func (a *reportAggregator) addFile(info FileResult) {
	a.mu.Lock()
	a.files = append(a.files, info)
	a.mu.Unlock()
}

func (a *reportAggregator) addSkipped(info SkippedInfo) {
	a.mu.Lock()
	a.skipped = append(a.skipped, info)
	a.mu.Unlock()
}

func (a *reportAggregator) addError(info ErrorInfo) {
	a.mu.Lock()
	a.errors = append(a.errors, info)
	a.mu.Unlock()
}

// getReport compiles the final Report. Files are sorted by path so reports
// do not depend on worker scheduling.
func (a *reportAggregator) getReport(opts *Options, startTime time.Time, totalScanned int64, fatalOccurred bool) Report {
	a.mu.Lock()
	files := append([]FileResult(nil), a.files...)
	skipped := append([]SkippedInfo(nil), a.skipped...)
	errs := append([]ErrorInfo(nil), a.errors...)
	a.mu.Unlock()

	sortByPath(files, func(f FileResult) string { return f.Path })
	sortByPath(skipped, func(s SkippedInfo) string { return s.Path })
	sortByPath(errs, func(e ErrorInfo) string { return e.Path })

	summary := ReportSummary{
		InputPath:          opts.InputPath,
		ProfileUsed:        opts.ProfileName,
		ConfigFilePath:     opts.ConfigFilePath,
		Engine:             string(opts.Engine),
		TotalFilesScanned:  int(totalScanned),
		SkippedCount:       len(skipped),
		ErrorCount:         len(errs),
		FatalErrorOccurred: fatalOccurred,
		DurationSeconds:    time.Since(startTime).Seconds(),
		CacheEnabled:       opts.CacheEnabled,
		Concurrency:        opts.Concurrency,
		Timestamp:          time.Now().UTC(),
		SchemaVersion:      ReportSchemaVersion,
	}
	for _, f := range files {
		if f.Detected {
			summary.DetectedCount++
		} else {
			summary.UndetectedCount++
		}
		if f.CacheStatus == CacheStatusHit {
			summary.CachedCount++
		}
		summary.TotalBytes += f.SizeBytes
	}

	return Report{
		Summary:   summary,
		Breakdown: BuildBreakdown(files),
		Files:     files,
		Skipped:   skipped,
		Errors:    errs,
	}
}

func sortByPath[T any](s []T, path func(T) string) {
	slices.SortStableFunc(s, func(a, b T) int { return strings.Compare(path(a), path(b)) })
}
