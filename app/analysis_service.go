package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"calfit/domain/core"
	"calfit/domain/fit"
	"calfit/domain/sample"
	"calfit/internal"
	"calfit/internal/config"
	"calfit/internal/errors"
	"calfit/ports"

	"golang.org/x/sync/semaphore"
)

// AnalysisService runs the loader -> fit -> metrics -> report -> chart
// pipeline for one data file per call. The numeric core stays pure; all I/O
// happens here and in the adapters.
type AnalysisService struct {
	readers  map[string]ports.SampleReader // keyed by lowercase extension
	fallback ports.SampleReader
	renderer ports.ChartRenderer
	cfg      *config.Config
	log      *internal.Logger
}

// AnalyzeOptions controls per-invocation behavior
type AnalyzeOptions struct {
	// NoPlot skips chart rendering entirely
	NoPlot bool
	// Concurrency bounds parallel file processing in RunBatch (default 4)
	Concurrency int
}

// Report is the complete result of analyzing one data file
type Report struct {
	RunID             core.RunID      `json:"run_id"`
	Source            string          `json:"source"`
	SampleCount       int             `json:"sample_count"`
	Fit               fit.Result      `json:"fit"`
	Sensitivity       float64         `json:"sensitivity"`
	NonlinearityError float64         `json:"nonlinearity_error"`
	Quality           fit.Quality     `json:"quality"`
	Warnings          []string        `json:"warnings,omitempty"`
	ChartPath         string          `json:"chart_path,omitempty"`
	Artifacts         []core.Artifact `json:"artifacts"`
}

// BatchResult aggregates per-file outcomes of RunBatch
type BatchResult struct {
	Reports  []*Report
	Failures map[string]error
}

// NewAnalysisService creates the analysis pipeline. readers maps file
// extensions (".csv", ".xlsx") to specialized readers; fallback handles
// everything else.
func NewAnalysisService(readers map[string]ports.SampleReader, fallback ports.SampleReader, renderer ports.ChartRenderer, cfg *config.Config, log *internal.Logger) *AnalysisService {
	return &AnalysisService{
		readers:  readers,
		fallback: fallback,
		renderer: renderer,
		cfg:      cfg,
		log:      log,
	}
}

// Analyze processes a single data file end to end
func (s *AnalysisService) Analyze(ctx context.Context, path string, opts AnalyzeOptions) (*Report, error) {
	runID := core.RunID(core.NewID())

	set, warnings, err := s.readerFor(path).Read(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.log.Warn("%s: %s", path, w)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	result, err := fit.Fit(set.X, set.Y)
	if err != nil {
		return nil, err
	}

	sensitivity := fit.Sensitivity(result.Slope)
	nonlinearity, fitWarnings := fit.NonlinearityError(set.X, set.Y, result)
	for _, w := range fitWarnings {
		s.log.Warn("%s: %s", path, w.Message)
		warnings = append(warnings, w.Message)
	}

	report := &Report{
		RunID:             runID,
		Source:            path,
		SampleCount:       set.Len(),
		Fit:               result,
		Sensitivity:       sensitivity,
		NonlinearityError: nonlinearity,
		Quality:           fit.AssessQuality(set.X, set.Y, result),
		Warnings:          warnings,
	}
	report.Artifacts = append(report.Artifacts, core.NewArtifact(runID, core.ArtifactFitReport, report.Fit))

	if !opts.NoPlot {
		chartPath, err := s.renderChart(ctx, report, set, result)
		if err != nil {
			return nil, err
		}
		report.ChartPath = chartPath
		report.Artifacts = append(report.Artifacts, core.NewArtifact(runID, core.ArtifactChart, chartPath))
	}

	return report, nil
}

// RunBatch analyzes several files with bounded concurrency. Per-file
// failures are collected in the result rather than aborting the batch.
func (s *AnalysisService) RunBatch(ctx context.Context, paths []string, opts AnalyzeOptions) (*BatchResult, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = &BatchResult{Failures: make(map[string]error)}
	)

	for _, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			report, err := s.Analyze(ctx, path, opts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Error("analysis of %s failed: %v", path, err)
				result.Failures[path] = err
				return
			}
			result.Reports = append(result.Reports, report)
		}(path)
	}
	wg.Wait()

	return result, nil
}

// readerFor selects a reader by the file's extension
func (s *AnalysisService) readerFor(path string) ports.SampleReader {
	if reader, ok := s.readers[strings.ToLower(filepath.Ext(path))]; ok {
		return reader
	}
	return s.fallback
}

// renderChart renders the scatter + fit-line chart into the configured
// output directory, named after the source file with a "_fit" suffix
func (s *AnalysisService) renderChart(ctx context.Context, report *Report, set *sample.Set, result fit.Result) (string, error) {
	png, err := s.renderer.Render(ctx, ports.ChartRequest{
		Title: fmt.Sprintf("Least-squares fit (sensitivity = %.*f, nonlinearity error = %.*f%%)",
			s.cfg.Report.ValuePrecision, report.Sensitivity,
			s.cfg.Report.ErrorPrecision, report.NonlinearityError),
		Samples: set,
		Fit:     result,
		Width:   s.cfg.Chart.Width,
		Height:  s.cfg.Chart.Height,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
		return "", errors.IOFailure(s.cfg.Output.Dir, err)
	}

	base := filepath.Base(report.Source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	chartPath := filepath.Join(s.cfg.Output.Dir, stem+"_fit.png")
	if err := os.WriteFile(chartPath, png, 0o644); err != nil {
		return "", errors.IOFailure(chartPath, err)
	}

	s.log.Info("chart saved to %s", chartPath)
	return chartPath, nil
}
