package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"nric.dev/pkg/nric/internal/adapter"
	"nric.dev/pkg/nric/internal/controller"
	m "nric.dev/pkg/nric/internal/model"
	"nric.dev/pkg/nric/pkg"
)

// ErrInvalidFound is returned by a strict validation run when at least one
// candidate is invalid.
var ErrInvalidFound = errors.New("invalid identity numbers found")

// GenerateArgs contains the arguments for generating identity numbers.
type GenerateArgs struct {
	BirthYear int
	Residency m.Residency
	Count     int
	Workers   int
	// Seed makes the run reproducible; nil draws from crypto/rand.
	Seed *uint64
	// Reports is the directory reports are saved to; empty disables saving.
	Reports m.Path
	// SpillDir holds temporary spill files; empty means the OS temp dir.
	SpillDir string
}

// ValidateArgs contains the arguments for validating candidates.
type ValidateArgs struct {
	Candidates []string
	Files      []m.Path
	Strict     bool
	Reports    m.Path
}

// ChecksumArgs contains the arguments for computing a checksum letter.
type ChecksumArgs struct {
	Class  m.Class
	Digits string
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow runs the user-facing operations of the tool.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) (uint64, error)
	Validate(ctx context.Context, args ValidateArgs) ([]m.Validation, error)
	Checksum(ctx context.Context, args ChecksumArgs) (byte, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.CandidateFSAdapter
	controller.UI
	newSources func(seed *uint64) adapter.DigitSourceFactory
	now        func() time.Time
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	candidates adapter.CandidateFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		ReportStore:        reportStore,
		CandidateFSAdapter: candidates,
		UI:                 ui,
		newSources:         adapter.NewDigitSourceFactory,
		now:                time.Now,
	}
}

// generateBatch is how many numbers a worker buffers before appending them
// to its spill.
const generateBatch = 256

// Generate produces args.Count numbers split across args.Workers goroutines
// and returns how many were produced. Each worker owns its digit source and
// spill file; the spills are chained in worker order, so seeded runs are
// reproducible. Numbers are streamed from the spills to the UI and the
// report without being collected in memory.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (uint64, error) {
	if args.Count < 0 {
		return 0, fmt.Errorf("count must not be negative, got %d", args.Count)
	}

	switch args.Residency {
	case "":
		args.Residency = m.Citizen
	case m.Citizen, m.NonCitizen:
	default:
		return 0, fmt.Errorf("%w: %q", m.ErrInvalidResidency, args.Residency)
	}

	workers := clampWorkers(args.Workers, args.Count)
	chunks := splitCount(args.Count, workers)
	sources := w.newSources(args.Seed)

	spills := make(pkg.Chain[string], workers)
	defer func() { _ = spills.Close() }()

	for i := range spills {
		spill, err := pkg.NewFileSpill[string](args.SpillDir)
		if err != nil {
			return 0, fmt.Errorf("create spill: %w", err)
		}

		spills[i] = spill

		slog.Debug("worker spill", "worker", i, "path", spill.Path())
	}

	slog.Info("Generating identity numbers",
		"count", args.Count, "workers", workers, "birthYear", args.BirthYear, "residency", args.Residency, "seeded", args.Seed != nil)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	isCitizen := args.Residency.IsCitizen()

	for i, chunk := range chunks {
		group.Go(func() error {
			src := sources(i)
			batch := make([]string, 0, min(chunk, generateBatch))

			for remaining := chunk; remaining > 0; remaining -= len(batch) {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				batch = batch[:0]
				for range min(remaining, generateBatch) {
					batch = append(batch, Generate(args.BirthYear, isCitizen, src).String())
				}

				if err := spills[i].AppendBatch(batch); err != nil {
					return fmt.Errorf("worker %d: %w", i, err)
				}
			}

			slog.Debug("worker finished", "worker", i, "generated", chunk)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Generation failed", "error", err)
		return 0, err
	}

	total := spills.Len()

	if err := w.DisplayNumbers(ctx, spills); err != nil {
		return total, fmt.Errorf("display: %w", err)
	}

	if args.Reports != "" {
		report := m.Report{
			Kind:      m.ReportGenerate,
			CreatedAt: w.now(),
			Params: &m.ReportParams{
				BirthYear: args.BirthYear,
				Residency: args.Residency,
				Count:     args.Count,
				Workers:   workers,
				Seed:      args.Seed,
			},
		}

		if err := w.saveReport(ctx, args.Reports, report, spills); err != nil {
			return total, err
		}
	}

	return total, nil
}

// Validate checks candidates given directly and read from files, in that order.
func (w *workflow) Validate(ctx context.Context, args ValidateArgs) ([]m.Validation, error) {
	candidates := append([]string{}, args.Candidates...)

	for _, file := range args.Files {
		found, err := w.ReadCandidates(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("read candidates: %w", err)
		}

		candidates = append(candidates, found...)
	}

	validations := make([]m.Validation, 0, len(candidates))
	invalid := 0

	for _, candidate := range candidates {
		result := Inspect(candidate)
		if !result.Valid {
			invalid++

			slog.Debug("invalid candidate", "candidate", candidate, "reason", result.Reason)
		}

		validations = append(validations, result)
	}

	slog.Info("Validated candidates", "total", len(validations), "invalid", invalid)

	if err := w.DisplayValidations(ctx, validations); err != nil {
		return validations, fmt.Errorf("display: %w", err)
	}

	if args.Reports != "" {
		report := m.Report{
			Kind:        m.ReportValidate,
			CreatedAt:   w.now(),
			Validations: validations,
		}

		if err := w.saveReport(ctx, args.Reports, report, nil); err != nil {
			return validations, err
		}
	}

	if args.Strict && invalid > 0 {
		return validations, fmt.Errorf("%w: %d of %d", ErrInvalidFound, invalid, len(validations))
	}

	return validations, nil
}

// Checksum computes and displays the checksum letter for a class and digits.
func (w *workflow) Checksum(ctx context.Context, args ChecksumArgs) (byte, error) {
	letter, err := Checksum(args.Class, args.Digits)
	if err != nil {
		return 0, err
	}

	if err := w.DisplayChecksum(ctx, args.Class, args.Digits, letter); err != nil {
		return letter, fmt.Errorf("display: %w", err)
	}

	return letter, nil
}

// View displays the reports saved in args.Reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, reports)
}

func (w *workflow) saveReport(ctx context.Context, dir m.Path, report m.Report, numbers m.Numbers) error {
	path, err := w.SaveReport(ctx, dir, report, numbers)
	if err != nil {
		slog.Error("Failed to save report", "dir", dir, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	return w.DisplayReportSaved(ctx, path)
}

// clampWorkers keeps the worker count between 1 and count. An empty run
// still gets one worker.
func clampWorkers(workers, count int) int {
	if workers < 1 {
		workers = 1
	}

	if workers > count {
		workers = max(count, 1)
	}

	return workers
}

// splitCount divides count into n chunks whose sizes differ by at most one,
// larger chunks first.
func splitCount(count, n int) []int {
	chunks := make([]int, n)

	for i := range chunks {
		chunks[i] = count / n
		if i < count%n {
			chunks[i]++
		}
	}

	return chunks
}
