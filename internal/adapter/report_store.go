package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
	m "nric.dev/pkg/nric/internal/model"
)

const reportTimeLayout = "20060102-150405.000000000"

// ReportStore persists generate and validate reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.Report, numbers m.Numbers) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

// YAMLReportStore keeps one YAML file per report.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to <dir>/<kind>-<created_at>.yaml. When numbers is
// not nil it is streamed into the numbers list after the rest of the report,
// replacing report.Numbers.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report, numbers m.Numbers) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	if numbers != nil {
		report.Numbers = nil
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	name := fmt.Sprintf("%s-%s.yaml", report.Kind, report.CreatedAt.UTC().Format(reportTimeLayout))
	path := filepath.Join(string(dir), name)

	if err := writeReport(ctx, path, data, numbers); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		_ = os.Remove(path)

		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "kind", report.Kind)

	return m.Path(path), nil
}

// writeReport writes the encoded header followed by one sequence entry per
// number. Generated numbers are plain YAML scalars and need no quoting.
func writeReport(ctx context.Context, path string, header []byte, numbers m.Numbers) (err error) {
	// #nosec G304 - path is built from the reports dir and a timestamp
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)

	if _, err := w.Write(header); err != nil {
		return err
	}

	if numbers != nil && numbers.Len() > 0 {
		if _, err := w.WriteString("numbers:\n"); err != nil {
			return err
		}

		err := numbers.Range(func(index uint64, number string) error {
			if index%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintf(w, "    - %s\n", number)

			return err
		})
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

// LoadReports reads every *.yaml report in dir ordered by creation time. A
// missing dir yields no reports.
func (s *YAMLReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(string(dir), "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]m.Report, 0, len(paths))

	for _, path := range paths {
		// #nosec G304 - path comes from globbing the reports dir
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			slog.Warn("Skipping unreadable report", "path", path, "error", err)
			continue
		}

		if report.Kind == "" {
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}
