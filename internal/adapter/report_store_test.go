package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "nric.dev/pkg/nric/internal/model"
	"nric.dev/pkg/nric/pkg"
)

type failingNumbers struct{}

func (failingNumbers) Len() uint64 { return 1 }

func (failingNumbers) Range(func(uint64, string) error) error { return assert.AnError }

func TestYAMLReportStore(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()

	t.Run("save then load", func(t *testing.T) {
		dir := m.Path(filepath.Join(t.TempDir(), "reports"))
		seed := uint64(7)
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		generate := m.Report{
			Kind:      m.ReportGenerate,
			CreatedAt: created,
			Params:    &m.ReportParams{BirthYear: 1990, Residency: m.Citizen, Count: 2, Workers: 1, Seed: &seed},
		}
		numbers := m.NumberList{"S1234567D", "S0000000J"}
		validate := m.Report{
			Kind:      m.ReportValidate,
			CreatedAt: created.Add(-time.Hour),
			Validations: []m.Validation{
				{Candidate: "S1234567A", Reason: m.ReasonChecksum, Expected: "D"},
			},
		}

		path, err := store.SaveReport(ctx, dir, generate, numbers)
		require.NoError(t, err)
		assert.FileExists(t, string(path))
		assert.Contains(t, filepath.Base(string(path)), "generate-20240501-100000")

		_, err = store.SaveReport(ctx, dir, validate, nil)
		require.NoError(t, err)

		reports, err := store.LoadReports(ctx, dir)
		require.NoError(t, err)
		require.Len(t, reports, 2)

		assert.Equal(t, m.ReportValidate, reports[0].Kind)
		assert.Equal(t, 1, reports[0].InvalidCount())
		assert.Equal(t, "D", reports[0].Validations[0].Expected)

		assert.Equal(t, m.ReportGenerate, reports[1].Kind)
		assert.True(t, created.Equal(reports[1].CreatedAt))
		require.NotNil(t, reports[1].Params)
		require.NotNil(t, reports[1].Params.Seed)
		assert.Equal(t, seed, *reports[1].Params.Seed)
		assert.Equal(t, []string(numbers), reports[1].Numbers)
	})

	t.Run("streams numbers from spills", func(t *testing.T) {
		dir := m.Path(t.TempDir())

		first, err := pkg.NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = first.Close() })

		second, err := pkg.NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = second.Close() })

		require.NoError(t, first.AppendBatch([]string{"T1234567D", "T0000000J"}))
		require.NoError(t, second.AppendBatch([]string{"G1234567X"}))

		report := m.Report{Kind: m.ReportGenerate, CreatedAt: time.Now(), Numbers: []string{"ignored"}}

		_, err = store.SaveReport(ctx, dir, report, pkg.Chain[string]{first, second})
		require.NoError(t, err)

		reports, err := store.LoadReports(ctx, dir)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, []string{"T1234567D", "T0000000J", "G1234567X"}, reports[0].Numbers)
	})

	t.Run("empty numbers stream", func(t *testing.T) {
		dir := m.Path(t.TempDir())

		_, err := store.SaveReport(ctx, dir, m.Report{Kind: m.ReportGenerate, CreatedAt: time.Now()}, m.NumberList{})
		require.NoError(t, err)

		reports, err := store.LoadReports(ctx, dir)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Empty(t, reports[0].Numbers)
	})

	t.Run("failed stream leaves no file", func(t *testing.T) {
		dir := m.Path(t.TempDir())

		_, err := store.SaveReport(ctx, dir, m.Report{Kind: m.ReportGenerate, CreatedAt: time.Now()}, failingNumbers{})
		require.ErrorIs(t, err, assert.AnError)

		entries, err := os.ReadDir(string(dir))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing dir yields nothing", func(t *testing.T) {
		reports, err := store.LoadReports(ctx, m.Path(filepath.Join(t.TempDir(), "absent")))
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("skips foreign yaml files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nric.yaml"), []byte("version: 1\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(":\n\t- ["), 0o600))

		reports, err := store.LoadReports(ctx, m.Path(dir))
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.SaveReport(cancelled, m.Path(t.TempDir()), m.Report{Kind: m.ReportGenerate}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
