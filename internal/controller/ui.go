// Package controller provides output adapters for displaying nric results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "nric.dev/pkg/nric/internal/model"
)

// UI renders workflow results. Implementations can use different output
// methods (plain tables, styled TTY output, etc).
type UI interface {
	DisplayNumbers(ctx context.Context, numbers m.Numbers) error
	DisplayValidations(ctx context.Context, validations []m.Validation) error
	DisplayChecksum(ctx context.Context, class m.Class, digits string, letter byte) error
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayReportSaved(ctx context.Context, path m.Path) error
}

// NewUI returns a TUI when output is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
