package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "nric.dev/pkg/nric/internal/model"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// SimpleUI implements UI with plain text written to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayNumbers prints one number per line so the output can be piped.
func (s *SimpleUI) DisplayNumbers(ctx context.Context, numbers m.Numbers) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := bufio.NewWriter(s.cmd.OutOrStdout())

	err := numbers.Range(func(_ uint64, n string) error {
		_, err := fmt.Fprintln(w, n)
		return err
	})
	if err != nil {
		return err
	}

	return w.Flush()
}

// DisplayValidations prints a table of validation results.
func (s *SimpleUI) DisplayValidations(ctx context.Context, validations []m.Validation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderValidationTable(validations))
}

// DisplayChecksum prints the completed identity number.
func (s *SimpleUI) DisplayChecksum(ctx context.Context, class m.Class, digits string, letter byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s%s%c\n", class, digits, letter)
}

// DisplayReports prints a summary table of saved reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		return s.printf("No reports found\n")
	}

	return s.printf("%s", renderReportsTable(reports))
}

// DisplayReportSaved tells where a report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(s.cmd.ErrOrStderr(), "report saved to %s\n", path)

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func renderValidationTable(validations []m.Validation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Candidate", "Valid", "Reason", "Expected"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	invalid := 0

	for _, v := range validations {
		if !v.Valid {
			invalid++
		}

		table.Append([]string{v.Candidate, formatValid(v.Valid), string(v.Reason), v.Expected})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(validations)),
		fmt.Sprintf("Valid %d", len(validations)-invalid),
		fmt.Sprintf("Invalid %d", invalid),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Created", "Kind", "Entries", "Details"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")

	for _, r := range reports {
		table.Append([]string{
			r.CreatedAt.Local().Format(reportTimeFormat),
			string(r.Kind),
			strconv.Itoa(reportEntries(r)),
			reportDetails(r),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func reportEntries(r m.Report) int {
	if r.Kind == m.ReportGenerate {
		return len(r.Numbers)
	}

	return len(r.Validations)
}

func reportDetails(r m.Report) string {
	switch r.Kind {
	case m.ReportGenerate:
		if r.Params == nil {
			return ""
		}

		details := fmt.Sprintf("%s born %d", r.Params.Residency, r.Params.BirthYear)
		if r.Params.Seed != nil {
			details += fmt.Sprintf(", seed %d", *r.Params.Seed)
		}

		return details
	case m.ReportValidate:
		return fmt.Sprintf("%d invalid", r.InvalidCount())
	}

	return ""
}

func formatValid(valid bool) string {
	if valid {
		return "yes"
	}

	return "no"
}
