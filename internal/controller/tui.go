package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "nric.dev/pkg/nric/internal/model"
)

// reservedLines is the space taken by the pager title and footer.
const reservedLines = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	numberStyle  = lipgloss.NewStyle().Bold(true)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with styled output, paging long validation and report
// lists through Bubble Tea.
type TUI struct {
	output io.Writer
	width  int
	height int
}

// NewTUI creates a new TUI. The terminal size is read from output when it is a file.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			tui.width = width
			tui.height = height
		}
	}

	return tui
}

// DisplayNumbers prints generated numbers on the normal screen so they stay in
// the terminal scrollback after the program exits. Numbers are never paged.
func (p *TUI) DisplayNumbers(ctx context.Context, numbers m.Numbers) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := bufio.NewWriter(p.output)

	if _, err := fmt.Fprintf(w, "%s\n\n", titleStyle.Render(fmt.Sprintf("Generated %d identity number(s)", numbers.Len()))); err != nil {
		return err
	}

	err := numbers.Range(func(index uint64, n string) error {
		_, err := fmt.Fprintf(w, "  %s %s\n", faintStyle.Render(fmt.Sprintf("%6d", index+1)), numberStyle.Render(n))
		return err
	})
	if err != nil {
		return err
	}

	return w.Flush()
}

// DisplayValidations shows a coloured verdict for each candidate.
func (p *TUI) DisplayValidations(ctx context.Context, validations []m.Validation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(validations))
	invalid := 0

	for _, v := range validations {
		if !v.Valid {
			invalid++
		}

		lines = append(lines, formatValidationLine(v))
	}

	title := fmt.Sprintf("Validated %d candidate(s): %d valid, %d invalid",
		len(validations), len(validations)-invalid, invalid)

	return p.show(ctx, title, lines)
}

// DisplayChecksum shows the completed number with the checksum letter highlighted.
func (p *TUI) DisplayChecksum(ctx context.Context, class m.Class, digits string, letter byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "%s%s%s\n", class, digits, validStyle.Bold(true).Render(string(rune(letter))))

	return err
}

// DisplayReports lists saved reports, newest last.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		_, err := fmt.Fprintln(p.output, faintStyle.Render("No reports found"))
		return err
	}

	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("%s  %-8s %6d  %s",
			faintStyle.Render(r.CreatedAt.Local().Format(reportTimeFormat)),
			r.Kind, reportEntries(r), reportDetails(r)))
	}

	return p.show(ctx, fmt.Sprintf("%d saved report(s)", len(reports)), lines)
}

// DisplayReportSaved tells where a report was written.
func (p *TUI) DisplayReportSaved(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(p.output, faintStyle.Render("report saved to "+string(path)))

	return err
}

// show prints short content directly and pages content taller than the terminal.
func (p *TUI) show(ctx context.Context, title string, lines []string) error {
	if !needsPagination(len(lines), p.height) {
		_, err := fmt.Fprint(p.output, renderPlain(title, lines))
		return err
	}

	model := newPagerModel(title, strings.Join(lines, "\n"), p.width, p.height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func needsPagination(lineCount, height int) bool {
	return height > 0 && lineCount > height-reservedLines
}

func renderPlain(title string, lines []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func formatValidationLine(v m.Validation) string {
	if v.Valid {
		return fmt.Sprintf("%s %s", validStyle.Render("✓"), v.Candidate)
	}

	detail := string(v.Reason)
	if v.Reason == m.ReasonChecksum && v.Expected != "" {
		detail = fmt.Sprintf("checksum, expected %s", v.Expected)
	}

	return fmt.Sprintf("%s %s %s", invalidStyle.Render("✗"), v.Candidate, faintStyle.Render("("+detail+")"))
}

// pagerModel is a Bubble Tea model scrolling content in a viewport.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-reservedLines, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-reservedLines, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := faintStyle.Render(fmt.Sprintf("%3.f%% | ↑/k ↓/j scroll | g/G top/bottom | q quit",
		pm.viewport.ScrollPercent()*100))

	return fmt.Sprintf("%s\n\n%s\n%s", titleStyle.Render(pm.title), pm.viewport.View(), footer)
}
