package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals. Generation progress is
// rendered by a Bubble Tea program that runs between Start and Close.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	program := tea.NewProgram(
		newProgressModel(),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("progress view stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close asks the progress program to render its final state and exit.
func (t *TUI) Close(_ context.Context) {
	if program := t.running(); program != nil {
		program.Send(closeMsg{})
	}
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}

	t.mu.Lock()
	t.program = nil
	t.done = nil
	t.mu.Unlock()
}

// DisplayUsage prints the styled usage message and the package table.
func (t *TUI) DisplayUsage(ctx context.Context, usage m.Usage, catalog *m.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b bytes.Buffer

	b.WriteString(titleStyle.Render("fastgen - contract binding generator"))
	b.WriteString("\n\n")

	text := usageText(usage)
	if len(usage.Unknown) > 0 {
		unknown := fmt.Sprintf("Unknown package(s): %s", strings.Join(usage.Unknown, ", "))
		text = strings.Replace(text, unknown, warningStyle.Render(unknown), 1)
	}

	b.WriteString(text)
	renderCatalogTable(&b, catalog)

	_, err := t.output.Write(b.Bytes())

	return err
}

// DisplayCatalog prints the catalog.
func (t *TUI) DisplayCatalog(ctx context.Context, catalog *m.Catalog, format m.CatalogFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return renderCatalog(t.output, catalog, format)
}

// DisplayDryRun prints the command that would run for job.
func (t *TUI) DisplayDryRun(ctx context.Context, job m.Job) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(faintStyle.Render("would run: ") + job.CommandLine)
}

// DisplayStarting adds job to the progress view.
func (t *TUI) DisplayStarting(ctx context.Context, job m.Job) {
	if err := ctx.Err(); err != nil {
		return
	}

	if program := t.running(); program != nil {
		program.Send(jobStartedMsg{job: job})
		return
	}

	t.println("Generating " + job.Package)
}

// DisplayABISummary prints the ABI summary above the progress view.
func (t *TUI) DisplayABISummary(ctx context.Context, job m.Job, summary m.ABISummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(faintStyle.Render("ABI " + formatABISummary(job, summary)))
}

// DisplayCompleted marks job as finished in the progress view.
func (t *TUI) DisplayCompleted(ctx context.Context, job m.Job, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if program := t.running(); program != nil {
		program.Send(jobFinishedMsg{job: job, err: err})
		return
	}

	t.println(renderProgressLine(progressLine{job: job, state: stateFor(err)}, ""))
}

// DisplayDiff prints the bindings diff above the progress view.
func (t *TUI) DisplayDiff(ctx context.Context, job m.Job, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if strings.TrimSpace(diff) == "" {
		t.println(faintStyle.Render(job.Package + ": bindings unchanged"))
		return
	}

	t.println(colorizeDiff(strings.TrimSuffix(diff, "\n")))
}

func (t *TUI) running() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program
}

func (t *TUI) println(line string) {
	if program := t.running(); program != nil {
		program.Send(printMsg{line: line})
		return
	}

	_, _ = fmt.Fprintln(t.output, line)
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = successStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = failureStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = faintStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type jobState int

const (
	jobRunning jobState = iota
	jobDone
	jobFailed
)

func stateFor(err error) jobState {
	if err != nil {
		return jobFailed
	}

	return jobDone
}

type progressLine struct {
	job   m.Job
	state jobState
}

type jobStartedMsg struct {
	job m.Job
}

type jobFinishedMsg struct {
	job m.Job
	err error
}

type closeMsg struct{}

type printMsg struct {
	line string
}

// progressModel is the Bubble Tea model listing generator invocations.
type progressModel struct {
	spinner spinner.Model
	lines   []progressLine
}

func newProgressModel() progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(titleStyle),
		),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobStartedMsg:
		pm.lines = append(pm.lines, progressLine{job: msg.job, state: jobRunning})

		return pm, nil

	case jobFinishedMsg:
		for i := len(pm.lines) - 1; i >= 0; i-- {
			if pm.lines[i].job.Package == msg.job.Package && pm.lines[i].state == jobRunning {
				pm.lines[i].state = stateFor(msg.err)
				break
			}
		}

		return pm, nil

	case printMsg:
		return pm, tea.Println(msg.line)

	case closeMsg:
		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	for _, line := range pm.lines {
		b.WriteString(renderProgressLine(line, pm.spinner.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressLine(line progressLine, spin string) string {
	switch line.state {
	case jobDone:
		return successStyle.Render("✓") + " " + line.job.Package + faintStyle.Render(" -> "+string(line.job.Out))
	case jobFailed:
		return failureStyle.Render("✗") + " " + line.job.Package + failureStyle.Render(" failed")
	default:
		return spin + " generating " + line.job.Package + faintStyle.Render(" from "+string(line.job.Source))
	}
}
