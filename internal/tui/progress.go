package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	progressStyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	progressStyleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// progressModel is a bubbletea model for rendering lint progress.
type progressModel struct {
	current int
	total   int
	label   string
	message string
	done    bool
	failed  bool
	err     error
	width   int
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case progressSetTotalMsg:
		m.total = msg.total
	case progressIncrementMsg:
		m.current++
		m.message = msg.message
	case progressCompleteMsg:
		m.done = true
		return m, tea.Quit
	case progressFailMsg:
		m.failed = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return progressStyleSuccess.Render(fmt.Sprintf("✓ %s (%d/%d)", m.label, m.current, m.total))
	}
	if m.failed {
		return progressStyleErr.Render(fmt.Sprintf("✗ %s (failed: %v)", m.label, m.err))
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}
	barWidth := 40
	if m.width > 0 && m.width < 80 {
		barWidth = 20
	}
	filled := int(percent * float64(barWidth))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	status := fmt.Sprintf("[%s] %d/%d", bar, m.current, m.total)
	if m.message != "" {
		status += fmt.Sprintf(" - %s", m.message)
	}

	return fmt.Sprintf("%s\n%s", progressStyleTitle.Render(m.label), status)
}

type progressIncrementMsg struct {
	message string
}

type progressSetTotalMsg struct {
	total int
}

type progressCompleteMsg struct{}

type progressFailMsg struct {
	err error
}

// BubbleteaProgress renders progress through a background bubbletea
// program. It implements core.HistoryProgress.
type BubbleteaProgress struct {
	program *tea.Program
}

// NewBubbleteaProgress creates and starts a progress display. The total is
// supplied later via SetTotal.
func NewBubbleteaProgress(label string) *BubbleteaProgress {
	p := tea.NewProgram(progressModel{
		label: label,
		width: 80,
	})

	go func() {
		_, _ = p.Run()
	}()

	return &BubbleteaProgress{program: p}
}

// SetTotal sets the total count once it is known.
func (t *BubbleteaProgress) SetTotal(total int) {
	t.program.Send(progressSetTotalMsg{total: total})
}

// Increment updates progress with a message.
func (t *BubbleteaProgress) Increment(message string) {
	t.program.Send(progressIncrementMsg{message: message})
}

// Complete marks the operation as complete.
func (t *BubbleteaProgress) Complete() {
	t.program.Send(progressCompleteMsg{})
	time.Sleep(100 * time.Millisecond) // Allow final render
}

// Fail marks the operation as failed with an error.
func (t *BubbleteaProgress) Fail(err error) {
	t.program.Send(progressFailMsg{err: err})
	time.Sleep(100 * time.Millisecond) // Allow final render
}

// TextProgress provides simple line-based progress for non-TTY output.
// It implements core.HistoryProgress.
type TextProgress struct {
	current int
	total   int
	label   string
}

// NewTextProgress creates a text progress tracker.
func NewTextProgress(label string) *TextProgress {
	return &TextProgress{label: label}
}

// SetTotal sets the total count once it is known.
func (t *TextProgress) SetTotal(total int) {
	t.total = total
	fmt.Printf("Starting: %s (0/%d)\n", t.label, total)
}

// Increment updates progress with a message.
func (t *TextProgress) Increment(message string) {
	t.current++
	msg := fmt.Sprintf("  [%d/%d]", t.current, t.total)
	if message != "" {
		msg += " " + message
	}
	fmt.Println(msg)
}

// Complete marks the operation as complete.
func (t *TextProgress) Complete() {
	fmt.Printf("✓ %s: completed (%d/%d)\n", t.label, t.current, t.total)
}

// Fail marks the operation as failed with an error.
func (t *TextProgress) Fail(err error) {
	fmt.Printf("✗ %s: failed - %v\n", t.label, err)
}
