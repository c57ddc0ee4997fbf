// Package tui renders the supply-chain dashboard: an interactive Bubble Tea
// program for terminals and a styled one-shot summary for everything else.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette.
var (
	colorPrimary  = lipgloss.Color("39")  // blue
	colorOK       = lipgloss.Color("42")  // green
	colorWarning  = lipgloss.Color("214") // orange
	colorCritical = lipgloss.Color("196") // red
	colorSubtle   = lipgloss.Color("245") // grey
	colorBorder   = lipgloss.Color("63")
)

// Shared styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	LabelStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	ValueStyle    = lipgloss.NewStyle().Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(colorPrimary)
	OKStyle       = lipgloss.NewStyle().Foreground(colorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(colorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(cardWidth)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(colorBorder)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// Layout constants.
const (
	borderPadding = 2
	defaultWidth  = 120
	defaultHeight = 30
	// summaryHeight is the number of lines taken by the KPI cards and status bar.
	summaryHeight = 8
	minHeight     = 5
	cardWidth     = 26
)

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keySlash  = "/"
	keyS      = "s"
	keyO      = "o"
	keyEsc    = "esc"
	keyPgUp   = "pgup"
	keyPgDown = "pgdown"
)

const msgSelectedOutOfBounds = "No facility selected."

// ViewState is the screen a model is currently showing.
type ViewState int

const (
	// ViewStateLoading waits for the dataset.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the KPI header and the facility table.
	ViewStateList
	// ViewStateDetail shows a single facility.
	ViewStateDetail
	// ViewStateQuitting is set just before tea.Quit.
	ViewStateQuitting
	// ViewStateError shows a load failure.
	ViewStateError
)

// OutputMode selects how the dashboard is presented.
type OutputMode int

const (
	// OutputModePlain prints an unstyled summary.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a lipgloss summary without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the full Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks a presentation for the current process. plain and
// NO_COLOR win over everything; forceColor styles output even when stdout is
// not a terminal; otherwise a terminal gets the interactive program.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width, or defaultWidth when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or country"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

// LoadingState is the spinner shown while the dataset loads.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{spinner: s, message: "Loading supply-chain dataset..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner line.
func (l *LoadingState) View() string {
	return " " + l.spinner.View() + " " + l.message
}
