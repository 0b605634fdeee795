package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of an analysis run
type Stage int

const (
	StageLoadProfile Stage = iota
	StageLoadModel
	StageFormality
	StageGrammar
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoadProfile:
		return "Loading locale profile"
	case StageLoadModel:
		return "Loading formality model"
	case StageFormality:
		return "Scoring formality"
	case StageGrammar:
		return "Checking grammar"
	default:
		return "Finishing"
	}
}

// Message types for updating the progress model
type (
	stageMsg Stage
	doneMsg  struct{}
)

type progressModel struct {
	stage    Stage
	spinner  spinner.Model
	quitting bool
}

func newProgressModel() progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return progressModel{stage: StageLoadProfile, spinner: s}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stageMsg:
		m.stage = Stage(msg)
		return m, nil

	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.stage.String() + "..."
}

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil if not in interactive mode; all controller methods accept a
// nil receiver so callers don't have to branch.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	p := tea.NewProgram(newProgressModel(), tea.WithOutput(ui.ErrWriter))
	ctrl := &ProgressController{program: p}

	go func() {
		if _, err := p.Run(); err != nil {
			_ = err
		}
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(stageMsg(stage))
	}
}

// Done signals that all work is complete
func (pc *ProgressController) Done() {
	if pc != nil && pc.program != nil {
		pc.program.Send(doneMsg{})
		pc.program.Wait()
	}
}
