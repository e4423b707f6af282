package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medschedulr/roster/internal/cli/formatter"
)

// scheduleViewKeyMap is the minimal binding set this scrollable report
// viewer needs, grounded on teacher's per-view key.Binding lists.
type scheduleViewKeyMap struct {
	Up, Down, PageUp, PageDown, Quit key.Binding
}

var scheduleViewKeys = scheduleViewKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " ")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// scheduleViewModel is a standalone bubbletea model that scrolls a
// pre-rendered report through a bubbles/viewport, for terminals too
// short to show the whole schedule at once. It carries no shared
// navigation state — one model per `report` invocation, exiting back to
// the shell on quit rather than returning to a command palette.
type scheduleViewModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func newScheduleViewModel(content string) scheduleViewModel {
	return scheduleViewModel{content: content}
}

func (m scheduleViewModel) Init() tea.Cmd {
	return nil
}

func (m scheduleViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, scheduleViewKeys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m scheduleViewModel) View() string {
	if !m.ready {
		return "loading report...\n"
	}
	help := formatter.Dim("↑/↓ scroll · pgup/pgdn page · q quit")
	return m.viewport.View() + "\n" + help
}

// runScheduleViewer launches an interactive scroll viewer over content
// and blocks until the user quits it.
func runScheduleViewer(content string) error {
	_, err := tea.NewProgram(newScheduleViewModel(content), tea.WithAltScreen()).Run()
	return err
}
