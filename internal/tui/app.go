package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"satchel/internal/commands"
	"satchel/internal/storage"
)

const welcomeMessage = "Welcome to Satchel, your address book & notebook assistant.\n" +
	"Type 'help' to see all available commands, 'close' or 'exit' to save and quit."

// Model is the interactive command loop: a prompt line over a
// scrollback viewport of command/response pairs.
type Model struct {
	width  int
	height int

	viewport viewport.Model
	input    textinput.Model
	renderer *glamour.TermRenderer

	ctx   *commands.Context
	store *storage.Storage

	transcript []string
	ready      bool
	quitting   bool
}

func NewModel(ctx *commands.Context, store *storage.Storage) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a command..."
	ti.Prompt = promptStyle.Render("> ")
	ti.Focus()
	ti.CharLimit = 0

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	m := Model{
		viewport: vp,
		input:    ti,
		renderer: renderer,
		ctx:      ctx,
		store:    store,
	}
	m.transcript = append(m.transcript, outputStyle.Render(welcomeMessage))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		m.input.Width = msg.Width - 4
		m.refreshViewport()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Best-effort save before the process goes away.
			m.saveAll()
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, commandStyle.Render("> "+raw))

	verb, args := commands.Parse(raw)
	if verb == "close" || verb == "exit" {
		m.saveAll()
		m.transcript = append(m.transcript, outputStyle.Render("Data saved. Good bye!"))
		m.refreshViewport()
		m.quitting = true
		return m, tea.Quit
	}

	cmd, ok := commands.Lookup(verb)
	if !ok {
		m.transcript = append(m.transcript,
			warningStyle.Render(fmt.Sprintf("Invalid command: '%s'. Type 'help' for assistance.", verb)))
		m.refreshViewport()
		return m, nil
	}

	out := commands.Execute(m.ctx, cmd, args)
	m.transcript = append(m.transcript, m.renderOutput(cmd, out))
	m.refreshViewport()
	return m, nil
}

// renderOutput styles a command reply; the help screen is markdown and
// goes through glamour.
func (m Model) renderOutput(cmd commands.Command, out string) string {
	if cmd == commands.CmdHelp && m.renderer != nil {
		if rendered, err := m.renderer.Render(out); err == nil {
			return rendered
		}
	}
	if strings.HasPrefix(out, "Error: ") || strings.HasPrefix(out, "Unexpected error: ") {
		return errorStyle.Render(out)
	}
	return outputStyle.Render(out)
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n") + "\n")
	m.viewport.GotoBottom()
}

// saveAll flushes both collections and the audit trail; persistence
// failures become transcript warnings instead of crashes.
func (m *Model) saveAll() {
	if err := m.store.SaveAddressBook(m.ctx.Book); err != nil {
		m.transcript = append(m.transcript, warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
	}
	if err := m.store.SaveNotebook(m.ctx.Notebook); err != nil {
		m.transcript = append(m.transcript, warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
	}
	if err := m.ctx.Auditor.Flush(); err != nil {
		m.transcript = append(m.transcript, warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
	}
}

func (m Model) View() string {
	if m.quitting {
		return "Data saved. Good bye!\n"
	}
	if !m.ready {
		return "Loading..."
	}

	header := titleStyle.Render("Satchel") + " " +
		statusStyle.Render(fmt.Sprintf("%d contacts · %d notes", m.ctx.Book.Len(), m.ctx.Notebook.Len()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.input.View(),
	)
}
