package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eraisubs/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc/q/f1", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPickerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("eraisubs"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Type to filter, letters match in order"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Navigation"))
	b.WriteString("\n")
	for _, k := range []key.Binding{PickerKeys.Up, PickerKeys.Down, PickerKeys.PageUp, PickerKeys.PageDown} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.Title.Render("Selection"))
	b.WriteString("\n")
	for _, k := range []key.Binding{PickerKeys.Toggle, PickerKeys.ToggleAll, PickerKeys.Confirm, PickerKeys.Cancel} {
		b.WriteString(helpLine(k))
	}
	b.WriteString(styles.MutedText.Render("  enter with nothing marked picks the highlighted entry"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine(PickerKeys.Favorite))
	b.WriteString(helpLine(PickerKeys.Copy))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("f1"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 20)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
