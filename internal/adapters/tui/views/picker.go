package views

import (
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eraisubs/internal/adapters/tui/styles"
	"eraisubs/internal/domain"
	"eraisubs/internal/ports"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Favorite  key.Binding
	Copy      key.Binding
	Confirm   key.Binding
	Help      key.Binding
	Cancel    key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k", "ctrl+p"),
		key.WithHelp("↑/ctrl+k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j", "ctrl+n"),
		key.WithHelp("↓/ctrl+j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "mark"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "mark all"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "favorite"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// PickerDoneMsg is sent when the user confirms or cancels.
// Indices is nil on cancel.
type PickerDoneMsg struct {
	Indices []int
}

// defaultPickerRows matches the fzf picker height minus prompt and help
const defaultPickerRows = 16

// PickerModel is a multi-select fuzzy picker over a flat list of entries
type PickerModel struct {
	ViewState

	items     []string
	header    string
	input     textinput.Model
	matches   []int
	hits      map[int][]int
	pager     *Paginator
	selected  map[int]bool
	favorites ports.FavoritesRepository
	copyFn    func(string) error
}

// NewPickerModel creates a picker over items. favorites may be nil, in
// which case the favorite action is disabled.
func NewPickerModel(items []string, header string, favorites ports.FavoritesRepository) *PickerModel {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.Placeholder = "filter"
	input.Focus()

	pager := NewPaginator(defaultPickerRows)
	pager.SetCycle(true)

	m := &PickerModel{
		items:     items,
		header:    header,
		input:     input,
		pager:     pager,
		selected:  make(map[int]bool),
		favorites: favorites,
		copyFn:    clipboard.WriteAll,
	}
	m.refilter()
	return m
}

// SetClipboard replaces the clipboard writer
func (m *PickerModel) SetClipboard(fn func(string) error) {
	m.copyFn = fn
}

// SetSize updates the view dimensions and the number of visible rows
func (m *PickerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(height-6, 1))
}

// Init initializes the picker view
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, done(nil)

		case key.Matches(msg, PickerKeys.Confirm):
			return m, done(m.Result())

		case key.Matches(msg, PickerKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, PickerKeys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, PickerKeys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, PickerKeys.Toggle):
			if idx, ok := m.Current(); ok {
				m.toggle(idx)
				m.pager.CursorDown()
			}
			return m, nil

		case key.Matches(msg, PickerKeys.ToggleAll):
			for _, idx := range m.matches {
				m.toggle(idx)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Favorite):
			m.addFavorite()
			return m, nil

		case key.Matches(msg, PickerKeys.Copy):
			m.copyCurrent()
			return m, nil

		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func done(indices []int) tea.Cmd {
	return func() tea.Msg {
		return PickerDoneMsg{Indices: indices}
	}
}

// Result returns the marked indices in ascending order, or the
// highlighted entry when nothing is marked
func (m *PickerModel) Result() []int {
	if len(m.selected) > 0 {
		out := make([]int, 0, len(m.selected))
		for idx := range m.selected {
			out = append(out, idx)
		}
		sort.Ints(out)
		return out
	}
	if idx, ok := m.Current(); ok {
		return []int{idx}
	}
	return []int{}
}

// Current returns the item index under the cursor
func (m *PickerModel) Current() (int, bool) {
	if len(m.matches) == 0 {
		return 0, false
	}
	return m.matches[m.pager.Cursor()], true
}

// Matches returns the item indices passing the filter, in display order
func (m *PickerModel) Matches() []int {
	return m.matches
}

func (m *PickerModel) toggle(idx int) {
	if m.selected[idx] {
		delete(m.selected, idx)
	} else {
		m.selected[idx] = true
	}
}

func (m *PickerModel) addFavorite() {
	idx, ok := m.Current()
	if !ok {
		return
	}
	if m.favorites == nil {
		m.SetMessage("favorites are not available", true)
		return
	}
	if err := m.favorites.Add(m.items[idx]); err != nil {
		m.SetMessage(fmt.Sprintf("favorite failed: %v", err), true)
		return
	}
	m.SetMessage("added to favorites: "+m.items[idx], false)
}

func (m *PickerModel) copyCurrent() {
	idx, ok := m.Current()
	if !ok {
		return
	}
	if err := m.copyFn(m.items[idx]); err != nil {
		m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	m.SetMessage("copied", false)
}

// refilter rebuilds matches from the query. Without a query entries are
// listed newest first, the way the listing page orders them bottom-up.
func (m *PickerModel) refilter() {
	m.matches, m.hits = filterItems(m.input.Value(), m.items)
	m.pager.Reset()
	m.pager.SetTotal(len(m.matches))
}

// View renders the picker view
func (m *PickerModel) View() string {
	v := NewViewBuilder()

	counter := fmt.Sprintf("  %d/%d", len(m.matches), len(m.items))
	if len(m.selected) > 0 {
		counter += fmt.Sprintf(" (%d)", len(m.selected))
	}
	v.Line(m.input.View() + styles.Counter.Render(counter))
	if m.header != "" {
		v.Muted(m.header)
	}

	width := m.Width - 6
	if width <= 0 {
		width = 80
	}
	start, end := m.pager.VisibleRange()
	for row := start; row < end; row++ {
		idx := m.matches[row]
		v.Line(m.renderRow(idx, row == m.pager.Cursor(), width))
	}
	if len(m.matches) == 0 {
		v.Muted("  no matches")
	}

	v.Message(m.Message, m.MessageErr)
	v.Help(PickerKeys.Toggle, PickerKeys.ToggleAll, PickerKeys.Favorite, PickerKeys.Confirm, PickerKeys.Help)
	return v.String()
}

func (m *PickerModel) renderRow(idx int, isCursor bool, width int) string {
	text := KeepRight(m.items[idx], width)

	cursor := " "
	if isCursor {
		cursor = styles.CursorMark
	}
	mark := styles.NoMark
	if m.selected[idx] {
		mark = styles.EntryMarked.Render(styles.SelectedMark)
	}

	if isCursor {
		return cursor + mark + styles.EntryCursor.Render(text)
	}

	base := styles.Entry
	if domain.IsFile(m.items[idx]) {
		base = styles.EntryFile
	}
	hits := shiftHits(m.hits[idx], len([]rune(m.items[idx])), width)
	if len(hits) == 0 {
		return cursor + mark + base.Render(text)
	}
	return cursor + mark + lipgloss.StyleRunes(text, hits, styles.SearchMatch, base)
}
