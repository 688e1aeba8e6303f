package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"eraisubs/internal/adapters/tui/views"
	"eraisubs/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewHelp
)

// App is the root model of one picker session
type App struct {
	state  ViewState
	picker *views.PickerModel
	help   *views.HelpModel

	result []int
}

// NewApp creates an app that picks among items
func NewApp(items []string, header string, favorites ports.FavoritesRepository) *App {
	return &App{
		state:  ViewPicker,
		picker: views.NewPickerModel(items, header, favorites),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.picker.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, nil

	case views.PickerDoneMsg:
		a.result = msg.Indices
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.picker.View()
}

// Result returns the indices chosen when the app quit, nil if cancelled
func (a *App) Result() []int {
	return a.result
}

// Picker runs the built-in picker as a ports.Picker
type Picker struct {
	favorites ports.FavoritesRepository
	header    string
	output    io.Writer
	options   []tea.ProgramOption
}

// Option configures a Picker
type Option func(*Picker)

// WithHeader sets the line shown above the entries
func WithHeader(header string) Option {
	return func(p *Picker) {
		p.header = header
	}
}

// WithOutput sets where the picker draws, stderr by default
func WithOutput(w io.Writer) Option {
	return func(p *Picker) {
		p.output = w
	}
}

// WithProgramOptions passes extra options to the bubbletea program
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(p *Picker) {
		p.options = append(p.options, opts...)
	}
}

// NewPicker creates a built-in picker. favorites backs the favorite
// action and may be nil.
func NewPicker(favorites ports.FavoritesRepository, opts ...Option) *Picker {
	p := &Picker{
		favorites: favorites,
		output:    os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select shows items and blocks until the user confirms or cancels
func (p *Picker) Select(ctx context.Context, items []string) ([]int, error) {
	if len(items) == 0 {
		return nil, nil
	}

	app := NewApp(items, p.header, p.favorites)
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(p.output),
	}, p.options...)

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return app.Result(), nil
}

var _ ports.Picker = (*Picker)(nil)
