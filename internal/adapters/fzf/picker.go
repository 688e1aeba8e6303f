package fzf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"eraisubs/internal/ports"
)

// fzf exits 1 when nothing matched and 130 when the user aborted
const (
	exitNoMatch   = 1
	exitInterrupt = 130
)

// Picker implements ports.Picker by running fzf as a subprocess
type Picker struct {
	binary         string
	favoriteAction string
	height         string
}

// Ensure Picker implements Picker
var _ ports.Picker = (*Picker)(nil)

// Option configures the Picker
type Option func(*Picker)

// WithBinary sets the fzf executable
func WithBinary(binary string) Option {
	return func(p *Picker) {
		p.binary = binary
	}
}

// WithFavoriteAction sets the shell command bound to ctrl-f. The fzf
// placeholder {2..} expands to the highlighted entry without its index.
func WithFavoriteAction(action string) Option {
	return func(p *Picker) {
		p.favoriteAction = action
	}
}

// NewPicker creates a new fzf picker
func NewPicker(opts ...Option) *Picker {
	p := &Picker{
		binary: "fzf",
		height: "20",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Available reports whether the fzf binary can be found
func (p *Picker) Available() bool {
	_, err := exec.LookPath(p.binary)
	return err == nil
}

// Args returns the fzf command line. Entries are "index/value" and
// only the value is displayed and searched.
func (p *Picker) Args() []string {
	args := []string{
		"-m",
		"-d", "/",
		"--with-nth", "2..",
		"--height", p.height,
		"--cycle",
		"--tac",
		"--reverse",
		"--keep-right",
		"--bind", "ctrl-a:toggle-all",
	}

	header := "ctrl-a select-all"
	if p.favoriteAction != "" {
		args = append(args, "--bind", fmt.Sprintf("ctrl-f:execute-silent(%s)", p.favoriteAction))
		header = "ctrl-f add to favorites | " + header
	}

	return append(args, "--header", header)
}

// Select runs fzf over items and returns the chosen indices in the
// order fzf printed them
func (p *Picker) Select(ctx context.Context, items []string) ([]int, error) {
	cmd := exec.CommandContext(ctx, p.binary, p.Args()...)
	cmd.Stdin = strings.NewReader(FormatInput(items))
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitNoMatch, exitInterrupt:
				return nil, nil
			}
		}
		return nil, fmt.Errorf("fzf error: %w", err)
	}

	return ParseSelection(string(out))
}

// FormatInput numbers items as "index/value" lines
func FormatInput(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('/')
		b.WriteString(item)
	}
	return b.String()
}

// ParseSelection reads the indices back from fzf's "index/value" output
func ParseSelection(out string) ([]int, error) {
	var sel []int
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		idx, _, _ := strings.Cut(line, "/")
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, fmt.Errorf("unexpected fzf output %q: %w", line, err)
		}
		sel = append(sel, i)
	}
	return sel, nil
}

// ShellQuote single-quotes s for use inside an fzf bind action
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
