package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/param"
	"golang.org/x/term"
)

// lineReader is the part of *liner.State the terminal prompt uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
	Close() error
}

// Terminal asks for parameter values on the controlling terminal. Line editing
// is provided by liner; hidden params are read without echo.
//
// The terminal is only taken over on the first question, so a Terminal can be
// created unconditionally even when stdin is not a TTY.
type Terminal struct {
	out     io.Writer
	isTTY   func() bool
	newLine func() lineReader
	line    lineReader
}

var _ config.Prompter = (*Terminal)(nil)

// NewTerminal creates a terminal prompt writing hints and validation messages
// to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out: out,
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		newLine: func() lineReader {
			line := liner.NewLiner()
			line.SetCtrlCAborts(true)
			return line
		},
	}
}

// AskFor prompts until the user enters a value that satisfies the param's
// constraints. An empty answer selects the default when one is declared.
func (t *Terminal) AskFor(ctx context.Context, ns, name string, p param.Param) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.line == nil {
		if !t.isTTY() {
			return nil, &TTYRequiredError{Operation: "ask for param '" + name + "'"}
		}
		t.line = t.newLine()
	}

	text := promptText(ns, name, p)
	for {
		read := t.line.Prompt
		if p.Hidden {
			read = t.line.PasswordPrompt
		}
		input, err := read(text)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil, ErrAborted
			}
			return nil, fmt.Errorf("reading param '%s': %w", name, err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			if p.HasDefault() {
				return p.Default, nil
			}
			fmt.Fprintln(t.out, "A value is required.")
			continue
		}
		if err := p.Validate(input); err != nil {
			fmt.Fprintln(t.out, err)
			continue
		}
		return input, nil
	}
}

// Close restores the terminal if it was taken over.
func (t *Terminal) Close() error {
	if t.line == nil {
		return nil
	}
	err := t.line.Close()
	t.line = nil
	return err
}

// promptText renders the question, e.g.
// "ANSWER => web.image (Image to run) [centos/httpd]: ".
func promptText(ns, name string, p param.Param) string {
	var b strings.Builder
	b.WriteString("ANSWER => ")
	if ns != "" {
		b.WriteString(ns)
		b.WriteString(".")
	}
	b.WriteString(name)
	if p.Description != "" {
		fmt.Fprintf(&b, " (%s)", p.Description)
	}
	if p.HasDefault() && !p.Hidden {
		fmt.Fprintf(&b, " [%v]", p.Default)
	}
	b.WriteString(": ")
	return b.String()
}
