package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/jsamuelsen11/taskboard/internal/adapters/render"
)

// promptConfirmer asks a y/N question on out and reads the answer from in.
// On a terminal the question is a promptui confirm prompt; piped input is
// read a line at a time. Anything but y or yes, including end of input, is
// a no.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer

	// run shows p; nil means p.Run. Only used when in is a terminal.
	run func(p *promptui.Prompt) (string, error)
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: in, out: out}
}

func (p *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if p.run != nil || render.IsTerminal(p.in) {
		return p.confirmInteractive(prompt)
	}
	return p.confirmLine(prompt)
}

func (p *promptConfirmer) confirmInteractive(prompt string) (bool, error) {
	ui := &promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Stdin:     io.NopCloser(p.in),
		Stdout:    nopWriteCloser{p.out},
	}
	run := p.run
	if run == nil {
		run = (*promptui.Prompt).Run
	}

	_, err := run(ui)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrEOF):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt):
		return false, context.Canceled
	default:
		return false, fmt.Errorf("reading answer: %w", err)
	}
}

func (p *promptConfirmer) confirmLine(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s [y/N] ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
