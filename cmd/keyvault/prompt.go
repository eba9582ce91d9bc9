package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNoInput is returned when stdin ends before a prompt was answered.
var ErrNoInput = errors.New("no input")

// readSecret asks for a value that must not be echoed. On a terminal the
// input is read with echo disabled, otherwise one line is read from the
// command's input.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.TrimSpace(prompt), err)
		}
		return string(b), nil
	}

	return readLine(cmd)
}

// readLine reads one line from the command's input without the line ending.
func readLine(cmd *cobra.Command) (string, error) {
	r, ok := cmd.InOrStdin().(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(cmd.InOrStdin())
		cmd.SetIn(r)
	}

	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question. Anything but "y" or "yes" declines.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)

	answer, err := readLine(cmd)
	if errors.Is(err, ErrNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
