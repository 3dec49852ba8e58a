// Package prompt resolves required string values from flags, the
// environment or an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoInput = errors.New("no input")

type Resolver struct {
	in  *bufio.Reader
	out io.Writer
}

func NewResolver(in io.Reader, out io.Writer) *Resolver {
	return &Resolver{in: bufio.NewReader(in), out: out}
}

// Resolve returns value when it is non-empty after trimming. Otherwise it
// asks for the label until a non-empty line is entered.
func (r *Resolver) Resolve(value, label string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return value, nil
	}

	for {
		fmt.Fprintf(r.out, "Please enter your %s:\n", label)
		line, err := r.in.ReadString('\n')
		if input := strings.TrimSpace(line); input != "" {
			return input, nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading %s: %w", label, ErrNoInput)
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}
	}
}
