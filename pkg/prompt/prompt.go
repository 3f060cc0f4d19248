// Package prompt implements line-oriented interactive input with
// defaults. There is no validation and no re-prompting: one question,
// one line, empty answer means the default.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/errors"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter bound to the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask displays "<prompt> [<def>]: " and reads one line. Surrounding
// whitespace is trimmed; an empty answer yields the default.
func (p *Prompter) Ask(prompt, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count
// as affirmative, everything else is a no.
func (p *Prompter) Confirm(prompt, def string) (bool, error) {
	answer, err := p.Ask(prompt, def)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Collect asks for every variable in catalog order and returns the
// complete value set. A preset replaces the default shown for that
// variable; the question is still asked.
func (p *Prompter) Collect(cat catalog.Catalog, presets map[string]string) (catalog.Values, error) {
	values := make(catalog.Values, cat.Len())

	for _, def := range cat.Definitions() {
		fallback := def.Default
		if preset, ok := presets[def.Name]; ok {
			fallback = preset
		}

		fmt.Fprintf(p.out, "\n%s\n", def.Description)
		answer, err := p.Ask("  "+def.Name, fallback)
		if err != nil {
			return nil, err
		}
		values[def.Name] = answer
	}

	return values, nil
}

// readLine reads up to the next newline. A final unterminated line is
// still an answer; EOF with nothing read means the stream is gone.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		if line != "" {
			return line, nil
		}
		return "", errors.New(errors.ErrInputClosed, "input ended before a response")
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInputClosed, "failed to read input")
	}
	return line, nil
}
