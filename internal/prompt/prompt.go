package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Asker reads answers from an input stream and writes questions to an output
// stream. Both streams are injected so interactive behavior can be exercised
// in tests with in-memory buffers instead of a real terminal.
type Asker struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns an Asker reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Asker {
	return &Asker{in: bufio.NewReader(in), out: out}
}

// YesNo asks a yes/no question and blocks until a valid answer is read.
// Accepted answers are case-insensitive y/yes/n/no; anything else re-prompts
// with a hint. An exhausted or failing input stream returns an error so a
// closed stdin cannot spin forever.
func (a *Asker) YesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(a.out, "%s [y/n]: ", question)

		line, err := a.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		fmt.Fprintln(a.out, "Please answer y/yes or n/no.")
	}
}

// Line asks a free-form question and returns the trimmed answer, or fallback
// when the user just presses enter. Used for the git identity prompts.
func (a *Asker) Line(question, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", question, fallback)
	} else {
		fmt.Fprintf(a.out, "%s: ", question)
	}

	line, err := a.in.ReadString('\n')
	answer := strings.TrimSpace(line)
	if answer == "" && err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}
