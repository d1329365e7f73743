package hotel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Prompter reads typed, range-checked values line by line. Each reader
// re-prompts until the input parses and fits its bounds, explaining what was
// wrong. Readers return io.EOF only when the input runs out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps an input stream and an output for prompts and errors.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadInt prompts until the user enters a whole number in [min, max].
func (p *Prompter) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Not a whole number: %q. Try again.\n", line)
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(p.out, "Value must be between %d and %d. Try again.\n", min, max)
			continue
		}
		return v, nil
	}
}

// ReadDecimal prompts until the user enters a decimal amount of at least min.
func (p *Prompter) ReadDecimal(prompt string, min decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		v, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintf(p.out, "Not a number: %q. Try again.\n", line)
			continue
		}
		if v.LessThan(min) {
			fmt.Fprintf(p.out, "Value must be at least %s. Try again.\n", min)
			continue
		}
		return v, nil
	}
}

// ReadString prompts until the input length lands in [minLen, maxLen].
func (p *Prompter) ReadString(prompt string, minLen, maxLen int) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if len(line) < minLen || len(line) > maxLen {
			fmt.Fprintf(p.out, "Text must be %d to %d characters. Try again.\n", minLen, maxLen)
			continue
		}
		return line, nil
	}
}

// ReadDate prompts until the user enters a dd.MM.yyyy calendar date.
func (p *Prompter) ReadDate(prompt string) (time.Time, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, err := time.Parse(DateLayout, line)
		if err != nil {
			fmt.Fprintf(p.out, "Not a date (expected dd.mm.yyyy): %q. Try again.\n", line)
			continue
		}
		return d, nil
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
