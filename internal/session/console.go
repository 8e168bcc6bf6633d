package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned when the input stream ends mid-session.
var ErrInputClosed = errors.New("input closed")

// #region console
// Console is the line-oriented I/O collaborator a session talks through.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	headline lipgloss.Style

	start sync.Once
	lines chan inputLine
}

type inputLine struct {
	text string
	err  error
}

// NewConsole reads player input from r and writes prompts and story text to w.
// Headlines are styled for w's terminal capabilities and stay plain otherwise.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:       bufio.NewScanner(r),
		out:      w,
		headline: lipgloss.NewRenderer(w).NewStyle().Bold(true),
	}
}

// Println writes one line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Headline writes one emphasized line.
func (c *Console) Headline(text string) {
	fmt.Fprintln(c.out, c.headline.Render(text))
}

// Prompt writes label and returns the next input line with surrounding
// whitespace removed. It returns ctx.Err() as soon as ctx is done, even while
// the reader is still blocked.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)
	c.start.Do(func() {
		c.lines = make(chan inputLine)
		go c.scan()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// scan feeds input lines to Prompt. A read abandoned by a cancelled Prompt
// stays blocked until the reader returns or the process exits.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
	}
}

// #endregion console
