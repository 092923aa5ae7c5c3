package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/smallstep/authtui/internal/otpauth"
)

const (
	headerFormat = "%-30s %-20s %8s %4s"
	rowFormat    = "%-30s %-20s %8s %3ds"
	ruleWidth    = 68

	// headerHeight is the number of lines printed before the rows.
	headerHeight = 2
)

// Renderer is the output of the display loop.
type Renderer interface {
	// ClearLines moves the cursor up the given number of lines so the next
	// frame overwrites them.
	ClearLines(n int) error
	// WriteFrame writes each line followed by a new line.
	WriteFrame(lines []string) error
}

// Terminal is a Renderer that writes ANSI escape sequences to a terminal.
type Terminal struct {
	w io.Writer
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// ClearLines implements Renderer using the cursor up sequence.
func (t *Terminal) ClearLines(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "\x1b[%dA", n)
	return errors.Wrap(err, "error writing to terminal")
}

// WriteFrame implements Renderer.
func (t *Terminal) WriteFrame(lines []string) error {
	bw := bufio.NewWriter(t.w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "error writing to terminal")
}

// Frame is one rendering of the table of codes.
type Frame struct {
	// Lines contains the header, the rule and one row per valid secret.
	Lines []string
	// Height is the number of lines the next frame moves up to redraw this
	// one. It's computed from the number of secrets, not the number of rows,
	// so invalid secrets make it larger than len(Lines).
	Height int
}

// Header returns the first two lines of every frame.
func Header() []string {
	return []string{
		fmt.Sprintf(headerFormat, "USERNAME", "ISSUER", "CODE", "TTL"),
		strings.Repeat("-", ruleWidth),
	}
}

// BuildFrame returns the frame for the given secrets at the given time.
// Secrets that cannot be parsed are skipped.
func BuildFrame(secrets []string, now time.Time) Frame {
	remaining := otpauth.SecondsRemaining(now)
	lines := Header()
	for _, uri := range secrets {
		d, ok := otpauth.Parse(uri)
		if !ok {
			continue
		}
		code, err := d.Code(now)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf(rowFormat, d.Account, d.Issuer, code, remaining))
	}
	return Frame{
		Lines:  lines,
		Height: headerHeight + len(secrets),
	}
}
