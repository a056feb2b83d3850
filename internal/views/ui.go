package views

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UI is the shared prompt/output pair the views render through. It reads one
// trimmed line per prompt and remembers when input is exhausted.
type UI struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

// NewUI creates a UI over the given reader and writer.
func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Say writes a formatted line to the user.
func (u *UI) Say(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

// Prompt prints a label and reads one line of input.
func (u *UI) Prompt(label string) string {
	fmt.Fprintf(u.out, "%s: ", label)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		u.closed = true
		fmt.Fprintln(u.out)
		return ""
	}
	return strings.TrimSpace(line)
}

// Closed reports whether the input stream has ended.
func (u *UI) Closed() bool {
	return u.closed
}

// Fail prints an operation's error the way the app shows a toast.
func (u *UI) Fail(err error) {
	u.Say("! %s", err)
}
