// Package tui implements the console presentation for plain terminals:
// styled line output on stdout and blocking line input from stdin.
package tui

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
)

// Ui renders console output to the terminal. It satisfies the console's
// presentation contract; no overlay collaborator is needed because the
// terminal already shows every line as it arrives.
type Ui struct {
	open   bool
	reader *bufio.Reader
}

// New creates a terminal presentation.
func New() *Ui {
	return &Ui{}
}

// Init sets up styles and the stdin reader and prints the banner.
func (u *Ui) Init() {
	initStyles()
	u.reader = bufio.NewReader(os.Stdin)
	u.open = true

	width := terminalWidth()
	fmt.Println(colorSubtle.Sprint(strings.Repeat("─", width)))

	// The formatter is single-pass, so markup must not nest; translate
	// first and style the result.
	fmt.Println(FormatString("DIM{%s} VAL{help} DIM{%s}",
		gotext.Get("Developer console. Type"),
		gotext.Get("for commands.")))
}

// Shutdown closes the console display.
func (u *Ui) Shutdown() {
	u.open = false
}

// OutputString prints one console line, styling bracketed severity
// prefixes from the logging bridge.
func (u *Ui) OutputString(text string) {
	switch {
	case hasAnyPrefix(text, "[Error]", "[Exception]", "[Assert]"):
		fmt.Println(colorError.Sprint(text))
	case strings.HasPrefix(text, "[Warning]"):
		fmt.Println(colorWarning.Sprint(text))
	default:
		fmt.Println(text)
	}
}

// IsOpen reports whether the console is accepting input.
func (u *Ui) IsOpen() bool {
	return u.open
}

// SetOpen opens or closes the console.
func (u *Ui) SetOpen(open bool) {
	u.open = open
}

// OnUpdate is the per-frame hook; the terminal display is immediate, so
// there is nothing to animate.
func (u *Ui) OnUpdate() {}

// OnLateUpdate is the late per-frame hook.
func (u *Ui) OnLateUpdate() {}

// Clear clears the terminal screen.
func (u *Ui) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ReadLine blocks for one line of typed input, without the trailing
// newline.
func (u *Ui) ReadLine() (string, error) {
	fmt.Print(colorPrompt.Sprint("> "))
	line, err := u.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// terminalWidth returns the current terminal width, falling back to a
// default when it cannot be determined.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return defaultWidth
	}
	return width
}
