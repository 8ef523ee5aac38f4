package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	colorError   color.Style
	colorWarning color.Style
	colorValue   color.Style
	colorSubtle  color.Style
	colorPrompt  color.Style

	regexpStringFunctions *regexp.Regexp
)

// gettext is called through a variable: the operand is a message id to
// look up verbatim, not a format string.
var gettext = gotext.Get

// initStyles initializes the color styles and the markup matcher.
func initStyles() {
	colorError = color.Style{color.FgRed, color.OpBold}
	colorWarning = color.Style{color.FgYellow}
	colorValue = color.Style{color.FgGreen, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
	colorPrompt = color.Style{color.FgMagenta, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]+){([^{}]*)}`)
}

// FormatString formats a string with special markup. GT{...} translates
// the operand through gettext; ERR{...}, WARN{...}, VAL{...} and
// DIM{...} apply styles. Unknown functions are left untouched.
func FormatString(msg string, a ...any) string {
	if regexpStringFunctions == nil {
		initStyles()
	}

	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = gettext(operand)
		case "ERR":
			val = colorError.Sprint(operand)
		case "WARN":
			val = colorWarning.Sprint(operand)
		case "VAL":
			val = colorValue.Sprint(operand)
		case "DIM":
			val = colorSubtle.Sprint(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}
