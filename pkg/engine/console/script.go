package console

import (
	"os"
	"strings"
)

// FileReader reads a script file as an ordered sequence of text lines.
// Implementations report failure as an error value; the console converts
// it into a diagnostic line and never lets it escalate further.
type FileReader interface {
	ReadLines(path string) ([]string, error)
}

// osFileReader reads scripts from the local filesystem.
type osFileReader struct{}

// ReadLines returns the file's lines, passed through unchanged apart
// from line-ending normalization. Interior empty lines are preserved;
// they fail command lookup harmlessly at dispatch time.
func (osFileReader) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
