package console

import "strings"

// argEntry is one command reconstructed from a raw argument vector.
type argEntry struct {
	text string
	exec bool // introduced with '+': selected for execution
}

// tokenizeArguments splits raw command-line tokens into discrete command
// strings. A token beginning with '+' or '-' starts a new entry holding
// the text after the marker; an unprefixed token extends the most recent
// entry, space-separated, and is silently dropped when no entry exists
// yet. A bare '+' or '-' still creates an entry with an empty name; it
// fails lookup at dispatch time instead of crashing here.
//
// Only '+' entries are selected for execution. '-' entries are present
// but inert: flag-style context consumed by the matching '+' command.
func tokenizeArguments(args []string) []argEntry {
	var entries []argEntry
	for _, tok := range args {
		if strings.HasPrefix(tok, "+") || strings.HasPrefix(tok, "-") {
			entries = append(entries, argEntry{text: tok[1:], exec: tok[0] == '+'})
			continue
		}
		if len(entries) == 0 {
			continue
		}
		entries[len(entries)-1].text += " " + tok
	}
	return entries
}
