// Package cvars provides the configuration-variable store behind the
// console's get/set/vars commands.
package cvars

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Store holds named configuration variables. Names are dotted and
// lowercase (e.g. "console.show_last_line"); values are strings, parsed
// on typed access.
type Store struct {
	values map[string]string
}

// New creates a store seeded with the built-in defaults.
func New() *Store {
	s := &Store{values: make(map[string]string)}
	s.Set("console.show_last_line", "1")
	return s
}

// Get retrieves a variable's value.
func (s *Store) Get(name string) (string, bool) {
	value, exists := s.values[strings.ToLower(name)]
	return value, exists
}

// Set stores a variable's value under its lowercased name.
func (s *Store) Set(name, value string) {
	s.values[strings.ToLower(name)] = value
}

// GetBool reports whether a variable holds a truthy value: "true",
// "on", "yes", or any positive number. Missing variables are false.
func (s *Store) GetBool(name string) bool {
	value, exists := s.Get(name)
	if !exists {
		return false
	}
	switch strings.ToLower(value) {
	case "true", "on", "yes":
		return true
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n > 0
	}
	return false
}

// Each calls fn for every variable in name order.
func (s *Store) Each(fn func(name, value string)) {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, s.values[name])
	}
}

// LoadFile overlays variables from a TOML file. Nested tables flatten
// into dotted names, so
//
//	[console]
//	show_last_line = "0"
//
// becomes console.show_last_line.
func (s *Store) LoadFile(path string) error {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return err
	}
	s.merge("", raw)
	return nil
}

func (s *Store) merge(prefix string, table map[string]any) {
	for key, v := range table {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			s.merge(name, nested)
			continue
		}
		s.Set(name, fmt.Sprint(v))
	}
}
