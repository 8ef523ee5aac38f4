// Package console implements the in-process developer console: a command
// registry, a pending-command queue, input history, argument tokenizing
// and script execution, decoupled from rendering through a presentation
// interface.
package console

import (
	"iter"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Handler executes a registered command with its arguments.
type Handler func(args []string)

// Command is a named operation invocable from the console.
type Command struct {
	Name        string
	Handler     Handler
	Description string
	Tag         int
}

// Registry owns the mapping from command name to command, preserving
// registration order for enumeration.
type Registry struct {
	commands map[string]*Command
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register inserts a command under its lowercased name. Returns false
// when the name is already taken; the original command is kept.
func (r *Registry) Register(name string, handler Handler, description string, tag int) bool {
	key := strings.ToLower(name)
	if _, exists := r.commands[key]; exists {
		return false
	}
	r.commands[key] = &Command{Name: key, Handler: handler, Description: description, Tag: tag}
	r.order = append(r.order, key)
	return true
}

// Unregister removes a command. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	key := strings.ToLower(name)
	if _, exists := r.commands[key]; !exists {
		return
	}
	delete(r.commands, key)
	for i, n := range r.order {
		if n == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UnregisterByTag removes every command whose tag equals tag. Matching
// names are collected before any removal so the map is never mutated
// while it is being walked.
func (r *Registry) UnregisterByTag(tag int) {
	matched := mapset.New[string]()
	for name, cmd := range r.commands {
		if cmd.Tag == tag {
			matched.Put(name)
		}
	}
	matched.Each(func(name string) {
		r.Unregister(name)
	})
}

// Lookup finds a command by name, case-insensitively.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// All enumerates the registered commands in registration order. The
// returned sequence is restartable; each range walks the current
// contents afresh.
func (r *Registry) All() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for _, name := range r.order {
			cmd, ok := r.commands[name]
			if !ok {
				continue
			}
			if !yield(cmd) {
				return
			}
		}
	}
}

// Len reports the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
