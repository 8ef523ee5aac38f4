package console

import (
	"fmt"
	"strings"
)

// registerBuiltins installs the commands every console carries.
func (c *Console) registerBuiltins() {
	c.Register("help", c.cmdHelp, "Lists all commands, or describes each named command")
	c.Register("vars", c.cmdVars, "Lists all configuration variables")
	c.Register("get", c.cmdGet, "Prints the value of a configuration variable")
	c.Register("set", c.cmdSet, "Sets a configuration variable")
	c.Register("clear", c.cmdClear, "Clears the console output")
	c.Register("wait", c.cmdWait, "Holds remaining queued commands until the next frame")
	c.Register("waitload", c.cmdWaitLoad, "Holds remaining queued commands until a level load completes")
	c.Register("exec", c.cmdExec, "Runs a script file: exec [-s] <filename>")
}

func (c *Console) cmdHelp(args []string) {
	if len(args) == 0 {
		for cmd := range c.registry.All() {
			c.Write(fmt.Sprintf("%s - %s", cmd.Name, cmd.Description))
		}
		return
	}
	for _, name := range args {
		if cmd, ok := c.registry.Lookup(name); ok {
			c.Write(fmt.Sprintf("%s - %s", cmd.Name, cmd.Description))
		} else {
			c.Write("Command not found: " + name)
		}
	}
}

func (c *Console) cmdVars(args []string) {
	if c.vars == nil {
		c.Write("No cvars defined")
		return
	}
	count := 0
	c.vars.Each(func(name, value string) { count++ })
	if count == 0 {
		c.Write("No cvars defined")
		return
	}
	c.Write(fmt.Sprintf("Cvars (%d):", count))
	c.vars.Each(func(name, value string) {
		c.Write(fmt.Sprintf("  %s = %q", name, value))
	})
}

func (c *Console) cmdGet(args []string) {
	if len(args) < 1 {
		c.Write("Usage: get <cvar>")
		return
	}
	if c.vars == nil {
		c.Write("No cvars defined")
		return
	}
	name := strings.ToLower(args[0])
	if value, ok := c.vars.Get(name); ok {
		c.Write(fmt.Sprintf("%s = %q", name, value))
	} else {
		c.Write("Unknown cvar: " + name)
	}
}

func (c *Console) cmdSet(args []string) {
	if len(args) < 2 {
		c.Write("Usage: set <cvar> <value>")
		return
	}
	if c.vars == nil {
		c.Write("No cvars defined")
		return
	}
	name := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	c.vars.Set(name, value)
	c.Write(fmt.Sprintf("%s = %q", name, value))
}

func (c *Console) cmdClear(args []string) {
	c.ui.Clear()
}

// cmdWait installs a resume condition that holds the rest of the queue
// for the current tick; dispatch continues on the next one.
func (c *Console) cmdWait(args []string) {
	tick := c.tick
	c.resumeCond = func() bool { return c.tick > tick }
}

// cmdWaitLoad holds the rest of the queue until the host signals load
// completion. With no load in progress it resumes on the next tick.
func (c *Console) cmdWaitLoad(args []string) {
	c.resumeCond = func() bool { return !c.loadPending }
}

// cmdExec loads a script file and head-inserts its lines into the
// pending queue. Failures become a console diagnostic, suppressed by the
// -s flag; they never propagate out of the console.
func (c *Console) cmdExec(args []string) {
	var silent bool
	var filename string
	switch {
	case len(args) == 1 && args[0] != "-s":
		filename = args[0]
	case len(args) == 2 && args[0] == "-s":
		silent = true
		filename = args[1]
	default:
		c.Write("Usage: exec [-s] <filename>")
		return
	}

	lines, err := c.files.ReadLines(filename)
	if err != nil {
		if !silent {
			c.Write(fmt.Sprintf("Exec failed: %v", err))
		}
		return
	}
	c.pending.EnqueueFromScript(lines)
}
