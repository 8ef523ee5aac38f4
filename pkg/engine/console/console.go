package console

import (
	"fmt"
	"strings"
)

// Ui is the presentation collaborator contract. The console calls these
// and never inspects rendering state.
type Ui interface {
	Init()
	Shutdown()
	OutputString(text string)
	IsOpen() bool
	SetOpen(open bool)
	OnUpdate()
	OnLateUpdate()
	Clear()
}

// Overlay draws transient debug text at a fixed screen anchor.
type Overlay interface {
	DrawText(text string, x, y int)
}

// Clock supplies the host application's frame time in seconds.
type Clock interface {
	Now() float64
}

// Vars is the configuration-variable collaborator consulted by Write
// and the get/set/vars commands.
type Vars interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Each(fn func(name, value string))
	GetBool(name string) bool
}

// Severity classifies a log message forwarded from the host's logging
// facility.
type Severity int

// Severities, in the host logging facility's enumeration order.
const (
	SeverityError Severity = iota
	SeverityAssert
	SeverityWarning
	SeverityLog
	SeverityException
)

// severityPrefixes is a total mapping over Severity. A severity outside
// this set is an enumeration mismatch between caller and console.
var severityPrefixes = map[Severity]string{
	SeverityError:     "[Error] ",
	SeverityAssert:    "[Assert] ",
	SeverityWarning:   "[Warning] ",
	SeverityLog:       "[Log] ",
	SeverityException: "[Exception] ",
}

// lastMessageTTL is how long the most recent line stays on the overlay,
// in host-clock seconds.
const lastMessageTTL = 1.0

// showLastLineVar gates the last-message overlay; read on every Write.
const showLastLineVar = "console.show_last_line"

// Fixed overlay anchor.
const (
	overlayX = 10
	overlayY = 10
)

// Console owns the registry, pending queue and history, and wires them
// to the presentation, clock, config and file collaborators. Construct
// one per host application and pass it by handle; there is no package
// level state, so independent instances can coexist.
type Console struct {
	registry *Registry
	pending  *PendingQueue
	history  *History

	ui      Ui
	overlay Overlay
	clock   Clock
	vars    Vars
	files   FileReader

	lastText string
	lastTime float64
	hasLast  bool

	tick        int64
	resumeCond  func() bool // non-nil while dispatch is suspended
	loadPending bool
}

// New creates a console wired to its collaborators and registers the
// built-in commands. overlay and vars may be nil; a nil files reads
// scripts from the local filesystem.
func New(ui Ui, overlay Overlay, clock Clock, vars Vars, files FileReader) *Console {
	c := &Console{
		registry: NewRegistry(),
		history:  NewHistory(),
		ui:       ui,
		overlay:  overlay,
		clock:    clock,
		vars:     vars,
		files:    files,
	}
	if c.files == nil {
		c.files = osFileReader{}
	}
	c.pending = NewPendingQueue(c.Write)
	c.ui.Init()
	c.registerBuiltins()
	return c
}

// Shutdown tears down the presentation collaborator.
func (c *Console) Shutdown() {
	c.ui.Shutdown()
}

// Ui returns the presentation collaborator, for hosts that drive its
// open/closed state directly.
func (c *Console) Ui() Ui {
	return c.ui
}

// Write outputs a message. When the show-last-line variable is truthy
// the message also becomes the transient overlay text, stamped with the
// current host-clock time.
func (c *Console) Write(message string) {
	if c.vars != nil && c.vars.GetBool(showLastLineVar) {
		c.lastText = message
		c.lastTime = c.clock.Now()
		c.hasLast = true
	}
	c.ui.OutputString(message)
}

// WriteLog re-emits a host log entry with a bracketed severity prefix.
// An unknown severity panics: it indicates an enumeration mismatch
// between caller and console, not a runtime user error.
func (c *Console) WriteLog(message, stacktrace string, severity Severity) {
	prefix, ok := severityPrefixes[severity]
	if !ok {
		panic(fmt.Sprintf("console: unknown log severity %d", int(severity)))
	}
	c.Write(prefix + message)
	if stacktrace == "" {
		return
	}
	switch severity {
	case SeverityError, SeverityAssert, SeverityException:
		c.Write(stacktrace)
	}
}

// Register adds a command with the default group tag. Duplicate names
// are rejected: the original handler is kept and one diagnostic line is
// written.
func (c *Console) Register(name string, handler Handler, description string) {
	c.RegisterTagged(name, handler, description, 0)
}

// RegisterTagged adds a command under an integer group tag so a
// subsystem can later remove all of its commands at once.
func (c *Console) RegisterTagged(name string, handler Handler, description string, tag int) {
	if !c.registry.Register(name, handler, description, tag) {
		c.Write("Command already registered: " + strings.ToLower(name))
	}
}

// Unregister removes a command; unknown names are a no-op.
func (c *Console) Unregister(name string) {
	c.registry.Unregister(name)
}

// UnregisterByTag removes every command registered with the given tag.
func (c *Console) UnregisterByTag(tag int) {
	c.registry.UnregisterByTag(tag)
}

// Enqueue queues a command line for dispatch and records it in the
// recall history.
func (c *Console) Enqueue(command string) {
	c.history.Record(command)
	c.pending.Enqueue(command)
}

// EnqueueSilent queues a command line without touching history.
func (c *Console) EnqueueSilent(command string) {
	c.pending.Enqueue(command)
}

// RecallPrevious steps the interactive history cursor back one entry.
func (c *Console) RecallPrevious() string {
	return c.history.RecallPrevious()
}

// RecallNext steps the interactive history cursor forward one entry.
func (c *Console) RecallNext() string {
	return c.history.RecallNext()
}

// ProcessArguments reconstructs '+'-prefixed commands from a raw
// argument vector and queues them without history, mirroring startup
// command-line injection. The batch is head-inserted so it runs before
// anything queued earlier, in scan order.
func (c *Console) ProcessArguments(args []string) {
	var selected []string
	for _, entry := range tokenizeArguments(args) {
		if entry.exec {
			selected = append(selected, entry.text)
		}
	}
	if len(selected) > 0 {
		c.pending.EnqueueFromScript(selected)
	}
}

// NotifyLoadStarted marks a level load in progress; a queued 'waitload'
// suspends dispatch until NotifyLoadComplete.
func (c *Console) NotifyLoadStarted() {
	c.loadPending = true
}

// NotifyLoadComplete resumes any 'waitload' suspension on the next tick.
func (c *Console) NotifyLoadComplete() {
	c.loadPending = false
}

// Update is the per-frame tick. It advances the dispatch loop and then
// the passive last-message overlay; it never re-enters a running drain.
func (c *Console) Update() {
	c.tick++
	c.ui.OnUpdate()
	c.drainPending()
	c.updateOverlay()
}

// LateUpdate forwards the host's late-update hook to the presentation.
func (c *Console) LateUpdate() {
	c.ui.OnLateUpdate()
}

// drainPending dispatches the lines queued at tick start. The length
// and head generation are latched first so nothing a handler enqueues
// now runs within this drain pass: tail appends fall outside the
// latched length, and a head insertion (exec inside a handler) bumps the
// generation and ends the pass. wait/waitload install a resume
// condition and leave the remaining lines queued.
func (c *Console) drainPending() {
	if c.resumeCond != nil {
		if !c.resumeCond() {
			return
		}
		c.resumeCond = nil
	}
	n := c.pending.Len()
	gen := c.pending.Generation()
	for i := 0; i < n; i++ {
		line, ok := c.pending.PopFront()
		if !ok {
			return
		}
		c.dispatch(line)
		if c.resumeCond != nil {
			return
		}
		if c.pending.Generation() != gen {
			return
		}
	}
}

// dispatch resolves a queued line's first token against the registry and
// runs the handler with the remaining tokens. Unknown names, including
// the empty name from a bare '+' or '-' startup token, produce a visible
// diagnostic.
func (c *Console) dispatch(line string) {
	fields := strings.Fields(line)
	name := ""
	if len(fields) > 0 {
		name = strings.ToLower(fields[0])
	}
	cmd, ok := c.registry.Lookup(name)
	if !ok {
		c.Write(fmt.Sprintf("Unknown command: %q (type 'help' for commands)", name))
		return
	}
	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}
	cmd.Handler(args)
}

// updateOverlay renders the most recent message through the overlay
// collaborator while it is still fresh. Display only; no dispatch.
func (c *Console) updateOverlay() {
	if !c.hasLast || c.overlay == nil {
		return
	}
	if c.clock.Now()-c.lastTime < lastMessageTTL {
		c.overlay.DrawText(c.lastText, overlayX, overlayY)
	}
}
