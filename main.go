package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/fh9501/fps/pkg/engine/console"
	"github.com/fh9501/fps/pkg/engine/cvars"
	ebitenui "github.com/fh9501/fps/pkg/ui/ebiten"
	"github.com/fh9501/fps/pkg/ui/tui"
)

// demoTag groups the demo commands so a single UnregisterByTag call can
// remove them all.
const demoTag = 1

// hostClock reports seconds since startup as the frame time.
type hostClock struct {
	start time.Time
}

func (c *hostClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// loadSim fakes a level load that completes a few frames later, so
// waitload has something to wait for.
type loadSim struct {
	ticksLeft int
}

func initGettext() {
	gotext.Configure("mo", "en_GB", "default")
}

func registerDemoCommands(c *console.Console, sim *loadSim, quit *bool) {
	c.RegisterTagged("echo", func(args []string) {
		c.Write(strings.Join(args, " "))
	}, "Prints its arguments", demoTag)

	c.RegisterTagged("quit", func(args []string) {
		*quit = true
	}, "Exits the demo", demoTag)

	c.RegisterTagged("load", func(args []string) {
		c.NotifyLoadStarted()
		sim.ticksLeft = 90
		c.Write("Loading level...")
	}, "Simulates a level load (pair with waitload)", demoTag)
}

func tickLoadSim(c *console.Console, sim *loadSim) {
	if sim.ticksLeft <= 0 {
		return
	}
	sim.ticksLeft--
	if sim.ticksLeft == 0 {
		c.NotifyLoadComplete()
		c.Write("Level load complete")
	}
}

// game hosts the console inside the ebiten frame loop.
type game struct {
	console *console.Console
	ui      *ebitenui.Ui
	sim     *loadSim
	quit    bool
}

func (g *game) Update() error {
	tickLoadSim(g.console, g.sim)
	g.console.Update()
	g.console.LateUpdate()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ui.DrawOn(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 640, 480
}

func main() {
	useTui := flag.Bool("tui", false, "Run the console as a terminal REPL instead of the ebiten window")
	configPath := flag.String("config", "", "Optional TOML file of configuration variables")
	flag.Parse()

	initGettext()

	vars := cvars.New()
	if *configPath != "" {
		if err := vars.LoadFile(*configPath); err != nil {
			log.Fatalf("Cannot load config %s: %v", *configPath, err)
		}
	}

	clock := &hostClock{start: time.Now()}
	sim := &loadSim{}

	if *useTui {
		runTerminal(vars, clock, sim)
		return
	}
	runWindow(vars, clock, sim)
}

// runTerminal drives the console as a plain REPL: each entered line is
// one tick.
func runTerminal(vars *cvars.Store, clock *hostClock, sim *loadSim) {
	quit := false
	ui := tui.New()
	c := console.New(ui, nil, clock, vars, nil)
	registerDemoCommands(c, sim, &quit)
	c.ProcessArguments(flag.Args())

	for {
		tickLoadSim(c, sim)
		c.Update()
		c.LateUpdate()
		if quit {
			break
		}
		line, err := ui.ReadLine()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) != "" {
			c.Enqueue(line)
		}
	}
	c.Shutdown()
}

// runWindow drives the console inside an ebiten window; the backquote
// key drops it down.
func runWindow(vars *cvars.Store, clock *hostClock, sim *loadSim) {
	ui := ebitenui.New()
	c := console.New(ui, ui, clock, vars, nil)
	ui.Attach(c)

	g := &game{console: c, ui: ui, sim: sim}
	registerDemoCommands(c, sim, &g.quit)
	c.ProcessArguments(flag.Args())
	c.Write("Press ` to open the console")

	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("Console Demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Cannot run game loop: %v", err)
	}
	c.Shutdown()
}
