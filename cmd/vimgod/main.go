package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/21andrewchang/vimgod/audio"
	"github.com/21andrewchang/vimgod/config"
	"github.com/21andrewchang/vimgod/drill"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/render"
	"github.com/21andrewchang/vimgod/render/renderers"
	"github.com/21andrewchang/vimgod/store"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

const (
	frameInterval = 50 * time.Millisecond

	// Viewport height for headless runs without max_rows
	headlessRows = 20

	// Virtual time per key in headless replay
	replayStep = 100 * time.Millisecond
)

var (
	configFlag = flag.String("config", "", "Config file (default: config/vimgod.toml when present)")
	drillsFlag = flag.String("drills", "", "Drill pack TOML (default: built-in pack)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/vimgod.log")
	navOnly    = flag.Bool("nav-only", false, "Skip rounds that need insert mode")
	dbFlag     = flag.String("db", "", "Results database path, \"-\" to disable")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vimgod: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app, err := config.LoadAuto(*configFlag)
	if err != nil {
		return err
	}
	app.ApplyEnv(os.Getenv)
	if *debugFlag {
		app.Debug = true
	}
	if *dbFlag != "" {
		app.DBPath = *dbFlag
	}
	if *drillsFlag != "" {
		app.Drills = *drillsFlag
	}

	if logFile := setupLogging(app.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeys(app.Keymap)
	if err != nil {
		return err
	}
	rounds, err := config.LoadDrillsAuto(app.Drills)
	if err != nil {
		return err
	}
	rounds, err = prepareRounds(rounds, app.InsertMode, *navOnly)
	if err != nil {
		return err
	}

	g := newGame(nil, nil)
	if app.DBPath != "" && app.DBPath != "-" {
		results, err := store.Open(app.DBPath)
		if err != nil {
			log.Printf("store: %v (results will not be saved)", err)
		} else {
			defer results.Close()
			g.store = results
		}
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	maxRows := app.MaxRows
	if maxRows == 0 && !interactive {
		maxRows = headlessRows
	}
	sess, err := drill.NewSession(rounds, g.sessionConfig(drill.Config{MaxRows: maxRows, Keys: keys}))
	if err != nil {
		return err
	}

	if !interactive {
		return replay(g, sess, os.Stdin, os.Stdout, time.Now(), replayStep)
	}

	acfg := audio.DefaultConfig()
	acfg.Enabled = app.Audio
	acfg.Volume = app.Volume
	cues := audio.NewCues(acfg)
	if err := cues.Init(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer cues.Close()
		g.cues = cues
	}

	return runTerminal(g, sess, app.MaxRows == 0)
}

// loadKeys merges an optional keymap file over the default key table
func loadKeys(keymapPath string) (*input.KeyTable, error) {
	if keymapPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(keymapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", keymapPath, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keymapPath, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// prepareRounds applies the global insert switches to a drill pack
// Returns drill.ErrNoRounds when nav-only filtering leaves nothing to play
func prepareRounds(rounds []drill.Round, insertAll, navOnly bool) ([]drill.Round, error) {
	out := make([]drill.Round, 0, len(rounds))
	for _, r := range rounds {
		if navOnly {
			if r.InsertMode {
				log.Printf("drill: skipping %q, it needs insert mode", r.Name)
				continue
			}
		} else if insertAll {
			r.InsertMode = true
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no playable rounds: %w", drill.ErrNoRounds)
	}
	return out, nil
}

func runTerminal(g *game, sess *drill.Session, fitRows bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	setCrashScreen(screen)
	defer setCrashScreen(nil)
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	width, height := screen.Size()
	eng := sess.Engine()
	if fitRows {
		eng.SetMaxRows(height - 1)
	}

	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	target := renderers.NewTargetRenderer()
	g.marker = target

	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderers.NewLineNumbersRenderer(), render.PriorityGutter},
		{renderers.NewTextRenderer(), render.PriorityText},
		{renderers.NewSelectionRenderer(), render.PrioritySelection},
		{target, render.PriorityTarget},
		{renderers.NewCursorRenderer(eng), render.PriorityCursor},
		{renderers.NewStatusBarRenderer(), render.PriorityUI},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	g.attach(sess, time.Now())

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	goSafe(func() { pumpEvents(screen.PollEvent, eventChan, done) })

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	draw := func(now time.Time) {
		ctx := render.NewRenderContext(eng, width, height, g.status(now))
		orchestrator.RenderFrame(ctx)
	}
	draw(time.Now())

	for !g.quit {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			now := time.Now()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				g.key(input.FromTcell(ev), now)
			case *tcell.EventResize:
				width, height = ev.Size()
				if fitRows {
					eng.SetMaxRows(height - 1)
				}
				orchestrator.Resize(width, height)
			}
			draw(now)

		case now := <-frameTicker.C:
			g.tick(now)
			draw(now)
		}
	}
	return nil
}

// pumpEvents forwards polled events until polling stops or done closes
// out is closed only when poll reports the screen finished
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
