package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/21andrewchang/vimgod/audio"
	"github.com/21andrewchang/vimgod/drill"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/render"
)

// tickWindow is how close to expiry the countdown cue starts
const tickWindow = 3

// cuePlayer is the subset of audio.Cues the game uses
type cuePlayer interface {
	Play(audio.CueType)
}

// resultStore is the subset of store.Results the game uses
type resultStore interface {
	Record(ctx context.Context, res drill.Result) error
	Best(ctx context.Context, round string) (drill.Result, bool, error)
}

// markerToggle is the target marker's visibility switch
type markerToggle interface {
	IsVisible() bool
	SetVisible(bool)
}

// game connects a drill session to persistence, sound and the status line
type game struct {
	sess  *drill.Session
	store resultStore
	cues  cuePlayer

	// marker is nil in headless runs
	marker markerToggle

	message  string
	command  string // last ':' command, applied after the key that entered it
	quit     bool
	lastTick int
}

func newGame(store resultStore, cues cuePlayer) *game {
	return &game{store: store, cues: cues}
}

// attach binds the session; its Config must route OnCommand and OnOutcome here
func (g *game) attach(sess *drill.Session, now time.Time) {
	g.sess = sess
	g.start(now)
}

func (g *game) sessionConfig(cfg drill.Config) drill.Config {
	cfg.OnCommand = g.onCommand
	cfg.OnOutcome = g.onOutcome
	return cfg
}

func (g *game) start(now time.Time) {
	g.sess.Start(now)
	g.message = ""
	g.lastTick = 0
}

// key handles one key event; between rounds it drives the round menu
func (g *game) key(ev *input.KeyEvent, now time.Time) {
	if g.sess.Outcome() != drill.Pending {
		g.menuKey(input.Normalize(ev), now)
		return
	}

	before := g.sess.Keys()
	outcome := g.sess.Key(ev, now)
	if outcome == drill.Pending && g.sess.Keys() == before && input.Normalize(ev).Printable {
		g.play(audio.CueReject)
	}

	if cmd := g.command; cmd != "" {
		g.command = ""
		g.runCommand(cmd, now)
	}
}

func (g *game) menuKey(key input.Key, now time.Time) {
	switch {
	case key.Name == input.KeyEnter || key.Is('n'):
		g.next(now)
	case key.Is('r'):
		g.start(now)
	case key.Is('q') || key.Name == input.KeyEscape:
		g.quit = true
	}
}

func (g *game) next(now time.Time) {
	if g.sess.Next(now) {
		g.message = ""
		g.lastTick = 0
		return
	}
	g.message = fmt.Sprintf("all %d rounds done, %d pts  r: retry  q: quit", g.sess.Len(), g.sess.Total())
}

// tick expires the round on time and plays the countdown
func (g *game) tick(now time.Time) {
	if g.sess.Outcome() != drill.Pending {
		return
	}
	if g.sess.Tick(now) != drill.Pending {
		return
	}

	round, _ := g.sess.Round()
	if round.Budget == 0 {
		return
	}
	secs := int(math.Ceil(g.sess.Remaining(now).Seconds()))
	if secs > 0 && secs <= tickWindow && secs != g.lastTick {
		g.lastTick = secs
		g.play(audio.CueTick)
	}
}

func (g *game) onCommand(cmd string) {
	g.command = cmd
}

func (g *game) runCommand(cmd string, now time.Time) {
	switch cmd {
	case "q", "quit":
		g.quit = true
	case "n", "next":
		g.next(now)
	case "r", "restart":
		g.start(now)
	case "t", "target":
		if g.marker != nil {
			g.marker.SetVisible(!g.marker.IsVisible())
		}
	default:
		if n, err := strconv.Atoi(cmd); err == nil {
			g.sess.Engine().GotoLine(n)
			g.sess.Check(now)
			return
		}
		g.message = "unknown command: " + cmd
	}
}

func (g *game) onOutcome(res drill.Result) {
	switch res.Outcome {
	case drill.Won:
		g.play(audio.CueWin)
		g.message = fmt.Sprintf("won %d pts in %.1fs", res.Score, res.Elapsed.Seconds())
	case drill.Expired:
		g.play(audio.CueExpire)
		g.message = "time's up"
	}

	if g.store != nil {
		ctx := context.Background()
		if err := g.store.Record(ctx, res); err != nil {
			log.Printf("game: %v", err)
		} else if best, ok, err := g.store.Best(ctx, res.Round); err == nil && ok {
			g.message += fmt.Sprintf(" (best %d)", best.Score)
		}
	}
	g.message += "  enter: next  r: retry  q: quit"
}

func (g *game) play(cue audio.CueType) {
	if g.cues != nil {
		g.cues.Play(cue)
	}
}

// status builds the drill line and target marker for the renderers
func (g *game) status(now time.Time) render.RoundStatus {
	round, idx := g.sess.Round()
	st := render.RoundStatus{
		Name:    round.Name,
		Index:   idx + 1,
		Total:   g.sess.Len(),
		Budget:  round.Budget,
		Score:   g.sess.Total(),
		Message: strings.TrimSpace(g.message),
	}
	if g.sess.Outcome() == drill.Pending {
		st.Remaining = g.sess.Remaining(now)
	}

	switch round.Target.Kind {
	case drill.TargetCursor:
		p := round.Target.Cursor
		st.TargetCursor = &p
	case drill.TargetSelection:
		sel := round.Target.Selection
		st.TargetSelection = &sel
	}
	return st
}
