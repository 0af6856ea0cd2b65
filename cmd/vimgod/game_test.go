package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/21andrewchang/vimgod/audio"
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/drill"
	"github.com/21andrewchang/vimgod/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeCues struct {
	played []audio.CueType
}

func (f *fakeCues) Play(c audio.CueType) {
	f.played = append(f.played, c)
}

type fakeStore struct {
	records []drill.Result
	err     error
}

func (f *fakeStore) Record(_ context.Context, res drill.Result) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, res)
	return nil
}

func (f *fakeStore) Best(_ context.Context, round string) (drill.Result, bool, error) {
	var best drill.Result
	found := false
	for _, r := range f.records {
		if r.Round == round && r.Outcome == drill.Won && (!found || r.Score > best.Score) {
			best, found = r, true
		}
	}
	return best, found, nil
}

type fakeMarker struct {
	visible bool
}

func (m *fakeMarker) IsVisible() bool   { return m.visible }
func (m *fakeMarker) SetVisible(v bool) { m.visible = v }

func gameRounds() []drill.Round {
	return []drill.Round{
		{
			Name:   "hop",
			Text:   "abc def ghi",
			Target: drill.CursorTarget(core.Position{Row: 0, Col: 8}),
			Budget: 10 * time.Second,
			Par:    2,
		},
		{
			Name:   "lines",
			Text:   "a\nb\nc",
			Target: drill.CursorTarget(core.Position{Row: 2, Col: 0}),
		},
	}
}

func newTestGame(t *testing.T) (*game, *fakeStore, *fakeCues) {
	t.Helper()
	st := &fakeStore{}
	cues := &fakeCues{}
	g := newGame(st, cues)
	sess, err := drill.NewSession(gameRounds(), g.sessionConfig(drill.Config{MaxRows: 10}))
	require.NoError(t, err)
	g.attach(sess, t0)
	return g, st, cues
}

func typeAt(g *game, keys string, at time.Time) {
	for _, r := range keys {
		g.key(input.Rune(r), at)
	}
}

func enter(g *game, at time.Time) {
	g.key(input.Named(input.KeyEnter), at)
}

func command(g *game, cmd string, at time.Time) {
	typeAt(g, ":"+cmd, at)
	enter(g, at)
}

func TestGame_WinRecordsAndCues(t *testing.T) {
	g, st, cues := newTestGame(t)

	typeAt(g, "w", t0.Add(time.Second))
	typeAt(g, "w", t0.Add(2*time.Second))

	require.Equal(t, drill.Won, g.sess.Outcome())
	require.Len(t, st.records, 1)
	assert.Equal(t, 800, st.records[0].Score)
	assert.Equal(t, []audio.CueType{audio.CueWin}, cues.played)
	assert.Contains(t, g.message, "won 800 pts")
	assert.Contains(t, g.message, "(best 800)")
}

func TestGame_MenuAdvancesAndQuits(t *testing.T) {
	g, _, _ := newTestGame(t)
	typeAt(g, "ww", t0.Add(time.Second))

	enter(g, t0.Add(2*time.Second))
	_, idx := g.sess.Round()
	assert.Equal(t, 1, idx)
	assert.Equal(t, drill.Pending, g.sess.Outcome())
	assert.Empty(t, g.message)

	typeAt(g, "jj", t0.Add(3*time.Second))
	require.Equal(t, drill.Won, g.sess.Outcome())

	enter(g, t0.Add(4*time.Second))
	assert.Contains(t, g.message, "all 2 rounds done")
	assert.Contains(t, g.message, "1900 pts")

	typeAt(g, "q", t0.Add(5*time.Second))
	assert.True(t, g.quit)
}

func TestGame_MenuRetry(t *testing.T) {
	g, _, _ := newTestGame(t)
	typeAt(g, "ww", t0.Add(time.Second))
	require.Equal(t, drill.Won, g.sess.Outcome())

	typeAt(g, "r", t0.Add(2*time.Second))
	_, idx := g.sess.Round()
	assert.Equal(t, 0, idx)
	assert.Equal(t, drill.Pending, g.sess.Outcome())
	assert.Equal(t, core.Position{}, g.sess.Engine().Cursor().Pos())
	assert.Empty(t, g.message)
}

func TestGame_Expire(t *testing.T) {
	g, st, cues := newTestGame(t)

	g.tick(t0.Add(11 * time.Second))

	assert.Equal(t, drill.Expired, g.sess.Outcome())
	assert.Equal(t, []audio.CueType{audio.CueExpire}, cues.played)
	require.Len(t, st.records, 1)
	assert.Equal(t, drill.Expired, st.records[0].Outcome)
	assert.Contains(t, g.message, "time's up")
	assert.NotContains(t, g.message, "best")
}

func TestGame_Countdown(t *testing.T) {
	g, _, cues := newTestGame(t)

	for _, ms := range []int{6500, 7200, 7500, 8100, 9050} {
		g.tick(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	assert.Equal(t, []audio.CueType{audio.CueTick, audio.CueTick, audio.CueTick}, cues.played)
}

func TestGame_UntimedRoundHasNoCountdown(t *testing.T) {
	g, _, cues := newTestGame(t)
	command(g, "n", t0)

	g.tick(t0.Add(time.Hour))
	assert.Empty(t, cues.played)
	assert.Equal(t, drill.Pending, g.sess.Outcome())
}

func TestGame_RejectCue(t *testing.T) {
	g, _, cues := newTestGame(t)

	typeAt(g, "Z", t0)
	assert.Equal(t, []audio.CueType{audio.CueReject}, cues.played)

	g.key(input.Named(input.KeyEscape), t0)
	typeAt(g, "l", t0)
	assert.Len(t, cues.played, 1, "named and handled keys stay quiet")
}

func TestGame_Commands(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		g, _, _ := newTestGame(t)
		command(g, "q", t0)
		assert.True(t, g.quit)
	})

	t.Run("next", func(t *testing.T) {
		g, _, _ := newTestGame(t)
		command(g, "next", t0)
		_, idx := g.sess.Round()
		assert.Equal(t, 1, idx)
	})

	t.Run("restart", func(t *testing.T) {
		g, _, _ := newTestGame(t)
		typeAt(g, "w", t0)
		command(g, "r", t0.Add(time.Second))
		assert.Equal(t, core.Position{}, g.sess.Engine().Cursor().Pos())
		assert.Equal(t, 0, g.sess.Keys())
	})

	t.Run("toggle target", func(t *testing.T) {
		g, _, _ := newTestGame(t)
		m := &fakeMarker{visible: true}
		g.marker = m
		command(g, "t", t0)
		assert.False(t, m.visible)
		command(g, "target", t0)
		assert.True(t, m.visible)
	})

	t.Run("unknown", func(t *testing.T) {
		g, _, _ := newTestGame(t)
		command(g, "zz", t0)
		assert.Equal(t, "unknown command: zz", g.message)
	})

	t.Run("goto line wins", func(t *testing.T) {
		g, st, _ := newTestGame(t)
		command(g, "n", t0)
		command(g, "3", t0.Add(time.Second))
		assert.Equal(t, drill.Won, g.sess.Outcome())
		require.Len(t, st.records, 1)
		assert.Equal(t, "lines", st.records[0].Round)
	})
}

func TestGame_StoreErrorKeepsPlaying(t *testing.T) {
	g, st, _ := newTestGame(t)
	st.err = errors.New("disk full")

	typeAt(g, "ww", t0.Add(time.Second))
	assert.Equal(t, drill.Won, g.sess.Outcome())
	assert.Contains(t, g.message, "won")
	assert.NotContains(t, g.message, "best")
}

func TestGame_NilStoreAndCues(t *testing.T) {
	g := newGame(nil, nil)
	sess, err := drill.NewSession(gameRounds(), g.sessionConfig(drill.Config{}))
	require.NoError(t, err)
	g.attach(sess, t0)

	typeAt(g, "Zww", t0.Add(time.Second))
	assert.Equal(t, drill.Won, g.sess.Outcome())
}

func TestGame_Status(t *testing.T) {
	g, _, _ := newTestGame(t)

	st := g.status(t0.Add(time.Second))
	assert.Equal(t, "hop", st.Name)
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 9*time.Second, st.Remaining)
	assert.Equal(t, 10*time.Second, st.Budget)
	require.NotNil(t, st.TargetCursor)
	assert.Equal(t, core.Position{Row: 0, Col: 8}, *st.TargetCursor)
	assert.Nil(t, st.TargetSelection)

	typeAt(g, "ww", t0.Add(2*time.Second))
	st = g.status(t0.Add(3 * time.Second))
	assert.Zero(t, st.Remaining)
	assert.Equal(t, 800, st.Score)
	assert.NotEmpty(t, st.Message)
}

func TestGame_StatusSelectionTarget(t *testing.T) {
	g := newGame(nil, nil)
	rounds := []drill.Round{{
		Name:   "sel",
		Text:   "a\nb",
		Target: drill.SelectionTarget(core.LineSelection(0, 1)),
	}}
	sess, err := drill.NewSession(rounds, g.sessionConfig(drill.Config{}))
	require.NoError(t, err)
	g.attach(sess, t0)

	st := g.status(t0)
	assert.Nil(t, st.TargetCursor)
	require.NotNil(t, st.TargetSelection)
	assert.Equal(t, core.LineSelection(0, 1), *st.TargetSelection)
}
