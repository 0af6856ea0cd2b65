package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/21andrewchang/vimgod/drill"
	"github.com/21andrewchang/vimgod/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		script string
		want   []*input.KeyEvent
	}{
		{"dw", []*input.KeyEvent{input.Rune('d'), input.Rune('w')}},
		{"<Esc>", []*input.KeyEvent{input.Named(input.KeyEscape)}},
		{"ix<CR>", []*input.KeyEvent{input.Rune('i'), input.Rune('x'), input.Named(input.KeyEnter)}},
		{"f<lt>", []*input.KeyEvent{input.Rune('f'), input.Rune('<')}},
		{"<space><BS>", []*input.KeyEvent{input.Rune(' '), input.Named(input.KeyBackspace)}},
		{"<C-d>", []*input.KeyEvent{{Key: "d", Ctrl: true}}},
		{"<PageDown>", []*input.KeyEvent{input.Named(input.KeyPageDown)}},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := parseKeys(tt.script)
		require.NoError(t, err, tt.script)
		assert.Equal(t, tt.want, got, tt.script)
	}
}

func TestParseKeys_Errors(t *testing.T) {
	for _, script := range []string{"<Esc", "a<nope>", "<C-dd>"} {
		_, err := parseKeys(script)
		assert.ErrorIs(t, err, errKeyScript, script)
	}
}

func newReplaySession(t *testing.T, g *game) *drill.Session {
	t.Helper()
	sess, err := drill.NewSession(gameRounds(), g.sessionConfig(drill.Config{MaxRows: 10}))
	require.NoError(t, err)
	return sess
}

func TestReplay_WinsEveryRound(t *testing.T) {
	st := &fakeStore{}
	g := newGame(st, nil)
	var out bytes.Buffer

	err := replay(g, newReplaySession(t, g), strings.NewReader("ww\njj\n"), &out, t0, 100*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1/2 hop")
	assert.Contains(t, lines[0], "won")
	assert.Contains(t, lines[0], "980 pts")
	assert.Contains(t, lines[1], "2/2 lines")
	assert.Contains(t, lines[1], "1000 pts")
	assert.Equal(t, "total 1980", lines[2])
	assert.Len(t, st.records, 2)
}

func TestReplay_ExpiresAndUnfinished(t *testing.T) {
	g := newGame(nil, nil)
	var out bytes.Buffer

	err := replay(g, newReplaySession(t, g), strings.NewReader("j\nl\n"), &out, t0, 100*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "expired")
	assert.Contains(t, lines[1], "unfinished")
	assert.Equal(t, "total 0", lines[2])
}

func TestReplay_QuitCommand(t *testing.T) {
	g := newGame(nil, nil)
	var out bytes.Buffer

	err := replay(g, newReplaySession(t, g), strings.NewReader(":q<CR>\njj\n"), &out, t0, 100*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, g.quit)
	assert.Equal(t, "total 0\n", out.String())
}

func TestReplay_BadScript(t *testing.T) {
	g := newGame(nil, nil)
	var out bytes.Buffer

	err := replay(g, newReplaySession(t, g), strings.NewReader("w\n<nope>\n"), &out, t0, 100*time.Millisecond)
	assert.ErrorIs(t, err, errKeyScript)
	assert.Contains(t, err.Error(), "line 2")
}

func TestPrepareRounds(t *testing.T) {
	rounds := []drill.Round{
		{Name: "nav"},
		{Name: "edit", InsertMode: true},
	}

	got, err := prepareRounds(rounds, false, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "nav", got[0].Name)

	got, err = prepareRounds(rounds, true, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].InsertMode)
	assert.True(t, got[1].InsertMode)
	assert.False(t, rounds[0].InsertMode, "input untouched")

	got, err = prepareRounds(rounds, false, false)
	require.NoError(t, err)
	assert.Equal(t, rounds, got)
}

func TestPrepareRounds_NavOnlyLeavesNothing(t *testing.T) {
	_, err := prepareRounds([]drill.Round{{Name: "edit", InsertMode: true}}, false, true)
	assert.ErrorIs(t, err, drill.ErrNoRounds)
}

func TestLoadKeys(t *testing.T) {
	kt, err := loadKeys("")
	require.NoError(t, err)
	assert.Nil(t, kt)

	_, err = loadKeys(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[normal]\nH = \"motion_line_start\"\n"), 0644))
	kt, err = loadKeys(path)
	require.NoError(t, err)
	assert.Equal(t, input.MotionLineStart, kt.NormalRunes['H'].Motion)
	assert.Equal(t, input.DefaultKeyTable().NormalRunes['w'], kt.NormalRunes['w'], "defaults kept")
}
