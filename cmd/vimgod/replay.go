package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/21andrewchang/vimgod/drill"
	"github.com/21andrewchang/vimgod/input"
)

var errKeyScript = errors.New("bad key script")

// scriptKeys maps <name> spellings in key scripts to engine key names
var scriptKeys = map[string]string{
	"esc":      input.KeyEscape,
	"cr":       input.KeyEnter,
	"enter":    input.KeyEnter,
	"bs":       input.KeyBackspace,
	"del":      input.KeyDelete,
	"tab":      input.KeyTab,
	"up":       input.KeyArrowUp,
	"down":     input.KeyArrowDown,
	"left":     input.KeyArrowLeft,
	"right":    input.KeyArrowRight,
	"home":     input.KeyHome,
	"end":      input.KeyEnd,
	"pageup":   input.KeyPageUp,
	"pagedown": input.KeyPageDown,
	"space":    " ",
	"lt":       "<",
}

// parseKeys turns one script line into key events
// Plain runes are typed as-is; <Esc>, <CR>, <C-d> and the like spell
// named keys and control chords, <lt> is a literal '<'
func parseKeys(line string) ([]*input.KeyEvent, error) {
	var out []*input.KeyEvent
	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '<' {
			out = append(out, input.Rune(rs[i]))
			continue
		}

		end := i + 1
		for end < len(rs) && rs[end] != '>' {
			end++
		}
		if end == len(rs) {
			return nil, fmt.Errorf("%w: unclosed < at column %d", errKeyScript, i+1)
		}
		name := string(rs[i+1 : end])
		ev, err := scriptKey(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
		i = end
	}
	return out, nil
}

func scriptKey(name string) (*input.KeyEvent, error) {
	lower := strings.ToLower(name)
	if key, ok := scriptKeys[lower]; ok {
		return input.Named(key), nil
	}
	if rest, ok := strings.CutPrefix(lower, "c-"); ok && len([]rune(rest)) == 1 {
		return &input.KeyEvent{Key: rest, Ctrl: true}, nil
	}
	return nil, fmt.Errorf("%w: unknown key <%s>", errKeyScript, name)
}

// replay plays a key script headlessly, one script line per round
// Each key advances a virtual clock by step. A round still pending at the
// end of its line is run out past its budget. Results go to w
func replay(g *game, sess *drill.Session, r io.Reader, w io.Writer, start time.Time, step time.Duration) error {
	now := start
	g.attach(sess, now)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		keys, err := parseKeys(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		seen := len(g.sess.Results())
		for _, ev := range keys {
			if g.sess.Outcome() != drill.Pending || g.quit {
				break
			}
			now = now.Add(step)
			g.key(ev, now)
		}
		if g.quit {
			break
		}

		round, idx := g.sess.Round()
		if g.sess.Outcome() == drill.Pending && round.Budget > 0 {
			now = now.Add(g.sess.Remaining(now) + step)
			g.tick(now)
		}

		for _, res := range g.sess.Results()[seen:] {
			fmt.Fprintf(w, "%d/%d %-20s %-8s %5d pts %3d keys %6.2fs\n",
				res.Index+1, g.sess.Len(), res.Round, res.Outcome, res.Score, res.Keys, res.Elapsed.Seconds())
		}
		if len(g.sess.Results()) == seen {
			fmt.Fprintf(w, "%d/%d %-20s unfinished\n", idx+1, g.sess.Len(), round.Name)
		}

		if !g.sess.Next(now) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read key script: %w", err)
	}

	fmt.Fprintf(w, "total %d\n", g.sess.Total())
	return nil
}
