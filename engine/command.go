package engine

import (
	"strings"

	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
)

// commandHandler edits the ':' command line
type commandHandler struct {
	e *Engine
}

func (h *commandHandler) HandleKey(key input.Key) bool {
	e := h.e
	switch {
	case key.Name == input.KeyEnter:
		cmd := strings.TrimSpace(string(e.commandBuffer))
		if cmd != "" && e.cfg.OnCommand != nil {
			e.cfg.OnCommand(cmd)
		}
		e.commandBuffer = e.commandBuffer[:0]
		e.restCursor()
		e.setMode(core.ModeNormal)
		return true

	case key.Name == input.KeyBackspace:
		if n := len(e.commandBuffer); n > 0 {
			e.commandBuffer = e.commandBuffer[:n-1]
		}
		return true

	case key.Printable:
		e.commandBuffer = append(e.commandBuffer, key.Rune)
		return true
	}
	return false
}
