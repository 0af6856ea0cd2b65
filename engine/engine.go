package engine

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/mode"
)

// Config holds construction options for an Engine
type Config struct {
	InitialText string

	// MaxRows is the viewport height used by ViewBase and half-page motions
	MaxRows int

	// InsertModeEnabled gates the insert family (i I a A o O)
	InsertModeEnabled bool

	// Keys overrides the default key table when non-nil
	Keys *input.KeyTable

	// Observers, invoked synchronously after the state they report is committed
	OnModeChange    func(core.Mode)
	OnUiStateChange func(UiState)
	OnCommand       func(string)
}

// UiState is the pending-input state shown by the host
// PendingCount is 0 when no count is being typed
type UiState struct {
	PendingCombo  string
	PendingCount  int
	CommandBuffer string
}

// Engine is a modal editor over one buffer
// It is single-threaded: every change happens inside HandleKeyDown or ResetDocument
type Engine struct {
	cfg  Config
	keys *input.KeyTable

	buf     *core.Buffer
	cursor  core.Cursor
	current core.Mode

	handlers [core.ModeCount]modeHandler

	pending       pending
	commandBuffer []rune
	lastSearch    mode.Search

	// Selection anchors; lineAnchor is -1 outside line mode
	lineAnchor int
	charAnchor core.Position
	selection  *core.Selection

	lastUi UiState
}

// New creates an engine in normal mode with the cursor at (0,0)
func New(cfg Config) *Engine {
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	e := &Engine{
		cfg:           cfg,
		keys:          keys,
		buf:           core.NewBuffer(cfg.InitialText),
		cursor:        core.NewCursor(core.Position{}),
		current:       core.ModeNormal,
		lineAnchor:    -1,
		commandBuffer: make([]rune, 0, 16),
	}
	e.handlers = [core.ModeCount]modeHandler{
		core.ModeNormal:  &normalHandler{e: e},
		core.ModeInsert:  &insertHandler{e: e},
		core.ModeVisual:  &selectHandler{e: e, kind: core.ModeVisual},
		core.ModeLine:    &selectHandler{e: e, kind: core.ModeLine},
		core.ModeCommand: &commandHandler{e: e},
	}
	return e
}

// Lines returns a snapshot of the buffer lines
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Buffer exposes the buffer for read-only rendering
func (e *Engine) Buffer() *core.Buffer {
	return e.buf
}

// Cursor returns the cursor including its goal column
func (e *Engine) Cursor() core.Cursor {
	return e.cursor
}

// Mode returns the active mode
func (e *Engine) Mode() core.Mode {
	return e.current
}

// MaxRows returns the configured viewport height
func (e *Engine) MaxRows() int {
	return e.cfg.MaxRows
}

// UiState returns the pending combo, count and command buffer
func (e *Engine) UiState() UiState {
	return UiState{
		PendingCombo:  string(e.pending.combo),
		PendingCount:  e.pending.count,
		CommandBuffer: string(e.commandBuffer),
	}
}

// Selection returns the active selection, if any
func (e *Engine) Selection() (core.Selection, bool) {
	if e.selection == nil {
		return core.Selection{}, false
	}
	return *e.selection, true
}

// VisualLineStart returns the line-mode anchor row, if any
func (e *Engine) VisualLineStart() (int, bool) {
	return e.lineAnchor, e.lineAnchor >= 0
}

// ViewBase returns the first visible row for a MaxRows-high viewport,
// centering the cursor row
func (e *Engine) ViewBase() int {
	rows := max(e.cfg.MaxRows, 1)
	maxBase := max(0, e.buf.LineCount()-rows)
	return min(max(e.cursor.Row-rows/2, 0), maxBase)
}

// ResetDocument replaces the buffer and returns to normal mode at (0,0)
func (e *Engine) ResetDocument(text string) {
	e.ResetDocumentAt(text, core.Position{})
}

// ResetDocumentAt replaces the buffer, clears all pending and selection
// state, and places the cursor at p (clamped)
func (e *Engine) ResetDocumentAt(text string, p core.Position) {
	e.buf.Reset(text)
	e.cursor = core.NewCursor(e.buf.Clamp(p, false))
	e.pending.reset()
	e.commandBuffer = e.commandBuffer[:0]
	e.clearSelection()
	e.setMode(core.ModeNormal)
	e.notifyUiState()
}

// SetInsertModeEnabled changes the insert gate; disabling it while
// inserting returns to normal mode
func (e *Engine) SetInsertModeEnabled(enabled bool) {
	e.cfg.InsertModeEnabled = enabled
	if !enabled && e.current == core.ModeInsert {
		e.toNormal()
		e.notifyUiState()
	}
}

// SetMaxRows changes the viewport height, e.g. after a terminal resize
func (e *Engine) SetMaxRows(rows int) {
	e.cfg.MaxRows = max(rows, 0)
}

// GotoLine moves the cursor to a 1-based line, keeping the goal column
// Used by hosts that parse ":N" commands
func (e *Engine) GotoLine(n int) {
	mode.OpMove(&e.cursor, mode.MotionFileStart(e.motionContext(), e.cursor, max(n, 1)))
	e.cursor.Col = e.buf.ClampCol(e.cursor.Row, e.cursor.Col, e.current == core.ModeInsert)
	e.syncSelection()
}

func (e *Engine) motionContext() *mode.Context {
	return &mode.Context{
		Buf:      e.buf,
		HalfPage: max(1, e.cfg.MaxRows/2),
		PastEnd:  e.current == core.ModeInsert,
	}
}

func (e *Engine) setMode(m core.Mode) {
	if e.current == m {
		return
	}
	e.current = m
	if e.cfg.OnModeChange != nil {
		e.cfg.OnModeChange(m)
	}
}

func (e *Engine) notifyUiState() {
	ui := e.UiState()
	if ui == e.lastUi {
		return
	}
	e.lastUi = ui
	if e.cfg.OnUiStateChange != nil {
		e.cfg.OnUiStateChange(ui)
	}
}

// restCursor pulls the cursor back onto a character
func (e *Engine) restCursor() {
	e.cursor.Row = e.buf.ClampRow(e.cursor.Row)
	e.cursor.Col = e.buf.ClampCol(e.cursor.Row, e.cursor.Col, false)
}

// toNormal leaves any mode for normal, dropping selection and pending input
func (e *Engine) toNormal() {
	e.pending.reset()
	e.commandBuffer = e.commandBuffer[:0]
	e.clearSelection()
	e.restCursor()
	e.setMode(core.ModeNormal)
}

// afterDelete rests the cursor at p and forces normal mode
func (e *Engine) afterDelete(p core.Position) {
	e.cursor = core.Cursor{Row: p.Row, Col: p.Col, GoalCol: p.Col}
	e.toNormal()
}
