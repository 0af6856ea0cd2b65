package render

import (
	"github.com/gdamore/tcell/v2"
)

var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText        = tcell.NewRGBColor(192, 202, 245) // Foreground
	RgbLineNumbers = tcell.NewRGBColor(90, 95, 130)
	RgbLineCurrent = tcell.NewRGBColor(255, 165, 0)

	RgbCursorNormal = tcell.NewRGBColor(255, 165, 0)   // Orange for normal mode
	RgbCursorInsert = tcell.NewRGBColor(255, 255, 255) // Bright white for insert mode
	RgbSelection    = tcell.NewRGBColor(55, 65, 110)
	RgbTarget       = tcell.NewRGBColor(0, 130, 0)
	RgbTargetRange  = tcell.NewRGBColor(0, 60, 0)

	RgbStatusBar     = tcell.NewRGBColor(36, 40, 59)
	RgbStatusText    = tcell.NewRGBColor(255, 255, 255)
	RgbPending       = tcell.NewRGBColor(255, 220, 0)
	RgbModeNormalBg  = tcell.NewRGBColor(122, 162, 247)
	RgbModeInsertBg  = tcell.NewRGBColor(158, 206, 106)
	RgbModeVisualBg  = tcell.NewRGBColor(187, 154, 247)
	RgbModeCommandBg = tcell.NewRGBColor(224, 175, 104)
	RgbTimerOk       = tcell.NewRGBColor(158, 206, 106)
	RgbTimerLow      = tcell.NewRGBColor(247, 118, 142)
)

// DefaultStyle is the base style for every cell
var DefaultStyle = tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground)
