package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/parameter"
)

// drawStatusBar fills the two HUD rows below the view
// Row 1: power meter, phase, pose. Row 2: arrows in flight, totals, position, pause banner
func (r *TerminalRenderer) drawStatusBar(f Frame) {
	if r.height < parameter.HUDRows {
		return
	}
	bg := tcell.StyleDefault.Background(RgbStatusBg.Color())
	text := bg.Foreground(RgbStatusBar.Color())
	dim := bg.Foreground(RgbDim.Color())

	top := r.height - parameter.HUDRows
	for y := top; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	// Power meter
	rep := f.Report
	x := r.drawText(0, top, "POWER ", dim)
	x = r.drawPowerBar(x, top, rep.Power, bg)
	x = r.drawText(x, top, fmt.Sprintf(" %3.0f ", rep.Power), text)

	phaseStyle := text
	if rep.Phase == bow.PhaseDeferred {
		phaseStyle = bg.Foreground(RgbPhaseDeferred.Color())
	}
	x = r.drawText(x, top, fmt.Sprintf(" %-11s", rep.Phase), phaseStyle)
	x = r.drawText(x, top, fmt.Sprintf(" string %5.2f bend %4.2f ", rep.Pose.StringOffset, rep.Pose.LimbBend), dim)
	if rep.Pose.NockVisible {
		r.drawText(x, top, string(parameter.NockChar), text)
	}

	// Totals
	row := top + 1
	x = 0
	if f.Pool != nil {
		x = r.drawText(x, row, fmt.Sprintf("ARROWS %d/%d ", f.Pool.Len(), f.Pool.Capacity()), text)
	}
	s := f.Stats
	x = r.drawText(x, row, fmt.Sprintf(" shots %d  false %d  cancel %d  expired %d  displaced %d ",
		s.Shots, s.FalseStarts, s.Cancels, s.Expired, s.Displaced), dim)
	if f.Camera != nil {
		deg := f.Camera.Yaw * 180 / math.Pi
		r.drawText(x, row, fmt.Sprintf(" pos %.0f,%.0f  yaw %.0f°", f.Camera.Position.X, f.Camera.Position.Z, deg), dim)
	}

	if f.Paused {
		banner := parameter.PausedText
		r.drawText(r.width-len(banner), row, banner, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(RgbPaused.Color()))
	}
}

// drawPowerBar draws the draw meter; cells turn ready once power clears the fire threshold
func (r *TerminalRenderer) drawPowerBar(x, y int, power float64, bg tcell.Style) int {
	width := parameter.PowerBarWidth
	filled := int(math.Round(power / parameter.MaxDrawPower * float64(width)))
	filled = max(0, min(filled, width))

	fill := RgbPowerLow
	if power > parameter.MinFirePower {
		fill = RgbPowerReady
	}
	for i := 0; i < width && x+i < r.width; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, parameter.PowerFullChar, nil, bg.Foreground(fill.Color()))
		} else {
			r.screen.SetContent(x+i, y, parameter.PowerEmptyChar, nil, bg.Foreground(RgbPowerEmpty.Color()))
		}
	}
	return x + width
}

// drawText writes s from x, clipped to the screen, and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
