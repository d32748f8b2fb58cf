package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-whackamole/internal/core"
	"github.com/vovakirdan/tui-whackamole/internal/host"
)

// Board layout constants
const (
	holeW    = 11
	holeH    = 5
	gapX     = 2
	gapY     = 1
	gridCols = 3
	hudRows  = 3 // Title, stats, blank line
	footRows = 2 // Blank line, status message
)

// Visual faces for a hole's content
const (
	moleFace    = "(•ᴥ•)"
	whackedFace = "(x_x)"
	dirt        = "_______"
)

// Layout is the on-screen position of every hole.
type Layout struct {
	Holes      []core.Rect
	MessageRow int
	TooSmall   bool
}

// NewLayout arranges holes in rows of three, centered on the screen.
func NewLayout(screenW, screenH, holes int) Layout {
	if holes <= 0 {
		return Layout{MessageRow: core.Max(screenH-1, 0)}
	}

	cols := core.Min(gridCols, holes)
	rows := (holes + cols - 1) / cols
	gridW := cols*holeW + (cols-1)*gapX

	// Rows touch when the gapped grid does not fit
	rowGap := gapY
	if screenH < hudRows+rows*holeH+(rows-1)*rowGap+footRows {
		rowGap = 0
	}
	gridH := rows*holeH + (rows-1)*rowGap

	l := Layout{Holes: make([]core.Rect, holes)}
	if screenW < gridW || screenH < hudRows+gridH+footRows {
		l.TooSmall = true
	}

	originX := core.Max((screenW-gridW)/2, 0)
	originY := hudRows + core.Max((screenH-hudRows-footRows-gridH)/2, 0)
	for i := range holes {
		col, row := i%cols, i/cols
		l.Holes[i] = core.NewRect(
			originX+col*(holeW+gapX),
			originY+row*(holeH+rowGap),
			holeW, holeH,
		)
	}
	l.MessageRow = originY + gridH + 1
	return l
}

// HoleAt returns the index of the hole containing screen position (x, y), or -1.
func (l Layout) HoleAt(x, y int) int {
	for i, r := range l.Holes {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// boardStatus is what the board shows besides the document itself.
type boardStatus struct {
	Difficulty string
	Running    bool
	Played     bool // At least one session has ended
	Score      int
	Misses     int
	Err        error
}

// drawBoard renders the document's displays and holes into dst.
func drawBoard(dst *core.Screen, doc *host.Document, l Layout, st boardStatus) {
	dst.Clear()

	if l.TooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small - please resize", core.ColorRed)
		return
	}

	dst.DrawTextCentered(0, "W H A C K - A - M O L E", core.ColorYellow)
	stats := fmt.Sprintf("Score: %s    Time: %s    Difficulty: %s",
		displayText(doc, host.ScoreID), displayText(doc, host.TimerID), st.Difficulty)
	dst.DrawTextCentered(1, stats, core.ColorBrightWhite)

	for i, hole := range doc.QuerySelectorAll("." + host.HoleClass) {
		if i >= len(l.Holes) {
			break
		}
		drawHole(dst, l.Holes[i], i, hole)
	}

	switch {
	case st.Err != nil:
		dst.DrawTextCentered(l.MessageRow, "Error: "+st.Err.Error(), core.ColorRed)
	case st.Running:
		// Board speaks for itself
	case st.Played:
		msg := fmt.Sprintf("GAME OVER  Score: %d  Misses: %d  |  Press S to play again", st.Score, st.Misses)
		dst.DrawTextCentered(l.MessageRow, msg, core.ColorCyan)
	default:
		dst.DrawTextCentered(l.MessageRow, "Press S to start", core.ColorCyan)
	}
}

// drawHole draws one hole box, its key label and its content.
func drawHole(dst *core.Screen, r core.Rect, i int, hole *host.Element) {
	dst.DrawBox(r, core.ColorBrown)
	if i < 9 {
		dst.SetColored(r.X+1, r.Y, rune('1'+i), core.ColorGray)
	}

	cx := r.X + (r.W-len([]rune(moleFace)))/2
	switch {
	case hole.HasClass(host.ShowClass) && hole.HasClass(host.WhackedClass):
		dst.DrawTextColored(cx, r.Y+2, whackedFace, core.ColorRed)
	case hole.HasClass(host.ShowClass):
		dst.DrawTextColored(cx, r.Y+2, moleFace, core.ColorGreen)
	}
	dx := r.X + (r.W-len(dirt))/2
	dst.DrawTextColored(dx, r.Y+3, dirt, core.ColorBrown)
}

// displayText returns a display element's text, or "-" if the page lacks it.
func displayText(doc *host.Document, id string) string {
	el := doc.QuerySelector("#" + id)
	if el == nil {
		return "-"
	}
	if el.Text() == "" {
		return strconv.Itoa(0)
	}
	return el.Text()
}
