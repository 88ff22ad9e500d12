package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// Minimum terminal size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 14
	hudRows    = 2
)

// Glyph returns the rune and color used to draw a litter type.
func (t TrashType) Glyph() (rune, core.Color) {
	switch t {
	case TrashPaper:
		return '■', core.ColorBrightBlue
	case TrashPlastic:
		return '▲', core.ColorOrange
	case TrashGlass:
		return '◆', core.ColorBrightGreen
	case TrashOrganic:
		return '●', core.ColorRed
	case TrashMixed:
		return '▪', core.ColorGray
	default:
		return '★', core.ColorBrightYellow
	}
}

// viewport maps world coordinates onto the terminal grid below the HUD.
type viewport struct {
	cols, rows int
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := int(p.X / FieldW * float64(v.cols))
	y := hudRows + int((p.Y-HUDHeight)/(FieldH-HUDHeight)*float64(v.rows))
	return core.Clamp(x, 0, v.cols-1), core.Clamp(y, hudRows, hudRows+v.rows-1)
}

func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.cell(b.Pos)
	x1, y1 := v.cell(b.Pos.Add(core.V(b.W, b.H)))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the snapshot into dst.
func (snap *Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	v := viewport{cols: dst.Width(), rows: dst.Height() - hudRows}

	for _, o := range snap.Obstacles {
		r := v.rect(o.Box)
		if o.Kind == ObstacleTree {
			dst.DrawRect(r, '♣', core.ColorGreen)
		} else {
			dst.DrawRect(r, '▒', core.ColorGreen)
		}
	}

	for _, b := range snap.Bins {
		r := v.rect(b.Box)
		_, color := b.Type.Glyph()
		dst.DrawRect(r, '█', color)
		label := strings.ToUpper(b.Type.String()[:1])
		dst.DrawTextColored(r.X+r.W/2, r.Y+r.H/2, label, core.ColorBrightWhite)
	}

	for _, t := range snap.Litter {
		x, y := v.cell(t.Pos)
		r, color := t.Type.Glyph()
		if t.Hostile && !t.Fleeing {
			color = core.ColorBrightRed
		}
		dst.SetColored(x, y, r, color)
	}

	for _, n := range snap.NPCs {
		x, y := v.cell(n.Pos)
		if n.Stun > 0 {
			dst.SetColored(x, y, 'z', core.ColorGray)
		} else {
			dst.SetColored(x, y, n.Glyph, core.ColorMagenta)
		}
	}

	px, py := v.cell(snap.Player.Pos)
	if snap.Player.Stun > 0 {
		dst.SetColored(px, py, '✶', core.ColorYellow)
	} else {
		dst.SetColored(px, py, playerGlyph(snap.Player.Facing), core.ColorBrightCyan)
	}

	snap.drawHUD(dst)

	switch {
	case snap.Over:
		drawCenteredMessage(dst, "TIME'S UP", fmt.Sprintf("Score: %d  |  R to restart, Esc for menu", snap.Score), core.ColorBrightYellow)
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case snap.AnnouncementVisible():
		drawCenteredMessage(dst, snap.Announcement, snap.Phase.String(), core.ColorBrightRed)
	}
}

func playerGlyph(f Facing) rune {
	switch f {
	case FacingUp:
		return '▲'
	case FacingLeft:
		return '◄'
	case FacingRight:
		return '►'
	default:
		return '▼'
	}
}

func (snap *Snapshot) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	top := fmt.Sprintf(" %s  Score: %d  Time: %s  Phase: %s  Litter: %d",
		snap.City, snap.Score, FormatClock(snap.Remaining), snap.Phase, len(snap.Litter))
	dst.DrawTextColored(0, 0, top, core.ColorBrightWhite)

	x := 1
	dst.DrawText(x, 1, "Bag:")
	x += 5
	for i := range snap.Capacity {
		if i < len(snap.Player.Carrying) {
			r, c := snap.Player.Carrying[i].Glyph()
			dst.SetColored(x, 1, r, c)
		} else {
			dst.SetColored(x, 1, '·', core.ColorGray)
		}
		x++
	}
	x += 2

	if snap.HasShield {
		status := cooldownLabel("Shield", snap.Player.ShieldCooldown)
		dst.DrawTextColored(x, 1, status, core.ColorCyan)
		x += len(status) + 2
	}
	if snap.HasWeapon {
		status := cooldownLabel("Taser", snap.Player.WeaponCooldown)
		dst.DrawTextColored(x, 1, status, core.ColorYellow)
		x += len(status) + 2
	}
	if snap.Player.Stun > 0 {
		dst.DrawTextColored(x, 1, "STUNNED", core.ColorBrightRed)
	}
}

func cooldownLabel(name string, ticks int) string {
	if ticks <= 0 {
		return name + ": ready"
	}
	return fmt.Sprintf("%s: %ds", name, (ticks+DefaultTicksPerSec-1)/DefaultTicksPerSec)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// Render draws the current session state into dst.
func (s *Session) Render(dst *core.Screen) {
	snap := s.Snapshot()
	snap.Render(dst)
}
