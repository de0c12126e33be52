package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudX        = 20
	hudY        = 20
	hudLine     = 20
	hudFontSize = 16
	hudWidth    = 300
)

var hints = []string{
	"[LMB] SPAWN / DRAG  [CTRL+LMB] WELL  [RMB] REMOVE WELL",
	"[B] BORDERS  [K] SCREEN CLEAR  [C] CLEAR  [R] REMOVE 250  [W] WELLS  [M] WELL MASS",
	"[UP/DOWN] MASS  [LEFT/RIGHT] TRAIL  [+/-] SPEED  [P] COPY REPORT  [H] HUD  [Q] QUIT",
}

func (a *App) DrawHUD() {
	lines := a.Session.Status()

	rl.DrawRectangle(hudX-10, hudY-10, hudWidth, int32(len(lines)*hudLine+40), ColPanel)
	a.drawText("gravwell", hudX, hudY, 24, ColSelect)

	y := hudY + 34
	for _, line := range lines {
		label, value, _ := strings.Cut(line, ": ")
		a.drawText(label, hudX, y, hudFontSize, ColTextDim)
		a.drawText(value, hudX+130, y, hudFontSize, ColText)
		y += hudLine
	}

	h := int(rl.GetScreenHeight())
	for i, hint := range hints {
		a.drawText(hint, hudX, h-20-(len(hints)-i)*hudLine, 14, ColTextDim)
	}

	if a.messageTTL > 0 {
		w := int(rl.GetScreenWidth())
		a.drawText(a.message, w-260, hudY, hudFontSize, ColAccent)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
