package gui

import (
	"log"

	"github.com/atotto/clipboard"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravwell/internal/control"
	"github.com/san-kum/gravwell/internal/loop"
)

var keyActions = []struct {
	keys   []int32
	action loop.Action
}{
	{[]int32{rl.KeyB}, loop.ActionToggleBorders},
	{[]int32{rl.KeyK}, loop.ActionToggleClearScreen},
	{[]int32{rl.KeyM}, loop.ActionToggleWellMass},
	{[]int32{rl.KeyC}, loop.ActionClearParticles},
	{[]int32{rl.KeyR}, loop.ActionRemoveSome},
	{[]int32{rl.KeyW}, loop.ActionRemoveWells},
	{[]int32{rl.KeyUp}, loop.ActionMassUp},
	{[]int32{rl.KeyDown}, loop.ActionMassDown},
	{[]int32{rl.KeyRight}, loop.ActionTrailUp},
	{[]int32{rl.KeyLeft}, loop.ActionTrailDown},
	{[]int32{rl.KeyEqual, rl.KeyKpAdd}, loop.ActionSpeedUp},
	{[]int32{rl.KeyMinus, rl.KeyKpSubtract}, loop.ActionSpeedDown},
}

func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.copyReport()
	}

	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if rl.IsKeyPressed(k) {
				a.Session.Do(ka.action)
				a.flash(ka.action.String())
				break
			}
		}
	}

	a.handlePointer()
}

func (a *App) handlePointer() {
	p := a.Session.Pointer
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	p.Move(x, y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.Down(control.ButtonLeft, x, y, ctrl)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		p.Down(control.ButtonRight, x, y, ctrl)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		p.Up(control.ButtonLeft)
	}
}

func (a *App) copyReport() {
	if err := clipboard.WriteAll(a.Session.Report()); err != nil {
		log.Printf("gui: clipboard: %v", err)
		a.flash("clipboard unavailable")
		return
	}
	a.flash("report copied")
}
