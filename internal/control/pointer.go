package control

// Commands is the subset of the simulation the pointer drives.
type Commands interface {
	SpawnGravityWell(x, y float64)
	TrySelecting(x, y float64) bool
	MoveSelectionTo(x, y float64)
	ReleaseSelection()
	TryRemoving(x, y float64) bool
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type Pointer struct {
	cmds Commands

	x, y     float64
	dragging bool
	spawning bool
}

func NewPointer(cmds Commands) *Pointer {
	return &Pointer{cmds: cmds}
}

func (p *Pointer) Down(button Button, x, y float64, ctrl bool) {
	p.x, p.y = x, y

	switch button {
	case ButtonLeft:
		switch {
		case ctrl:
			p.cmds.SpawnGravityWell(x, y)
		case p.cmds.TrySelecting(x, y):
			p.dragging = true
		default:
			p.spawning = true
		}
	case ButtonRight:
		p.cmds.TryRemoving(x, y)
	}
}

// Move tracks the pointer and drags the selection along with it.
func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
	if p.dragging {
		p.cmds.MoveSelectionTo(x, y)
	}
}

func (p *Pointer) Up(button Button) {
	if button != ButtonLeft {
		return
	}
	p.spawning = false
	if p.dragging {
		p.dragging = false
		p.cmds.ReleaseSelection()
	}
}

func (p *Pointer) Position() (float64, float64) { return p.x, p.y }
func (p *Pointer) Dragging() bool               { return p.dragging }
func (p *Pointer) Spawning() bool               { return p.spawning }
