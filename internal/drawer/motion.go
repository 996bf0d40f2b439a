package drawer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// FrameRate is the default number of spring steps per second.
const FrameRate = 60

// SpringConfig describes a damped spring with unit mass.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
}

var (
	// SnapBack returns a released sheet to rest with a slight bounce.
	SnapBack = SpringConfig{Stiffness: 440, Damping: 30}
	// SheetEntry slides the sheet in from below and back out.
	SheetEntry = SpringConfig{Stiffness: 400, Damping: 36}
	// PanelEntry slides the panel in from the right and back out.
	PanelEntry = SpringConfig{Stiffness: 300, Damping: 40}
)

// AngularFrequency is sqrt(k/m) with m = 1.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness)
}

// DampingRatio is c / (2*sqrt(k*m)) with m = 1.
func (c SpringConfig) DampingRatio() float64 {
	if c.Stiffness <= 0 {
		return 1
	}
	return c.Damping / (2 * math.Sqrt(c.Stiffness))
}

// Motion is a single animated value driven by a harmonica spring. The host
// advances it once per frame with Step.
type Motion struct {
	// Rest is the distance and speed under which the value snaps to target.
	Rest float64

	pos, vel, target float64
	spring           harmonica.Spring
	animating        bool
}

// NewMotion returns a motion at rest at zero.
func NewMotion(cfg SpringConfig, fps int) Motion {
	if fps <= 0 {
		fps = FrameRate
	}
	return Motion{
		Rest:   0.5,
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
	}
}

// Set jumps to v and stops any animation.
func (m *Motion) Set(v float64) {
	m.pos = v
	m.vel = 0
	m.target = v
	m.animating = false
}

// AnimateTo springs from the current value towards target, starting with
// the given velocity in units per second.
func (m *Motion) AnimateTo(target, velocity float64) {
	m.target = target
	m.vel = velocity
	m.animating = true
}

// Step advances one frame and reports whether the motion is still moving.
func (m *Motion) Step() bool {
	if !m.animating {
		return false
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < m.Rest && math.Abs(m.vel) < m.Rest {
		m.pos = m.target
		m.vel = 0
		m.animating = false
	}
	return m.animating
}

func (m Motion) Value() float64 {
	return m.pos
}

func (m Motion) Velocity() float64 {
	return m.vel
}

func (m Motion) Animating() bool {
	return m.animating
}
