package scene

import (
	"math"
	"math/rand"
)

// Motion holds the oscillation parameters shared by all nodes.
type Motion struct {
	Amplitude   float64
	SpeedBase   float64
	SpeedJitter float64
}

// Node is one neuron. Base is fixed for the node's lifetime; Pos moves
// around it on every Update.
type Node struct {
	Layer int
	Index int
	Base  Point
	Pos   Point

	PhaseX, PhaseY float64
	Speed          float64
	Amplitude      float64
}

// NewNode draws a random initial phase for each axis and a fixed speed.
func NewNode(layer, index int, base Point, m Motion, rng *rand.Rand) *Node {
	n := &Node{
		Layer:     layer,
		Index:     index,
		Base:      base,
		PhaseX:    rng.Float64() * 2 * math.Pi,
		PhaseY:    rng.Float64() * 2 * math.Pi,
		Speed:     m.SpeedBase + rng.Float64()*m.SpeedJitter,
		Amplitude: m.Amplitude,
	}
	n.place()
	return n
}

// Update advances both phases by the node's speed and recomputes Pos.
func (n *Node) Update() {
	n.PhaseX += n.Speed
	n.PhaseY += n.Speed
	n.place()
}

func (n *Node) place() {
	n.Pos = Point{
		X: n.Base.X + math.Sin(n.PhaseX)*n.Amplitude,
		Y: n.Base.Y + math.Cos(n.PhaseY)*n.Amplitude,
	}
}
