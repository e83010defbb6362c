// Package scene holds the graph being animated: node layout, node motion,
// and the edges between adjacent layers.
//
// A Scene is built in one step from a viewport size and Params. It is never
// rebuilt in place: a resize produces a new Scene and the caller swaps it in,
// so a frame in progress sees either the old graph or the new one.
package scene

import (
	"fmt"
	"math"
	"math/rand"
)

// Params fixes everything a build needs besides the viewport.
type Params struct {
	Layers    []int
	Padding   Padding
	FanOut    FanOutPolicy
	MaxFanOut int
	Motion    Motion
}

type Scene struct {
	Width, Height float64

	Nodes []*Node
	Edges []Connection

	// Offset drives the animated edge colors; it stays in [0,1).
	Offset float64
}

// Build lays out every node and connects them.
func Build(width, height float64, p Params, rng *rand.Rand) (*Scene, error) {
	positions, err := Layout(width, height, p.Padding, p.Layers)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	nodes := make([]*Node, 0, sum(p.Layers))
	for l, col := range positions {
		for i, base := range col {
			nodes = append(nodes, NewNode(l, i, base, p.Motion, rng))
		}
	}

	return &Scene{
		Width:  width,
		Height: height,
		Nodes:  nodes,
		Edges:  Connect(nodes, p.FanOut, p.MaxFanOut, rng),
	}, nil
}

// Advance moves the color offset forward by step, wrapping into [0,1).
func (s *Scene) Advance(step float64) {
	s.Offset = wrap(s.Offset + step)
}

// UpdateNodes advances every node by one tick.
func (s *Scene) UpdateNodes() {
	for _, n := range s.Nodes {
		n.Update()
	}
}

// OutDegree counts outgoing edges per node.
func (s *Scene) OutDegree() map[*Node]int {
	deg := make(map[*Node]int, len(s.Nodes))
	for _, e := range s.Edges {
		deg[e.From]++
	}
	return deg
}

func wrap(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		return 0
	}
	return v
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
