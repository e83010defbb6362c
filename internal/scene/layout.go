package scene

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewLayers = errors.New("at least two layers are required")
	ErrEmptyLayer   = errors.New("layer must contain at least one node")
	ErrBadViewport  = errors.New("viewport must be positive")
)

// Point is a position in logical (pre-DPR) units.
type Point struct {
	X, Y float64
}

// Padding is a fraction of the viewport reserved on each side.
type Padding struct {
	Horizontal, Vertical float64
}

// Layout computes the base position of every node, indexed [layer][slot].
// Layers are spread evenly across the padded width, and the nodes of a layer
// are spread across the padded height with one slot of margin at each end.
func Layout(width, height float64, pad Padding, layers []int) ([][]Point, error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLayers, len(layers))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrBadViewport, width, height)
	}

	padW := width * pad.Horizontal
	padH := height * pad.Vertical
	availW := width - padW*2
	availH := height - padH*2
	spacing := availW / float64(len(layers)-1)

	out := make([][]Point, len(layers))
	for l, count := range layers {
		if count <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d", ErrEmptyLayer, l, count)
		}
		x := padW + float64(l)*spacing
		slot := availH / float64(count+1)
		col := make([]Point, count)
		for i := range col {
			col[i] = Point{X: x, Y: padH + slot*float64(i+1)}
		}
		out[l] = col
	}
	return out, nil
}
