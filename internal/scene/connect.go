package scene

import "math/rand"

// FanOutPolicy selects which next-layer nodes a node connects to.
type FanOutPolicy int

const (
	// FanOutOrdered takes the first candidates in slot order.
	FanOutOrdered FanOutPolicy = iota
	// FanOutRandom shuffles the candidates for every source node.
	FanOutRandom
)

func (p FanOutPolicy) String() string {
	switch p {
	case FanOutOrdered:
		return "ordered"
	case FanOutRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Connection is a directed edge from a node to one in the next layer.
type Connection struct {
	From, To *Node
}

// Connect builds the edge list for nodes. nodes must be grouped by layer in
// ascending slot order, as Build produces them. Each node gets at most
// maxFanOut outgoing edges; nodes of the last layer get none.
func Connect(nodes []*Node, policy FanOutPolicy, maxFanOut int, rng *rand.Rand) []Connection {
	if maxFanOut <= 0 {
		return nil
	}
	byLayer := map[int][]*Node{}
	for _, n := range nodes {
		byLayer[n.Layer] = append(byLayer[n.Layer], n)
	}

	var edges []Connection
	for _, from := range nodes {
		candidates := byLayer[from.Layer+1]
		if len(candidates) == 0 {
			continue
		}
		if policy == FanOutRandom {
			candidates = Shuffle(candidates, rng)
		}
		for _, to := range candidates[:min(maxFanOut, len(candidates))] {
			edges = append(edges, Connection{From: from, To: to})
		}
	}
	return edges
}

// Shuffle returns a shuffled copy of nodes; the input is left untouched.
func Shuffle(nodes []*Node, rng *rand.Rand) []*Node {
	out := append([]*Node(nil), nodes...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
