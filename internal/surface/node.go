package surface

// MinDepth is the depth up to which the outline is always subdivided,
// regardless of screen error.
const MinDepth = 3

// MaxDepth bounds every descent so denominators stay exact.
const MaxDepth = 30

// Node is the interval [N/D, (N+1)/D) of the circle together with the samples
// at both ends. Stop of the last interval is the root sample again.
type Node struct {
	N, D  uint64
	Depth int
	Start Sample
	Stop  Sample
}

// Root describes the whole circle. The root has no neighbours, so it is drawn
// with zero entropies and then stands in for both of its own neighbours.
func Root(desc Describer) Node {
	s := desc.Describe(0, 1, 0, 0, 0)
	return Node{N: 0, D: 1, Start: s, Stop: s}
}

// Split halves the interval. The midpoint is described once and becomes the
// Stop of the left child and the Start of the right child.
func (nd Node) Split(desc Describer) (left, right Node) {
	mid := desc.Describe(2*nd.N+1, 2*nd.D, nd.Start.Entropy, nd.Stop.Entropy, nd.Depth+1)
	left = Node{N: 2 * nd.N, D: 2 * nd.D, Depth: nd.Depth + 1, Start: nd.Start, Stop: mid}
	right = Node{N: 2*nd.N + 1, D: 2 * nd.D, Depth: nd.Depth + 1, Start: mid, Stop: nd.Stop}
	return left, right
}

// StartFrac is the position of the interval start as a fraction of a turn.
func (nd Node) StartFrac() float64 { return float64(nd.N) / float64(nd.D) }

// StopFrac is the position of the interval end as a fraction of a turn.
func (nd Node) StopFrac() float64 { return float64(nd.N+1) / float64(nd.D) }
