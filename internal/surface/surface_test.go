package surface

import (
	"math"
	"testing"

	"orbit-lod/pkg/core"
)

func newTestField(seed core.Seed) *Field {
	return NewField(seed, new(core.State), 500, 1000)
}

func TestIndexWordsGolden(t *testing.T) {
	cases := []struct {
		n, d uint64
		want [4]uint32
	}{
		{0, 1, [4]uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}},
		{1, 2, [4]uint32{0x80000000, 0xff800000, 0xffff8000, 0xffffff80}},
		{1, 4, [4]uint32{0xc0000000, 0xffc00000, 0xffffc000, 0xffffffc0}},
		{3, 4, [4]uint32{0x40000000, 0x00400000, 0x00004000, 0x00000040}},
		{5, 8, [4]uint32{0x60000000, 0x00600000, 0x00006000, 0x00000060}},
	}
	for _, tc := range cases {
		if got := IndexWords(tc.n, tc.d); got != tc.want {
			t.Fatalf("IndexWords(%d, %d) = %#x, want %#x", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestDescribeGolden(t *testing.T) {
	f := newTestField(core.ZeroSeed())

	root := f.Describe(0, 1, 0, 0, 0)
	mid := f.Describe(1, 2, root.Entropy, root.Entropy, 1)
	q1 := f.Describe(1, 4, root.Entropy, mid.Entropy, 2)
	q3 := f.Describe(3, 4, mid.Entropy, root.Entropy, 2)

	cases := []struct {
		name            string
		got             Sample
		entropy, radius float64
	}{
		{"root", root, 0.80700643584153930, 903.50321792076966},
		{"1/2", mid, 0.69469620039722813, 847.34810019861402},
		{"1/4", q1, 0.70028139402543577, 850.14069701271796},
		{"3/4", q3, 0.75151512739136661, 875.75756369568330},
	}
	for _, tc := range cases {
		if math.Abs(tc.got.Entropy-tc.entropy) > 1e-12 || math.Abs(tc.got.Radius-tc.radius) > 1e-9 {
			t.Fatalf("%s = %+v, want entropy %.17g radius %.17g", tc.name, tc.got, tc.entropy, tc.radius)
		}
	}
}

func TestDescribeRootWithinBounds(t *testing.T) {
	for i := 0; i < 64; i++ {
		f := newTestField(core.NewSeed(int64(i)))
		s := f.Describe(0, 1, 0, 0, 0)
		if s.Entropy < 0 || s.Entropy >= 1 {
			t.Fatalf("seed %d: entropy %v outside [0,1)", i, s.Entropy)
		}
		if s.Radius < 500 || s.Radius > 1000 {
			t.Fatalf("seed %d: radius %v outside [500,1000]", i, s.Radius)
		}
	}
}

func TestDescribeIsPure(t *testing.T) {
	scratch := new(core.State)
	a := NewField(core.NewSeed(7), scratch, 50, 100)
	b := NewField(core.NewSeed(8), scratch, 50, 100)

	first := a.Describe(3, 8, 0.4, 0.6, 3)
	b.Describe(1, 2, 0.1, 0.9, 1) // clobbers the shared scratch
	scratch.Fold(0xdeadbeef, 0xcafebabe)
	if again := a.Describe(3, 8, 0.4, 0.6, 3); again != first {
		t.Fatalf("describe depends on scratch history: %+v vs %+v", first, again)
	}
}

func TestDeepNodesStillDrawSamples(t *testing.T) {
	f := newTestField(core.ZeroSeed())
	d := uint64(1) << 20
	a := f.Describe(1, d, 0.5, 0.5, 20)
	b := f.Describe(3, d, 0.5, 0.5, 20)
	if a == b {
		t.Fatal("distinct deep nodes collapsed to the same sample")
	}
}

func TestBlendDampsFreshNoise(t *testing.T) {
	f := newTestField(core.NewSeed(99))
	for depth := 1; depth <= 16; depth++ {
		d := uint64(1) << depth
		for n := uint64(1); n < d && n < 64; n += 2 {
			before, after := 0.3, 0.7
			s := f.Describe(n, d, before, after, depth)
			if dev := math.Abs(s.Entropy - (before+after)/2); dev >= 1/float64(d) {
				t.Fatalf("node %d/%d deviates %.6f from its neighbours, bound %.6f", n, d, dev, 1/float64(d))
			}
		}
	}
}

// levels returns the start entropies of every node at each depth, built by
// top-down subdivision.
func levels(desc Describer, depth int) [][]Sample {
	out := [][]Sample{{Root(desc).Start}}
	nodes := []Node{Root(desc)}
	for k := 1; k <= depth; k++ {
		next := make([]Node, 0, 2*len(nodes))
		starts := make([]Sample, 0, 2*len(nodes))
		for _, nd := range nodes {
			l, r := nd.Split(desc)
			next = append(next, l, r)
			starts = append(starts, l.Start, r.Start)
		}
		nodes = next
		out = append(out, starts)
	}
	return out
}

func TestIndexAddressable(t *testing.T) {
	const depth = 6
	f := newTestField(core.NewSeed(2024))
	tree := levels(f, depth)

	for k := 1; k <= depth; k++ {
		d := uint64(1) << k
		coarse := tree[k-1]
		for n := uint64(1); n < d; n += 2 {
			before := coarse[(n-1)/2]
			after := coarse[((n+1)/2)%uint64(len(coarse))]
			direct := f.Describe(n, d, before.Entropy, after.Entropy, k)
			if direct != tree[k][n] {
				t.Fatalf("node %d/%d: direct %+v, recursive %+v", n, d, direct, tree[k][n])
			}
		}
		for n := uint64(0); n < d; n += 2 {
			if tree[k][n] != coarse[n/2] {
				t.Fatalf("node %d/%d was recomputed instead of inherited", n, d)
			}
		}
	}
}

func TestSurfaceContinuity(t *testing.T) {
	const (
		depth = 10
		seeds = 32
	)
	mean := make([]float64, depth+1)
	for i := 0; i < seeds; i++ {
		seed := core.Seed{core.SeedWord0, core.SeedWord1, uint32(i) * 0x9e3779b9, uint32(i) ^ 0x5bd1e995}
		tree := levels(newTestField(seed), depth)
		for k := 1; k <= depth; k++ {
			lvl := tree[k]
			sum := 0.0
			for n := range lvl {
				sum += math.Abs(lvl[n].Entropy - lvl[(n+1)%len(lvl)].Entropy)
			}
			mean[k] += sum / float64(len(lvl)) / seeds
		}
	}
	for k := 2; k <= depth; k++ {
		if mean[k] >= mean[k-1] {
			t.Fatalf("mean neighbour gap did not shrink at depth %d: %v", k, mean)
		}
	}
	if mean[depth] > 0.002 {
		t.Fatalf("neighbours at depth %d still differ by %.5f on average", depth, mean[depth])
	}
}

func TestSplitSharesMidpoint(t *testing.T) {
	f := newTestField(core.ZeroSeed())
	root := Root(f)
	if root.Start != root.Stop {
		t.Fatal("root must wrap onto itself")
	}
	l, r := root.Split(f)
	if l.Stop != r.Start {
		t.Fatalf("children disagree on shared boundary: %+v vs %+v", l.Stop, r.Start)
	}
	if l.N != 0 || r.N != 1 || l.D != 2 || r.D != 2 || l.Depth != 1 {
		t.Fatalf("unexpected children %+v %+v", l, r)
	}
	if r.Stop != root.Start {
		t.Fatal("last interval must close on the root sample")
	}
}
