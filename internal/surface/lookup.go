package surface

import (
	"math"

	"orbit-lod/pkg/core"
)

// RadiusAt returns the outline radius at meridian (radians). It follows the
// single path of the subdivision tree that contains the meridian, producing
// the same node samples the renderer would, and stops once an interval spans
// less than threshold/2 along the surface. The result is interpolated along
// the final interval's chord.
func RadiusAt(desc Describer, meridian, threshold float64) float64 {
	frac := core.NormalizeAngle(meridian) / core.Tau
	nd := Root(desc)
	for nd.Depth < MaxDepth {
		if nd.Depth > MinDepth && core.Tau*nd.Start.Radius/float64(nd.D) < threshold/2 {
			break
		}
		left, right := nd.Split(desc)
		if frac >= right.StartFrac() {
			nd = right
		} else {
			nd = left
		}
	}
	t := math.Min(math.Max(frac*float64(nd.D)-float64(nd.N), 0), 1)
	return nd.Start.Radius + (nd.Stop.Radius-nd.Start.Radius)*t
}
