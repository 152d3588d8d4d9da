package debug

// Topology names used in analysis events.
const (
	TopologyBlank    = "blank"
	TopologyDots     = "dots"
	TopologyClosed   = "closed"
	TopologyOpen     = "open"
	TopologyBranched = "branched"
	TopologySplit    = "split"
)

// ClassifyTopology names the stroke structure of a glyph from its
// connectivity counts.
//
//	blank     no modules
//	dots      modules but no connection between any two
//	closed    one stroke with no free ends
//	open      one stroke with exactly two free ends
//	branched  one stroke with more than two free ends
//	split     several strokes
func ClassifyTopology(modules, connections, endpoints, strokes int) string {
	switch {
	case modules == 0:
		return TopologyBlank
	case connections == 0:
		return TopologyDots
	case strokes > 1:
		return TopologySplit
	case endpoints == 0:
		return TopologyClosed
	case endpoints <= 2:
		return TopologyOpen
	default:
		return TopologyBranched
	}
}
