package takeoff

import "github.com/piwi3910/CabFace/internal/model"

// Partition is the vertical or horizontal panel behind one reveal.
type Partition struct {
	NodeID   string  `json:"node_id"`
	Quantity int     `json:"quantity"`
	Length   float64 `json:"length"`
	Depth    float64 `json:"depth"`
	Banded   bool    `json:"banded"`
}

// PartitionMetrics totals the partitions of a cabinet.
type PartitionMetrics struct {
	Count       int         `json:"count"`
	Area        float64     `json:"area"`
	EdgeBanding float64     `json:"edge_banding"`
	Partitions  []Partition `json:"partitions"`
}

// CalculatePartitions finds the reveals that need a partition behind them.
// A reveal between two stacked drawer or false fronts needs none. Styles
// with double partitions count two per reveal, and banded styles band the
// front edge.
func CalculatePartitions(root *model.FaceNode, p Params) PartitionMetrics {
	m := PartitionMetrics{Partitions: []Partition{}}
	if !p.Type.Kind.HasBox() {
		return m
	}
	perReveal := 1
	if p.Style.DoublePartitions {
		perReveal = 2
	}
	d := q(p.Depth)

	root.Walk(func(n, _ *model.FaceNode) bool {
		if !n.IsContainer() {
			return true
		}
		for i := 1; i < len(n.Children)-1; i++ {
			r := n.Children[i]
			if !r.IsReveal() {
				continue
			}
			prev, next := n.Children[i-1], n.Children[i+1]
			if prev.IsReveal() || next.IsReveal() {
				continue
			}
			if n.SplitDirection == model.DirectionVertical && isDrawerLike(prev) && isDrawerLike(next) {
				continue
			}
			length := q(r.CrossExtent(n.SplitDirection))
			part := Partition{
				NodeID:   r.ID,
				Quantity: perReveal,
				Length:   length,
				Depth:    d,
				Banded:   p.Style.BandPartitions,
			}
			m.Partitions = append(m.Partitions, part)
			m.Count += perReveal
			m.Area += float64(perReveal) * length * d
			if part.Banded {
				m.EdgeBanding += float64(perReveal) * length
			}
		}
		return true
	})
	return m
}

func isDrawerLike(n *model.FaceNode) bool {
	return n.IsLeaf() && (n.Type == model.NodeDrawerFront || n.Type == model.NodeFalseFront)
}
