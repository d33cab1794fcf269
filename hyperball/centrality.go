package hyperball

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// TotalDistances returns, per node, the approximate sum of hop
// distances from the node to every reachable edge: an edge whose
// source sits r hops away contributes r. A node reaching nothing
// beyond its own edges keeps 0.
func TotalDistances(g core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cent := make([]float64, g.NumberOfNodes())
	err := Run(g, func(node core.NodeID, current, previous float64, round uint32) {
		cent[node] += float64(round) * (current - previous)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return cent, nil
}

// Closeness returns the approximate closeness centrality per node: the
// reciprocal of its total distance, 0 for nodes whose total distance
// is 0.
func Closeness(g core.Graph, opts ...Option) ([]float64, error) {
	totals, err := TotalDistances(g, opts...)
	if err != nil {
		return nil, err
	}
	ones := make([]float64, len(totals))
	for i := range ones {
		ones[i] = 1
	}
	cent := make([]float64, len(totals))
	floats.DivTo(cent, ones, totals)
	for i, c := range cent {
		if math.IsInf(c, 0) {
			cent[i] = 0
		}
	}
	return cent, nil
}

// Harmonic returns the approximate harmonic centrality per node: an
// edge whose source sits r hops away contributes 1/r, which keeps
// unreachable parts of the graph from collapsing the score to 0.
func Harmonic(g core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cent := make([]float64, g.NumberOfNodes())
	err := Run(g, func(node core.NodeID, current, previous float64, round uint32) {
		cent[node] += (current - previous) / float64(round)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return cent, nil
}
