package utils

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// IsStronglyConnected 判断有向图是否强连通
func IsStronglyConnected(g graph.Directed) bool {
	return len(topo.TarjanSCC(g)) <= 1
}

// StronglyConnectedComponents 返回有向图的强连通分量，按规模从大到小排列
func StronglyConnectedComponents(g graph.Directed) [][]graph.Node {
	components := topo.TarjanSCC(g)
	slices.SortStableFunc(components, func(a, b []graph.Node) int {
		return cmp.Compare(len(b), len(a))
	})
	return components
}

// IsRouteIn 判断路口序列是否构成图中的一条路径
func IsRouteIn(g graph.Graph, route []int64) bool {
	nodes := make([]graph.Node, len(route))
	for i, id := range route {
		n := g.Node(id)
		if n == nil {
			return false
		}
		nodes[i] = n
	}
	return topo.IsPathIn(g, nodes)
}
