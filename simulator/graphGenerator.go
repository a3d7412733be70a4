package simulator

import (
	"signalSim/element"

	"gonum.org/v1/gonum/graph/simple"
)

// CreateIntersectionGraph 根据路网创建路口有向图
//
// 参数:
//   - net: 路网
//
// 返回:
//   - *simple.WeightedDirectedGraph: 以路口为节点、街道为边的有向图，边权为街道长度
//
// 首尾为同一路口的街道不加入图中；同向的多条街道只保留最短的一条。
func CreateIntersectionGraph(net *element.Network) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)

	// 创建所有节点（路口）
	for _, inter := range net.Intersections() {
		g.AddNode(simple.Node(inter.ID()))
	}

	// 创建边（街道）
	for _, street := range net.Streets() {
		if street.Start() == street.End() {
			continue
		}
		from, to := g.Node(int64(street.Start())), g.Node(int64(street.End()))
		weight := float64(street.Length())
		if w, ok := g.Weight(from.ID(), to.ID()); ok && w <= weight {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(from, to, weight))
	}

	return g
}
