package fragility

// Betweenness computes unnormalized betweenness centrality for every node
// using Brandes' single-source accumulation: one BFS per source counting
// shortest paths, then a reverse pass distributing dependency along the
// predecessor lists. Edges are directed with unit length; ties among
// equal-length paths share credit proportionally. Unreachable pairs simply
// contribute nothing, so disconnected graphs need no special casing.
func (g *Graph) Betweenness() []float64 {
	n := len(g.squares)
	bc := make([]float64, n)

	dist := make([]int, n)
	sigma := make([]float64, n)
	delta := make([]float64, n)
	preds := make([][]int, n)
	order := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		order = order[:0]
		queue = append(queue[:0], s)
		dist[s] = 0
		sigma[s] = 1

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, w := range g.adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Nodes in reverse BFS order: farthest from s first.
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}
	return bc
}
