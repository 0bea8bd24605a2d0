// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: single-source searches (Dijkstra and BFS) with σ and predecessor tracking.

package shortest

import (
	"container/heap"
	"fmt"
	"math"
)

// From runs a single-source search from src, choosing BFS for unit
// topologies and Dijkstra otherwise.
//
// Blueprint:
//
//	Stage 1 (Validate): src in range.
//	Stage 2 (Prepare):  Dist = +Inf, Sigma = 0, Pred = nil for every node.
//	Stage 3 (Execute):  settle nodes in distance order, counting equal-length
//	                    paths and appending predecessors.
//
// Complexity: see package documentation.
func From(t *Topology, src int) (*Result, error) {
	// Stage 1: Validate
	if src < 0 || src >= t.N() {
		return nil, fmt.Errorf("From: %d of %d: %w", src, t.N(), ErrSourceOutOfRange)
	}

	// Stage 2: Prepare
	n := t.N()
	r := &Result{
		Source: src,
		Order:  make([]int, 0, n),
		Dist:   make([]float64, n),
		Sigma:  make([]float64, n),
		Pred:   make([][]int, n),
	}
	for i := range r.Dist {
		r.Dist[i] = math.Inf(1)
	}
	r.Dist[src] = 0
	r.Sigma[src] = 1

	// Stage 3: Execute
	if t.Unit {
		bfs(t, r)
	} else {
		dijkstra(t, r)
	}

	return r, nil
}

// bfs is the unit-length search: a node's predecessors are exactly the
// neighbours one level closer to the source.
func bfs(t *Topology, r *Result) {
	queue := []int{r.Source}
	var (
		v, head int
		dv      float64
		a       Arc
	)
	for head < len(queue) {
		v = queue[head]
		head++
		r.Order = append(r.Order, v)
		dv = r.Dist[v]
		for _, a = range t.Adj[v] {
			if math.IsInf(r.Dist[a.To], 1) {
				r.Dist[a.To] = dv + 1
				queue = append(queue, a.To)
			}
			if r.Dist[a.To] == dv+1 {
				r.Sigma[a.To] += r.Sigma[v]
				r.Pred[a.To] = append(r.Pred[a.To], v)
			}
		}
	}
}

// dijkstra is the weighted search with lazy decrease-key.
//
// seen holds the best tentative distance. A strictly shorter candidate
// resets σ and the predecessor list; an equal one extends them. σ of a node
// is completed when it is popped, by adding the σ of the predecessor whose
// push won.
func dijkstra(t *Topology, r *Result) {
	n := t.N()
	seen := make([]float64, n)
	for i := range seen {
		seen[i] = math.Inf(1)
	}
	settled := make([]bool, n)
	seen[r.Source] = 0

	pq := make(itemPQ, 0, n)
	heap.Push(&pq, item{node: r.Source, pred: r.Source, dist: 0, seq: 0})
	seq := 1

	var (
		it   item
		v, w int
		vw   float64
		a    Arc
	)
	for pq.Len() > 0 {
		it = heap.Pop(&pq).(item)
		v = it.node
		if settled[v] {
			continue // stale entry
		}
		if v != r.Source {
			r.Sigma[v] += r.Sigma[it.pred]
		}
		settled[v] = true
		r.Dist[v] = it.dist
		r.Order = append(r.Order, v)

		for _, a = range t.Adj[v] {
			w = a.To
			vw = it.dist + a.Weight
			switch {
			case !settled[w] && vw < seen[w]:
				seen[w] = vw
				heap.Push(&pq, item{node: w, pred: v, dist: vw, seq: seq})
				seq++
				r.Sigma[w] = 0
				r.Pred[w] = []int{v}
			case vw == seen[w]:
				r.Sigma[w] += r.Sigma[v]
				r.Pred[w] = append(r.Pred[w], v)
			}
		}
	}
}

// item is a heap entry: node reached at dist through pred.
type item struct {
	node, pred int
	dist       float64
	seq        int // insertion counter, breaks distance ties FIFO
}

// itemPQ is a min-heap of items ordered by (dist, seq).
type itemPQ []item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
