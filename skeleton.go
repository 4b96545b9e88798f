package medial

import (
	"container/heap"
	"math"
)

// BuildSkeleton connects skeleton vertices into a sparse graph that follows
// the topology of the raw medial axis.
//
// Every raw node is assigned to the vertex that is closest along the axis.
// Two vertices are connected when a raw segment joins their regions. If the
// straight connection would leave the shape, it is routed through an extra
// point in the middle of that raw segment.
//
// The result keeps vertices in order at the front of Points, followed by any
// extra points. It fails with ErrNoVertices when vertices is empty and with
// ErrDisconnected when the raw axis is empty or falls apart into several
// pieces.
func BuildSkeleton(axis *MedialAxisGraph, vertices []Point, o *Outline) (*MedialAxisGraph, error) {
	if !axis.Connected() {
		return nil, stageErrorf("skeleton", ErrDisconnected, "%d points in %d components", len(axis.Points), axis.components())
	}
	if len(vertices) == 0 {
		return nil, stageErrorf("skeleton", ErrNoVertices, "")
	}

	owner := partitionAxis(axis, vertices)

	out := &MedialAxisGraph{Points: append([]Point(nil), vertices...)}
	seen := make(map[[2]int]struct{})
	var steiner int
	for _, s := range axis.Segments {
		a, b := owner[s[0]], owner[s[1]]
		if a == -1 || b == -1 || a == b {
			continue
		}
		key := [2]int{min(a, b), max(a, b)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if segmentInside(out.Points[a], out.Points[b], o) {
			out.Segments = append(out.Segments, [2]int{a, b})
			continue
		}
		mid := len(out.Points)
		out.Points = append(out.Points, axis.Points[s[0]].Midpoint(axis.Points[s[1]]))
		out.Segments = append(out.Segments, [2]int{a, mid}, [2]int{mid, b})
		steiner++
	}

	Logger().Debug("skeleton built",
		"vertices", len(vertices),
		"extra points", steiner,
		"segments", len(out.Segments))
	return out, nil
}

// partitionAxis runs a multi-source Dijkstra over the raw axis, returning
// for every raw node the index of the vertex it belongs to.
//
// Vertices that snap to the same raw node all expand from it. The node goes
// to the last of them and its neighbours to the first, so the vertices
// still end up adjacent.
func partitionAxis(axis *MedialAxisGraph, vertices []Point) []int {
	adj := axis.Adjacency()
	owner := make([]int, len(axis.Points))
	dist := make([]float64, len(axis.Points))
	for i := range owner {
		owner[i] = -1
		dist[i] = math.Inf(1)
	}

	var q nodeQueue
	for vi, v := range vertices {
		n := nearestPoint(v, axis.Points)
		owner[n] = vi
		dist[n] = 0
		heap.Push(&q, queuedNode{node: n, owner: vi})
	}
	for q.Len() > 0 {
		it := heap.Pop(&q).(queuedNode)
		if it.dist > dist[it.node] {
			// Stale.
			continue
		}
		for _, w := range adj[it.node] {
			d := it.dist + axis.Points[it.node].Distance(axis.Points[w])
			if d < dist[w] {
				dist[w] = d
				owner[w] = it.owner
				heap.Push(&q, queuedNode{dist: d, node: w, owner: it.owner})
			}
		}
	}
	return owner
}

// segmentInside reports whether the segment from a to b stays inside o. Its
// midpoint must be inside, and boundary crossings are only tolerated within
// one unit of either end.
func segmentInside(a, b Point, o *Outline) bool {
	if !o.Contains(a.Midpoint(b)) {
		return false
	}
	const slack = 1.0
	for _, hit := range o.IntersectLine(Line{a, b}) {
		if hit.Distance(a) > slack && hit.Distance(b) > slack {
			return false
		}
	}
	return true
}

type queuedNode struct {
	dist  float64
	node  int
	owner int
}

// nodeQueue is a min-heap of queuedNode ordered by distance, then owner.
type nodeQueue []queuedNode

func (q nodeQueue) Len() int      { return len(q) }
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].owner < q[j].owner
}

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queuedNode)) }

func (q *nodeQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}
