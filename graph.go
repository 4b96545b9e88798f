package medial

import (
	"math"
)

// MedialAxisGraph is an undirected graph embedded in the plane. It holds
// both raw medial axes and sparse skeletons.
type MedialAxisGraph struct {
	Points   []Point
	Segments [][2]int
}

// Adjacency returns the neighbours of every point.
func (g *MedialAxisGraph) Adjacency() [][]int {
	adj := make([][]int, len(g.Points))
	for _, s := range g.Segments {
		adj[s[0]] = append(adj[s[0]], s[1])
		adj[s[1]] = append(adj[s[1]], s[0])
	}
	return adj
}

// Degrees returns the number of segments incident to every point.
func (g *MedialAxisGraph) Degrees() []int {
	deg := make([]int, len(g.Points))
	for _, s := range g.Segments {
		deg[s[0]]++
		deg[s[1]]++
	}
	return deg
}

// Connected reports whether the graph is non-empty and every point can be
// reached from every other.
func (g *MedialAxisGraph) Connected() bool {
	if len(g.Points) == 0 {
		return false
	}
	return g.components() == 1
}

func (g *MedialAxisGraph) components() int {
	adj := g.Adjacency()
	seen := make([]bool, len(g.Points))
	var n int
	var stack []int
	for start := range g.Points {
		if seen[start] {
			continue
		}
		n++
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[v] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}
	return n
}

// Project returns the point of the graph closest to pt. Segments are
// considered if there are any, points otherwise. An empty graph returns pt.
func (g *MedialAxisGraph) Project(pt Point) Point {
	p, _ := g.nearest(pt)
	return p
}

// Distance returns the distance from pt to the graph, or +Inf for an empty
// graph.
func (g *MedialAxisGraph) Distance(pt Point) float64 {
	_, d := g.nearest(pt)
	return d
}

func (g *MedialAxisGraph) nearest(pt Point) (Point, float64) {
	best := pt
	bestD := math.Inf(1)
	if len(g.Segments) == 0 {
		for _, p := range g.Points {
			if d := pt.DistanceSquared(p); d < bestD {
				bestD = d
				best = p
			}
		}
		return best, math.Sqrt(bestD)
	}
	for _, s := range g.Segments {
		l := Line{g.Points[s[0]], g.Points[s[1]]}
		d, t := l.Nearest(pt)
		if d < bestD {
			bestD = d
			best = l.Eval(t)
		}
	}
	return best, math.Sqrt(bestD)
}

// Length returns the summed length of all segments.
func (g *MedialAxisGraph) Length() float64 {
	var l float64
	for _, s := range g.Segments {
		l += g.Points[s[0]].Distance(g.Points[s[1]])
	}
	return l
}

// BoundingBox returns the bounding box of the graph's points.
func (g *MedialAxisGraph) BoundingBox() Rect {
	r := emptyRect
	for _, p := range g.Points {
		r = r.UnionPoint(p)
	}
	return r
}
