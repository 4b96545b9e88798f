package medial

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSolveCyclic(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{3, 4, 7, 128} {
		ws := NewWorkspace(n)
		if ws.Len() != n {
			t.Fatalf("got size %d, want %d", ws.Len(), n)
		}
		d := make([]float64, n)
		b := make([]float64, n)
		for i := range d {
			d[i] = 3 + r.Float64()*10
			b[i] = r.Float64()*200 - 100
		}
		const e, f = -1.0, -0.5
		x := make([]float64, n)
		ws.SolveCyclic(d, e, f, b, x)

		for i := range n {
			prev, next := (i+n-1)%n, (i+1)%n
			ep, en := e, e
			if i == 0 {
				ep = f
			}
			if i == n-1 {
				en = f
			}
			got := d[i]*x[i] + ep*x[prev] + en*x[next]
			if math.Abs(got-b[i]) > 1e-9 {
				t.Errorf("n=%d: row %d gives %v, want %v", n, i, got, b[i])
			}
		}
	}
}

func TestSolveCyclicUniform(t *testing.T) {
	// With equal corners and off-diagonals every row looks the same, so a
	// constant right-hand side has a constant solution.
	const n = 16
	ws := NewWorkspace(n)
	d := make([]float64, n)
	b := make([]float64, n)
	for i := range d {
		d[i] = 12
		b[i] = 100
	}
	x := make([]float64, n)
	ws.SolveCyclic(d, -1, -1, b, x)
	for i, v := range x {
		if math.Abs(v-10) > 1e-9 {
			t.Errorf("x[%d] = %v, want 10", i, v)
		}
	}
}

func TestNewWorkspaceTooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewWorkspace(2)
}

func TestSolveCyclicSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	ws := NewWorkspace(4)
	ws.SolveCyclic(make([]float64, 3), -1, -1, make([]float64, 4), make([]float64, 4))
}
