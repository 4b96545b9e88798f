package medial

import "fmt"

// Workspace holds the scratch buffers for solving cyclic tridiagonal
// systems of a fixed size. Reusing one Workspace across solves avoids all
// per-solve allocation. A Workspace must not be used by more than one
// goroutine at a time.
type Workspace struct {
	n int

	cp, dp []float64
	y, z   []float64
	u      []float64
	diag   []float64

	// Per-fit system, filled by the primitive fitter.
	d, rhs []float64
}

// NewWorkspace returns a workspace for systems of size n. It panics if n is
// less than 3, for which a cyclic tridiagonal system isn't defined.
func NewWorkspace(n int) *Workspace {
	if n < 3 {
		panic(fmt.Sprintf("cyclic tridiagonal system of size %d", n))
	}
	buf := make([]float64, 8*n)
	return &Workspace{
		n:    n,
		cp:   buf[0*n : 1*n : 1*n],
		dp:   buf[1*n : 2*n : 2*n],
		y:    buf[2*n : 3*n : 3*n],
		z:    buf[3*n : 4*n : 4*n],
		u:    buf[4*n : 5*n : 5*n],
		diag: buf[5*n : 6*n : 6*n],
		d:    buf[6*n : 7*n : 7*n],
		rhs:  buf[7*n : 8*n : 8*n],
	}
}

// Len returns the system size the workspace was made for.
func (ws *Workspace) Len() int { return ws.n }

// SolveCyclic solves the n×n system whose diagonal is d, whose sub- and
// super-diagonal entries are all e, and whose two corner entries (0, n-1)
// and (n-1, 0) are f. The solution is written to out, which may alias
// neither d nor b.
//
// The corners are split off as a rank-one update (Sherman–Morrison), leaving
// two ordinary tridiagonal solves.
func (ws *Workspace) SolveCyclic(d []float64, e, f float64, b, out []float64) {
	n := ws.n
	if len(d) != n || len(b) != n || len(out) != n {
		panic(fmt.Sprintf("system of size %d/%d/%d for workspace of size %d", len(d), len(b), len(out), n))
	}
	copy(ws.diag, d)
	ws.diag[0] -= f
	ws.diag[n-1] -= f
	clear(ws.u)
	ws.u[0] = 1
	ws.u[n-1] = 1

	ws.solveTridiagonal(ws.diag, e, b, ws.y)
	ws.solveTridiagonal(ws.diag, e, ws.u, ws.z)

	vy := f * (ws.y[0] + ws.y[n-1])
	vz := f * (ws.z[0] + ws.z[n-1])
	factor := vy / (1 + vz)
	for i := range out {
		out[i] = ws.y[i] - factor*ws.z[i]
	}
}

// solveTridiagonal is the Thomas algorithm for a tridiagonal system with
// constant off-diagonal e.
func (ws *Workspace) solveTridiagonal(diag []float64, e float64, rhs, out []float64) {
	n := len(diag)
	cp, dp := ws.cp, ws.dp
	cp[0] = e / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - e*cp[i-1]
		if i < n-1 {
			cp[i] = e / denom
		}
		dp[i] = (rhs[i] - e*dp[i-1]) / denom
	}
	out[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		out[i] = dp[i] - cp[i]*out[i+1]
	}
}
