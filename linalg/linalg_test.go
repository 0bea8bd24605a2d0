package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/linalg"
)

const eps = 1e-9

func backends() []linalg.Backend {
	return []linalg.Backend{linalg.NewNative(), linalg.NewGonum()}
}

// fromRows builds a Dense from row slices.
func fromRows(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func at(t *testing.T, m *linalg.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestDense_Basics(t *testing.T) {
	_, err := linalg.NewDense(0, 3)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), linalg.ErrIndexOutOfBounds)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, 1.0, at(t, m, 0, 0))

	row := m.RawRowView(1)
	row[0] = 7
	assert.Equal(t, 7.0, at(t, m, 1, 0))

	assert.False(t, m.IsSymmetric(eps))
	assert.True(t, fromRows(t, [][]float64{{1, 2}, {2, 1}}).IsSymmetric(eps))
}

func TestMul(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := fromRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	p, err := linalg.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4.0, at(t, p, 0, 0))
	assert.Equal(t, 11.0, at(t, p, 1, 1))

	_, err = linalg.Mul(a, a)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	y, err := linalg.MulVec(a, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)
}

func TestEigenSym_Triangle(t *testing.T) {
	// Adjacency of K3: eigenvalues -1, -1, 2.
	a := fromRows(t, [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			vals, vecs, err := b.EigenSym(a)
			require.NoError(t, err)
			require.Len(t, vals, 3)
			assert.InDelta(t, -1, vals[0], eps)
			assert.InDelta(t, -1, vals[1], eps)
			assert.InDelta(t, 2, vals[2], eps)

			// A·v = λ·v for every column.
			for k := 0; k < 3; k++ {
				v := []float64{at(t, vecs, 0, k), at(t, vecs, 1, k), at(t, vecs, 2, k)}
				av, err := linalg.MulVec(a, v)
				require.NoError(t, err)
				var norm float64
				for i := range v {
					assert.InDelta(t, vals[k]*v[i], av[i], 1e-8)
					norm += v[i] * v[i]
				}
				assert.InDelta(t, 1, norm, 1e-8)
			}
		})
	}
}

func TestEigenSym_Validation(t *testing.T) {
	for _, b := range backends() {
		_, _, err := b.EigenSym(fromRows(t, [][]float64{{1, 2}, {3, 4}}))
		require.ErrorIs(t, err, linalg.ErrNotSymmetric, b.Name())
		_, _, err = b.EigenSym(fromRows(t, [][]float64{{1, 2, 3}}))
		require.ErrorIs(t, err, linalg.ErrNonSquare, b.Name())
	}
}

func TestNative_SweepCap(t *testing.T) {
	nat := linalg.NewNative()
	nat.MaxSweeps = 0
	_, _, err := nat.EigenSym(fromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, linalg.ErrEigenFailed)

	// A diagonal matrix is converged before the first sweep.
	vals, _, err := nat.EigenSym(fromRows(t, [][]float64{{3, 0}, {0, 1}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, vals)
}

func TestExpSym(t *testing.T) {
	// exp([[0,1],[1,0]]) = [[cosh 1, sinh 1],[sinh 1, cosh 1]].
	a := fromRows(t, [][]float64{{0, 1}, {1, 0}})
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			e, err := b.ExpSym(a)
			require.NoError(t, err)
			assert.InDelta(t, math.Cosh(1), at(t, e, 0, 0), 1e-10)
			assert.InDelta(t, math.Sinh(1), at(t, e, 0, 1), 1e-10)
			assert.InDelta(t, math.Sinh(1), at(t, e, 1, 0), 1e-10)
			assert.InDelta(t, math.Cosh(1), at(t, e, 1, 1), 1e-10)
		})
	}
}

func TestInverseAndSolve(t *testing.T) {
	// Needs pivoting: a[0][0] == 0.
	a := fromRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			inv, err := b.Inverse(a)
			require.NoError(t, err)
			p, err := linalg.Mul(a, inv)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					assert.InDelta(t, want, at(t, p, i, j), 1e-10)
				}
			}

			x, err := b.Solve(a, []float64{3, 2, 4})
			require.NoError(t, err)
			ax, err := linalg.MulVec(a, x)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{3, 2, 4}, ax, 1e-10)
		})
	}
}

func TestInverse_Singular(t *testing.T) {
	// Laplacian of a single edge: rows sum to zero.
	a := fromRows(t, [][]float64{{1, -1}, {-1, 1}})
	for _, b := range backends() {
		_, err := b.Inverse(a)
		require.ErrorIs(t, err, linalg.ErrSingular, b.Name())
		_, err = b.Solve(a, []float64{1, 1})
		require.ErrorIs(t, err, linalg.ErrSingular, b.Name())
	}
}

func TestSolve_DimensionMismatch(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 0}, {0, 1}})
	for _, b := range backends() {
		_, err := b.Solve(a, []float64{1})
		require.ErrorIs(t, err, linalg.ErrDimensionMismatch, b.Name())
	}
}

func TestBackendsAgree(t *testing.T) {
	// Path graph P5 adjacency plus a diagonal shift.
	a, _ := linalg.NewDense(5, 5)
	for i := 0; i < 5; i++ {
		_ = a.Set(i, i, 0.5)
		if i+1 < 5 {
			_ = a.Set(i, i+1, 1)
			_ = a.Set(i+1, i, 1)
		}
	}

	nat, gon := linalg.NewNative(), linalg.NewGonum()
	e1, err := nat.ExpSym(a)
	require.NoError(t, err)
	e2, err := gon.ExpSym(a)
	require.NoError(t, err)
	v1, _, err := nat.EigenSym(a)
	require.NoError(t, err)
	v2, _, err := gon.EigenSym(a)
	require.NoError(t, err)
	assert.InDeltaSlice(t, v1, v2, 1e-9)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.InDelta(t, at(t, e1, i, j), at(t, e2, i, j), 1e-8)
		}
	}
}

func TestByName(t *testing.T) {
	b, err := linalg.ByName("native")
	require.NoError(t, err)
	assert.Equal(t, "native", b.Name())
	b, err = linalg.ByName("gonum")
	require.NoError(t, err)
	assert.Equal(t, "gonum", b.Name())
	_, err = linalg.ByName("lapack")
	require.Error(t, err)
}
