package beam_test

import (
	"testing"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAssemble_SingleElement(t *testing.T) {
	k := beam.ElementStiffness(3)
	global, err := beam.Assemble([]*mat.Dense{k})
	require.NoError(t, err)
	require.True(t, mat.Equal(k, global))

	// the result is a copy
	global.Set(0, 0, 42)
	require.NotEqual(t, 42.0, k.At(0, 0))
}

func TestAssemble_TwoElements(t *testing.T) {
	k1 := beam.ElementStiffness(2)
	k2 := beam.ElementStiffness(3)

	global, err := beam.Assemble([]*mat.Dense{k1, k2})
	require.NoError(t, err)

	r, c := global.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, c)

	// shared node block is a sum
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, k1.At(2+i, 2+j)+k2.At(i, j), global.At(2+i, 2+j), 1e-12)
		}
	}

	// non-shared blocks are copied, uncoupled corners are zero
	require.Equal(t, k1.At(0, 1), global.At(0, 1))
	require.Equal(t, k2.At(3, 3), global.At(5, 5))
	require.Equal(t, 0.0, global.At(0, 4))
	require.Equal(t, 0.0, global.At(5, 1))
}

func TestAssemble_Size(t *testing.T) {
	for n := 1; n <= 6; n++ {
		elements := beam.ElementStiffnesses(make1(n))
		global, err := beam.Assemble(elements)
		require.NoError(t, err)
		r, _ := global.Dims()
		require.Equal(t, beam.GlobalSize(n), r)
		require.Equal(t, 2*(n+1), r)
		require.True(t, mat.EqualApprox(global, global.T(), 1e-12))
	}
}

func TestAssemble_Errors(t *testing.T) {
	_, err := beam.Assemble(nil)
	require.ErrorIs(t, err, beam.ErrNoElements)

	_, err = beam.Assemble([]*mat.Dense{mat.NewDense(3, 3, nil)})
	require.Error(t, err)
}

func make1(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
