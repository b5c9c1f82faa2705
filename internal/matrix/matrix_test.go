package matrix_test

import (
	"math/big"
	"testing"

	"github.com/michaelmacinnis/balance/internal/matrix"
	"github.com/michaelmacinnis/balance/internal/type/num"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int64) []*big.Int {
	b := make([]*big.Int, len(xs))
	for i, x := range xs {
		b[i] = big.NewInt(x)
	}

	return b
}

func build(rows [][]int64) *matrix.T {
	b := make([][]*big.Int, len(rows))
	for i, row := range rows {
		b[i] = ints(row...)
	}

	return matrix.New(b)
}

func TestCoefficients(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]int64
		want []*big.Int
	}{
		{
			// H2 + O2 -> H2O with x0 = 1.
			name: "Fractions",
			rows: [][]int64{
				{1, 0, -1, 0},
				{0, 2, -1, 0},
				{1, 0, 0, 1},
			},
			want: ints(2, 1, 2),
		},
		{
			// N2 + H2 -> NH3 with x0 = 1.
			name: "Integers",
			rows: [][]int64{
				{0, 2, -3, 0},
				{2, 0, -1, 0},
				{1, 0, 0, 1},
			},
			want: ints(1, 3, 2),
		},
		{
			name: "Identity",
			rows: [][]int64{
				{1, 0, 5},
				{0, 1, 7},
			},
			want: ints(5, 7),
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := build(tc.rows).Coefficients()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSolveSwapsZeroPivot(t *testing.T) {
	t.Parallel()

	m := build([][]int64{
		{0, 1, 3},
		{2, 0, 4},
	})

	solved, err := m.Solve()
	require.NoError(t, err)
	require.Len(t, solved, 2)
	require.True(t, solved[0].Equal(num.Int(2)))
	require.True(t, solved[1].Equal(num.Int(3)))

	// The original matrix is not modified.
	require.Equal(t, "[[0, 1, 3], [2, 0, 4]]", m.String())
}

func TestSolveExactRationals(t *testing.T) {
	t.Parallel()

	// 3x = 1, 7y = 2
	solved, err := build([][]int64{
		{3, 0, 1},
		{0, 7, 2},
	}).Solve()
	require.NoError(t, err)
	require.Equal(t, "1/3", solved[0].String())
	require.Equal(t, "2/7", solved[1].String())

	require.Equal(t, ints(7, 6), matrix.Integers(solved))
}

func TestSolveErrors(t *testing.T) {
	t.Parallel()

	_, err := build([][]int64{
		{1, 1, 0},
		{2, 2, 0},
	}).Solve()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = build([][]int64{
		{1, 1, 0, 0},
		{2, 2, 0, 0},
	}).Solve()
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = build(nil).Solve()
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestCoefficientsNonPositive(t *testing.T) {
	t.Parallel()

	_, err := build([][]int64{
		{1, 1, 0},
		{1, 0, 1},
	}).Coefficients()
	require.ErrorIs(t, err, matrix.ErrNonPositive)
}

func TestIntegers(t *testing.T) {
	t.Parallel()

	solved := []*num.T{num.New("1/2"), num.New("1/4"), num.New("3/4")}

	// Product of denominators is 32; 16, 8, 24 reduce by 8.
	require.Equal(t, ints(2, 1, 3), matrix.Integers(solved))

	// Integer solutions are returned as they are.
	require.Equal(t, ints(4, 2), matrix.Integers([]*num.T{num.Int(4), num.Int(2)}))
}

func TestString(t *testing.T) {
	t.Parallel()

	m := build([][]int64{{1, -2}, {0, 3}})

	require.Equal(t, "[[1, -2], [0, 3]]", m.String())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.True(t, m.At(0, 1).Equal(num.Int(-2)))
}

func TestCoefficientsLargeValues(t *testing.T) {
	t.Parallel()

	big64, ok := new(big.Int).SetString("18446744073709551618", 10)
	require.True(t, ok)

	// (2^64 + 2)x = 2y with x = 1.
	m := matrix.New([][]*big.Int{
		{big64, big.NewInt(-2), big.NewInt(0)},
		{big.NewInt(1), big.NewInt(0), big.NewInt(1)},
	})

	got, err := m.Coefficients()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].String())
	require.Equal(t, "9223372036854775809", got[1].String())
}
