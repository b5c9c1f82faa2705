package compound_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/michaelmacinnis/balance/internal/type/compound"
	"github.com/stretchr/testify/require"
)

func el(s string, n int64) compound.Element {
	return compound.Element{Symbol: s, Count: big.NewInt(n)}
}

func TestAtoms(t *testing.T) {
	t.Parallel()

	// K4Fe(SCN)6
	c := compound.New("",
		el("K", 4),
		el("Fe", 1),
		compound.Group{
			Nodes:      []compound.Node{el("S", 1), el("C", 1), el("N", 1)},
			Multiplier: big.NewInt(6),
		},
	)

	require.Equal(t, "K4Fe(SCN)6", c.String())
	require.Equal(t, "map[C:6 Fe:1 K:4 N:6 S:6]", fmt.Sprint(c.Atoms()))
	require.Equal(t, []string{"C", "Fe", "K", "N", "S"}, c.Symbols())
}

func TestAtomsRepeatedSymbolsSum(t *testing.T) {
	t.Parallel()

	// CH3(CH2)2CH3
	c := compound.New("CH3(CH2)2CH3",
		el("C", 1), el("H", 3),
		compound.Group{
			Nodes:      []compound.Node{el("C", 1), el("H", 2)},
			Multiplier: big.NewInt(2),
		},
		el("C", 1), el("H", 3),
	)

	require.Equal(t, "map[C:4 H:10]", fmt.Sprint(c.Atoms()))
}

func TestAtomsNestedGroups(t *testing.T) {
	t.Parallel()

	// Ca((OH)2)3 expands the inner group first.
	inner := compound.Group{
		Nodes:      []compound.Node{el("O", 1), el("H", 1)},
		Multiplier: big.NewInt(2),
	}
	c := compound.New("", el("Ca", 1), compound.Group{
		Nodes:      []compound.Node{inner},
		Multiplier: big.NewInt(3),
	})

	require.Equal(t, "Ca((OH)2)3", c.String())
	require.Equal(t, "map[Ca:1 H:6 O:6]", fmt.Sprint(c.Atoms()))
	require.Equal(t, []compound.Element{
		el("Ca", 1), el("O", 6), el("H", 6),
	}, compound.Flatten(c.Nodes()))
}

func TestAtomsDropsZeroCounts(t *testing.T) {
	t.Parallel()

	c := compound.New("H0O", el("H", 0), el("O", 1))

	require.Equal(t, "map[O:1]", fmt.Sprint(c.Atoms()))
	require.Equal(t, "H0O", c.String())
}

func TestAtomsLargeCounts(t *testing.T) {
	t.Parallel()

	// (H6)3074457345618258603 has 2^64 + 2 hydrogen atoms.
	m, ok := new(big.Int).SetString("3074457345618258603", 10)
	require.True(t, ok)

	c := compound.New("", compound.Group{
		Nodes:      []compound.Node{el("H", 6)},
		Multiplier: m,
	})

	require.Equal(t, "(H6)3074457345618258603", c.String())
	require.Equal(t, "map[H:18446744073709551618]", fmt.Sprint(c.Atoms()))
}
