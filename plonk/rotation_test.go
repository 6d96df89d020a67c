package plonk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherem/plonk-quotient/plonk"
)

func TestRotIdxIdentity(t *testing.T) {
	require.Equal(t, 17, plonk.RotIdx(17, 0, 8, 64))
}

func TestRotIdxWrapsPositive(t *testing.T) {
	// idx=60, r=1, rotScale=8, isize=64 -> 68 mod 64 == 4
	require.Equal(t, 4, plonk.RotIdx(60, 1, 8, 64))
}

func TestRotIdxWrapsNegative(t *testing.T) {
	// idx=2, r=-1, rotScale=8, isize=64 -> -6 mod 64 == 58
	require.Equal(t, 58, plonk.RotIdx(2, -1, 8, 64))
}

func TestRotIdxRoundTrip(t *testing.T) {
	const rotScale, isize = 8, 64
	for idx := 0; idx < isize; idx++ {
		for r := plonk.Rotation(-3); r <= 3; r++ {
			shifted := plonk.RotIdx(idx, r, rotScale, isize)
			back := plonk.RotIdx(shifted, -r, rotScale, isize)
			require.Equal(t, idx, back, "idx=%d r=%d", idx, r)
		}
	}
}
