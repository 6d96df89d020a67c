package plonk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherem/plonk-quotient/plonk"
)

func TestValueSourceOrderingIsTotalAndStable(t *testing.T) {
	low := plonk.ConstantSource(0)
	high := plonk.PreviousValueSource()

	require.True(t, low.Less(high))
	require.False(t, high.Less(low))
	require.False(t, low.Less(low))
}

func TestValueSourceOrderingAcrossTags(t *testing.T) {
	c := plonk.ConstantSource(5)
	i := plonk.IntermediateSource(0)
	f := plonk.FixedSource(0, 0)
	adv := plonk.AdviceSource(0, 0)
	inst := plonk.InstanceSource(0, 0)
	ch := plonk.ChallengeSource(0)

	require.True(t, c.Less(i))
	require.True(t, i.Less(f))
	require.True(t, f.Less(adv))
	require.True(t, adv.Less(inst))
	require.True(t, inst.Less(ch))
	require.True(t, ch.Less(plonk.BetaSource()))
	require.True(t, plonk.BetaSource().Less(plonk.GammaSource()))
	require.True(t, plonk.GammaSource().Less(plonk.ThetaSource()))
	require.True(t, plonk.ThetaSource().Less(plonk.YSource()))
	require.True(t, plonk.YSource().Less(plonk.PreviousValueSource()))
}

func TestValueSourceWellSeededConstants(t *testing.T) {
	require.True(t, plonk.ConstantSource(0).IsConstantZero())
	require.True(t, plonk.ConstantSource(1).IsConstantOne())
	require.True(t, plonk.ConstantSource(2).IsConstantTwo())
	require.False(t, plonk.ConstantSource(3).IsConstantZero())
}
