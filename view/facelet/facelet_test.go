package facelet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/view/facelet"
)

func iota54() [facelet.Size]byte {
	var p [facelet.Size]byte
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestToTupleIdentity(t *testing.T) {
	tup, err := facelet.ToTuple(iota54())
	require.NoError(t, err)
	assert.Equal(t, cubecoord.Tuple{PoIdxU: cubecoord.NoReorientation}, tup)
}

func TestFromTupleIdentity(t *testing.T) {
	p := facelet.FromTuple(cubecoord.Tuple{PoIdxU: cubecoord.NoReorientation})
	assert.Equal(t, iota54(), p)
}

func TestToTupleElementOutOfRange(t *testing.T) {
	p := iota54()
	p[0] = 54
	_, err := facelet.ToTuple(p)
	assert.Same(t, cubecoord.ErrPermElementOutOfRange, err)
}

func TestToTupleWrongFaceletForSlot(t *testing.T) {
	// Swap the U-face facelets of the UF and UB edges: each slot still sees a
	// legal pair of faces, but not the physically correct facelet pair for
	// its cubie, so this must be rejected.
	p := iota54()
	p[41], p[39] = p[39], p[41]
	_, err := facelet.ToTuple(p)
	assert.Same(t, cubecoord.ErrIllegalCubieSeen, err)
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tup := cubecoord.Tuple{
			EpLex:  rapid.IntRange(0, cubecoord.EdgePermutationCount-1).Draw(rt, "epLex"),
			EoMask: rapid.IntRange(0, cubecoord.EdgeOrientationCount-1).Draw(rt, "eoMask"),
			CpLex:  rapid.IntRange(0, cubecoord.CornerPermutationCount-1).Draw(rt, "cpLex"),
			CoMask: rapid.IntRange(0, cubecoord.CornerOrientationCount-1).Draw(rt, "coMask"),
			PoIdxU: cubecoord.NoReorientation,
		}
		p := facelet.FromTuple(tup)
		back, err := facelet.ToTuple(p)
		require.NoError(rt, err)
		assert.Equal(rt, tup, back)
	})
}
