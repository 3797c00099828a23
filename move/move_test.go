package move_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/move"
	"github.com/cocosip/cubecoord/view/facelet"
)

func TestUQuarterTurnMatchesGoldenTuple(t *testing.T) {
	p := move.Iota()
	require.NoError(t, move.ApplyMoves(&p, "U"))
	tup, err := facelet.ToTuple(p)
	require.NoError(t, err)
	assert.Equal(t, cubecoord.Tuple{
		CpLex: 15120, CoMask: 0, EpLex: 119750400, EoMask: 0,
		PoIdxU: cubecoord.NoReorientation,
	}, tup)
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, face := range []string{"U", "D", "F", "B", "R", "L"} {
		p := move.Iota()
		require.NoError(t, move.ApplyMoves(&p, face+" "+face+" "+face+" "+face))
		assert.Equal(t, move.Iota(), p, "face %s", face)
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	p := move.Iota()
	require.NoError(t, move.ApplyMoves(&p, "F2 F2"))
	assert.Equal(t, move.Iota(), p)
}

func TestQuarterThenInverseIsIdentity(t *testing.T) {
	p := move.Iota()
	require.NoError(t, move.ApplyMoves(&p, "R R' "))
	assert.Equal(t, move.Iota(), p)
}

func TestSixRepetitionsOfSexyMoveIsIdentity(t *testing.T) {
	p := move.Iota()
	require.NoError(t, move.ApplyMoves(&p, "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'"))
	assert.Equal(t, move.Iota(), p)
}

func TestBadMoveFormat(t *testing.T) {
	p := move.Iota()
	err := move.ApplyMoves(&p, "X")
	assert.Same(t, cubecoord.ErrBadMoveFormat, err)
}

func TestComposeIdentityIsNoOp(t *testing.T) {
	p := move.Iota()
	c := move.Compose(p, p)
	assert.Equal(t, p, c)
}
