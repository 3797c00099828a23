package sticker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/view/sticker"
)

func solvedStickers() [sticker.Size]byte {
	var s [sticker.Size]byte
	for i := range s {
		s[i] = byte(i / 9)
	}
	return s
}

func TestToTupleSolved(t *testing.T) {
	tup, err := sticker.ToTuple(solvedStickers())
	require.NoError(t, err)
	assert.Equal(t, cubecoord.Tuple{PoIdxU: cubecoord.NoReorientation}, tup)
}

func TestFromTupleSolved(t *testing.T) {
	s := sticker.FromTuple(cubecoord.Tuple{PoIdxU: cubecoord.NoReorientation})
	assert.Equal(t, solvedStickers(), s)
}

func TestToTupleOutOfRangeElement(t *testing.T) {
	s := solvedStickers()
	s[0] = 6
	_, err := sticker.ToTuple(s)
	assert.Same(t, cubecoord.ErrStickerElementOutOfRange, err)
}

func TestToTupleMissingCornerCubie(t *testing.T) {
	// Duplicate the UFR corner onto the DBR slot, leaving no cubie there.
	s := solvedStickers()
	s[53], s[29], s[26] = s[44], s[15], s[18]
	_, err := sticker.ToTuple(s)
	assert.Same(t, cubecoord.ErrMissingCornerCubie, err)
}

func TestToTupleReorientedCenters(t *testing.T) {
	s := solvedStickers()
	s[4], s[13] = s[13], s[4]
	_, err := sticker.ToTuple(s)
	assert.Same(t, cubecoord.ErrPuzzleOrientationNotSupported, err)
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
		s := sticker.FromTuple(tup)
		back, err := sticker.ToTuple(s)
		require.NoError(rt, err)
		assert.Equal(rt, tup, back)
	})
}
