package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cocosip/cubecoord/perm"
)

func TestEncodeIdentity(t *testing.T) {
	rank, ok := perm.Encode([]int{0, 1, 2, 3, 4, 5, 6, 7})
	require.True(t, ok)
	assert.Equal(t, 0, rank)
}

func TestEncodeUCorners(t *testing.T) {
	// The corner permutation produced by a solved cube's U quarter turn,
	// validated against the spec's golden scenario (cpLex = 15120).
	rank, ok := perm.Encode([]int{3, 0, 1, 2, 4, 5, 6, 7})
	require.True(t, ok)
	assert.Equal(t, 15120, rank)
}

func TestEncodeMissingCubie(t *testing.T) {
	_, ok := perm.Encode([]int{0, 0, 2, 3})
	assert.False(t, ok)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, n := range []int{6, 8, 12} {
		n := n
		t.Run(intName(n), func(t *testing.T) {
			max := 1
			for i := 2; i <= n; i++ {
				max *= i
			}
			rapid.Check(t, func(rt *rapid.T) {
				k := rapid.IntRange(0, max-1).Draw(rt, "ordinal")
				a := perm.Decode(k, n)
				rank, ok := perm.Encode(a)
				require.True(rt, ok)
				assert.Equal(rt, k, rank)
				assert.Equal(rt, a, perm.Decode(rank, n))
			})
		})
	}
}

func intName(n int) string {
	switch n {
	case 6:
		return "n=6"
	case 8:
		return "n=8"
	case 12:
		return "n=12"
	default:
		return "n"
	}
}
