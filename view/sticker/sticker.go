// Package sticker converts between the 54-element sticker array (one
// color 0..5 per facelet) and a coordinate tuple.
package sticker

import (
	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/internal/tables"
	"github.com/cocosip/cubecoord/perm"
)

// Size is the number of stickers on a 3x3x3 cube.
const Size = 54

var (
	edgeLookup   [36]int // 6*c0+c1 -> cubie*2+orientation, -1 if illegal
	cornerLookup [36]int // 6*c0+c1 -> cubie*4+twist, -1 if illegal
	edgeExpand   [24]colorPair
	cornerExpand [32]colorTriple
)

type colorPair struct{ a, b int }
type colorTriple struct{ a, b, c int }

func init() {
	for i := range edgeLookup {
		edgeLookup[i] = -1
	}
	for i := range cornerLookup {
		cornerLookup[i] = -1
	}

	for i, pos := range tables.EdgePositions {
		c0, c1 := pos.A/9, pos.B/9
		edgeLookup[6*c0+c1] = 2*i + 0
		edgeExpand[2*i+0] = colorPair{c0, c1}
		edgeLookup[6*c1+c0] = 2*i + 1
		edgeExpand[2*i+1] = colorPair{c1, c0}
	}

	for i, pos := range tables.CornerPositions {
		c0, c1, c2 := pos.A/9, pos.B/9, pos.C/9
		cornerLookup[6*c0+c1] = 4*i + 0
		cornerExpand[4*i+0] = colorTriple{c0, c1, c2}
		cornerLookup[6*c1+c2] = 4*i + 1
		cornerExpand[4*i+1] = colorTriple{c1, c2, c0}
		cornerLookup[6*c2+c0] = 4*i + 2
		cornerExpand[4*i+2] = colorTriple{c2, c0, c1}
	}
}

// ToTuple decodes a sticker array into a coordinate tuple.
func ToTuple(s [Size]byte) (cubecoord.Tuple, error) {
	for _, v := range s {
		if v > 5 {
			return cubecoord.Tuple{}, cubecoord.ErrStickerElementOutOfRange
		}
	}

	var edgeCubies [12]int
	eo := 0
	for i, pos := range tables.EdgePositions {
		c0, c1 := int(s[pos.A]), int(s[pos.B])
		entry := edgeLookup[6*c0+c1]
		if entry < 0 {
			return cubecoord.Tuple{}, cubecoord.ErrIllegalCubieSeen
		}
		edgeCubies[i] = entry / 2
		eo = (eo << 1) | (entry & 1)
	}
	epLex, ok := perm.Encode(edgeCubies[:])
	if !ok {
		return cubecoord.Tuple{}, cubecoord.ErrMissingEdgeCubie
	}

	var cornerCubies [8]int
	co := 0
	for i, pos := range tables.CornerPositions {
		c0, c1, c2 := int(s[pos.A]), int(s[pos.B]), int(s[pos.C])
		entry := cornerLookup[6*c0+c1]
		if entry < 0 || cornerExpand[entry].c != c2 {
			return cubecoord.Tuple{}, cubecoord.ErrIllegalCubieSeen
		}
		cornerCubies[i] = entry / 4
		co = co*3 + entry%4
	}
	cpLex, ok := perm.Encode(cornerCubies[:])
	if !ok {
		return cubecoord.Tuple{}, cubecoord.ErrMissingCornerCubie
	}

	for _, f := range tables.CenterStorageOrder {
		if int(s[f]) != f/9 {
			return cubecoord.Tuple{}, cubecoord.ErrPuzzleOrientationNotSupported
		}
	}

	return cubecoord.Tuple{
		CpLex:  cpLex,
		CoMask: co,
		EpLex:  epLex,
		EoMask: eo,
		PoIdxU: cubecoord.NoReorientation,
	}, nil
}

// FromTuple encodes a coordinate tuple into a sticker array.
func FromTuple(t cubecoord.Tuple) [Size]byte {
	var s [Size]byte

	edgePerm := perm.Decode(t.EpLex, 12)
	for i, pos := range tables.EdgePositions {
		ori := (t.EoMask >> (11 - i)) & 1
		cp := edgeExpand[2*edgePerm[i]+ori]
		s[pos.A] = byte(cp.a)
		s[pos.B] = byte(cp.b)
	}

	cornerPerm := perm.Decode(t.CpLex, 8)
	coMask := t.CoMask
	for i := 7; i >= 0; i-- {
		twist := coMask % 3
		coMask /= 3
		pos := tables.CornerPositions[i]
		ct := cornerExpand[4*cornerPerm[i]+twist]
		s[pos.A] = byte(ct.a)
		s[pos.B] = byte(ct.b)
		s[pos.C] = byte(ct.c)
	}

	for _, f := range tables.CenterStorageOrder {
		s[f] = byte(f / 9)
	}

	return s
}
