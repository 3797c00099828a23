// Package facelet converts between the 54-element facelet-permutation
// view (nicknamed "Heykube" — a permutation of 0..53 restricted to
// physically reachable cube states) and a coordinate tuple.
package facelet

import (
	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/internal/tables"
	"github.com/cocosip/cubecoord/perm"
)

// Size is the number of facelets on a 3x3x3 cube.
const Size = 54

var (
	edgeLookup   [36]int // 6*faceA+faceB -> cubie*2+orientation, -1 if illegal
	cornerLookup [36]int // 6*faceA+faceB -> cubie*4+twist, -1 if illegal
	edgeExpand   [24]int // cubie*2+orientation -> two packed 6-bit facelet fields
	cornerExpand [32]int // cubie*4+twist -> three packed 6-bit facelet fields
)

func init() {
	for i := range edgeLookup {
		edgeLookup[i] = -1
	}
	for i := range cornerLookup {
		cornerLookup[i] = -1
	}

	for i, pos := range tables.EdgePositions {
		fa, fb := pos.A/9, pos.B/9
		edgeLookup[6*fa+fb] = 2*i + 0
		edgeExpand[2*i+0] = pos.A<<6 + pos.B
		edgeLookup[6*fb+fa] = 2*i + 1
		edgeExpand[2*i+1] = pos.B<<6 + pos.A
	}

	for i, pos := range tables.CornerPositions {
		fa, fb, fc := pos.A/9, pos.B/9, pos.C/9
		cornerLookup[6*fa+fb] = 4*i + 0
		cornerExpand[4*i+0] = pos.A<<12 + pos.B<<6 + pos.C
		cornerLookup[6*fb+fc] = 4*i + 1
		cornerExpand[4*i+1] = pos.B<<12 + pos.C<<6 + pos.A
		cornerLookup[6*fc+fa] = 4*i + 2
		cornerExpand[4*i+2] = pos.C<<12 + pos.A<<6 + pos.B
	}
}

// ToTuple decodes a facelet permutation into a coordinate tuple.
func ToTuple(p [Size]byte) (cubecoord.Tuple, error) {
	for _, v := range p {
		if v > Size-1 {
			return cubecoord.Tuple{}, cubecoord.ErrPermElementOutOfRange
		}
	}

	var edgeCubies [12]int
	eo := 0
	for i, pos := range tables.EdgePositions {
		v0, v1 := int(p[pos.A]), int(p[pos.B])
		entry := edgeLookup[6*(v0/9)+v1/9]
		if entry < 0 || edgeExpand[entry] != v0<<6+v1 {
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
		v0, v1, v2 := int(p[pos.A]), int(p[pos.B]), int(p[pos.C])
		entry := cornerLookup[6*(v0/9)+v1/9]
		if entry < 0 || cornerExpand[entry] != v0<<12+v1<<6+v2 {
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
		if int(p[f]) != f {
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

// FromTuple encodes a coordinate tuple into a facelet permutation.
func FromTuple(t cubecoord.Tuple) [Size]byte {
	var p [Size]byte

	edgePerm := perm.Decode(t.EpLex, 12)
	for i, pos := range tables.EdgePositions {
		ori := (t.EoMask >> (11 - i)) & 1
		packed := edgeExpand[2*edgePerm[i]+ori]
		p[pos.A] = byte(packed >> 6)
		p[pos.B] = byte(packed & 0x3f)
	}

	cornerPerm := perm.Decode(t.CpLex, 8)
	coMask := t.CoMask
	for i := 7; i >= 0; i-- {
		twist := coMask % 3
		coMask /= 3
		pos := tables.CornerPositions[i]
		packed := cornerExpand[4*cornerPerm[i]+twist]
		p[pos.A] = byte(packed >> 12)
		p[pos.B] = byte((packed >> 6) & 0x3f)
		p[pos.C] = byte(packed & 0x3f)
	}

	for _, f := range tables.CenterStorageOrder {
		p[f] = byte(f)
	}

	return p
}
