// Package reid converts between the 67-character Reid notation string
// (twenty whitespace-separated cubie names) and a coordinate tuple.
package reid

import (
	"strings"

	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/internal/tables"
	"github.com/cocosip/cubecoord/perm"
)

// template is the solved-cube Reid string: it fixes both Size and the
// position of every space, letter, and token in the grammar.
var template = strings.Join(append(append([]string{}, tables.EdgeNames[:]...), tables.CornerNames[:]...), " ")

// Size is the fixed length of a Reid string: 20 tokens, 67 characters.
var Size = len(template)

var (
	edgeLookup   [64]int // (c0+15*c1)&63 -> cubie*2+orientation, -1 if illegal
	cornerLookup [64]int // (c0+15*c1)&63 -> cubie*4+twist, -1 if illegal
	edgeExpand   [24]int // cubie*2+orientation -> two packed 5-bit letter codes
	cornerExpand [32]int // cubie*4+twist -> three packed 5-bit letter codes
)

func letterCode(ch byte) int { return int(ch) & 31 }

func init() {
	for i := range edgeLookup {
		edgeLookup[i] = -1
	}
	for i := range cornerLookup {
		cornerLookup[i] = -1
	}

	for i, name := range tables.EdgeNames {
		c0, c1 := letterCode(name[0]), letterCode(name[1])
		edgeLookup[(c0+15*c1)&63] = 2*i + 0
		edgeExpand[2*i+0] = c0<<5 + c1
		edgeLookup[(c1+15*c0)&63] = 2*i + 1
		edgeExpand[2*i+1] = c1<<5 + c0
	}

	for i, name := range tables.CornerNames {
		c0, c1, c2 := letterCode(name[0]), letterCode(name[1]), letterCode(name[2])
		cornerLookup[(c0+15*c1)&63] = 4*i + 0
		cornerExpand[4*i+0] = c0<<10 + c1<<5 + c2
		cornerLookup[(c1+15*c2)&63] = 4*i + 1
		cornerExpand[4*i+1] = c1<<10 + c2<<5 + c0
		cornerLookup[(c2+15*c0)&63] = 4*i + 2
		cornerExpand[4*i+2] = c2<<10 + c0<<5 + c1
	}
}

// Token widths (letters plus the trailing space) and the byte offset of the
// first corner token within a Reid string, derived from the fixed template.
// Edge tokens start at offset 0.
const (
	edgeTokenWidth   = 3 // "UF "
	cornerStart      = 12 * edgeTokenWidth
	cornerTokenWidth = 4 // "UFR "
)

// ToTuple decodes a Reid string into a coordinate tuple. Centers are not
// part of the Reid grammar and are assumed solved.
func ToTuple(s string) (cubecoord.Tuple, error) {
	if len(s) != Size {
		return cubecoord.Tuple{}, cubecoord.ErrWrongReidLength
	}
	for i := 0; i < Size; i++ {
		want := template[i] == ' '
		got := s[i] == ' '
		if want != got {
			return cubecoord.Tuple{}, cubecoord.ErrReidElementOutOfRange
		}
		if !got {
			switch s[i] {
			case 'U', 'F', 'R', 'D', 'B', 'L':
			default:
				return cubecoord.Tuple{}, cubecoord.ErrReidElementOutOfRange
			}
		}
	}

	var edgeCubies [12]int
	eo := 0
	for i := 0; i < 12; i++ {
		a, b := s[edgeTokenWidth*i], s[edgeTokenWidth*i+1]
		ca, cb := letterCode(a), letterCode(b)
		entry := edgeLookup[(ca+15*cb)&63]
		if entry < 0 || edgeExpand[entry] != ca<<5+cb {
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
	for i := 0; i < 8; i++ {
		off := cornerStart + cornerTokenWidth*i
		a, b, c := s[off], s[off+1], s[off+2]
		ca, cb, cc := letterCode(a), letterCode(b), letterCode(c)
		entry := cornerLookup[(ca+15*cb)&63]
		if entry < 0 || cornerExpand[entry] != ca<<10+cb<<5+cc {
			return cubecoord.Tuple{}, cubecoord.ErrIllegalCubieSeen
		}
		cornerCubies[i] = entry / 4
		co = co*3 + entry%4
	}
	cpLex, ok := perm.Encode(cornerCubies[:])
	if !ok {
		return cubecoord.Tuple{}, cubecoord.ErrMissingCornerCubie
	}

	return cubecoord.Tuple{
		CpLex:  cpLex,
		CoMask: co,
		EpLex:  epLex,
		EoMask: eo,
		PoIdxU: cubecoord.NoReorientation,
	}, nil
}

// FromTuple encodes a coordinate tuple as a Reid string.
func FromTuple(t cubecoord.Tuple) string {
	buf := []byte(template)

	edgePerm := perm.Decode(t.EpLex, 12)
	for i := 0; i < 12; i++ {
		ori := (t.EoMask >> (11 - i)) & 1
		packed := edgeExpand[2*edgePerm[i]+ori]
		buf[edgeTokenWidth*i] = '@' + byte(packed>>5)
		buf[edgeTokenWidth*i+1] = '@' + byte(packed&31)
	}

	cornerPerm := perm.Decode(t.CpLex, 8)
	coMask := t.CoMask
	for i := 7; i >= 0; i-- {
		twist := coMask % 3
		coMask /= 3
		packed := cornerExpand[4*cornerPerm[i]+twist]
		off := cornerStart + cornerTokenWidth*i
		buf[off] = '@' + byte(packed>>10)
		buf[off+1] = '@' + byte((packed>>5)&31)
		buf[off+2] = '@' + byte(packed&31)
	}

	return string(buf)
}
