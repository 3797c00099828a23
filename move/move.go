// Package move implements the face-turn engine: an 18-entry table of
// facelet-permutations, built once from six hardcoded quarter-turn
// coordinate tuples, plus a tokenizer that applies a whitespace-separated
// move string to a facelet-permutation buffer in place.
package move

import (
	"github.com/cocosip/cubecoord/cubecoord"
	"github.com/cocosip/cubecoord/view/facelet"
)

// Face indexes the six base moves, matching the table layout 3*face+power.
type Face int

const (
	U Face = iota
	D
	F
	B
	R
	L
)

// Power selects which of the three turns of a face to apply.
const (
	Quarter      = 0 // clockwise quarter turn
	Half         = 1
	ThreeQuarter = 2 // counterclockwise quarter turn, the inverse of Quarter
)

// baseTuples are the six hardcoded quarter-turn coordinate tuples that seed
// the table. Every other entry is derived from these by composition.
var baseTuples = [6]cubecoord.Tuple{
	U: {CpLex: 15120, CoMask: 0, EpLex: 119750400, EoMask: 0, PoIdxU: cubecoord.NoReorientation},
	D: {CpLex: 18, CoMask: 0, EpLex: 5880, EoMask: 0, PoIdxU: cubecoord.NoReorientation},
	F: {CpLex: 21006, CoMask: 2412, EpLex: 323393334, EoMask: 2188, PoIdxU: cubecoord.NoReorientation},
	B: {CpLex: 1233, CoMask: 1708, EpLex: 3312664, EoMask: 547, PoIdxU: cubecoord.NoReorientation},
	R: {CpLex: 9507, CoMask: 5132, EpLex: 33070610, EoMask: 0, PoIdxU: cubecoord.NoReorientation},
	L: {CpLex: 176, CoMask: 588, EpLex: 247911, EoMask: 0, PoIdxU: cubecoord.NoReorientation},
}

// table holds the 18 precomputed facelet-permutations, indexed 3*face+power.
var table [18][facelet.Size]byte

func init() {
	for f := Face(0); f < 6; f++ {
		quarter := facelet.FromTuple(baseTuples[f])
		half := Compose(quarter, quarter)
		three := Compose(half, quarter)
		table[3*int(f)+Quarter] = quarter
		table[3*int(f)+Half] = half
		table[3*int(f)+ThreeQuarter] = three
	}
}

// Iota returns the identity facelet-permutation [0,1,...,53].
func Iota() [facelet.Size]byte {
	var p [facelet.Size]byte
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

// Compose returns b∘a: applying a then b. c[i] = b[a[i]].
func Compose(a, b [facelet.Size]byte) [facelet.Size]byte {
	var c [facelet.Size]byte
	for i := range c {
		c[i] = b[a[i]]
	}
	return c
}

func faceIndex(ch byte) (Face, bool) {
	switch ch {
	case 'U':
		return U, true
	case 'D':
		return D, true
	case 'F':
		return F, true
	case 'B':
		return B, true
	case 'R':
		return R, true
	case 'L':
		return L, true
	default:
		return 0, false
	}
}

// ApplyMoves mutates perm in place, composing it with the table entry for
// each token of moves. Tokens are whitespace-separated; each is a face
// letter optionally followed by '2' or '\''.
func ApplyMoves(perm *[facelet.Size]byte, moves string) error {
	i := 0
	for i < len(moves) {
		for i < len(moves) && (moves[i] == ' ' || moves[i] == '\t' || moves[i] == '\n') {
			i++
		}
		if i >= len(moves) {
			break
		}
		face, ok := faceIndex(moves[i])
		if !ok {
			return cubecoord.ErrBadMoveFormat
		}
		i++
		power := Quarter
		if i < len(moves) {
			switch moves[i] {
			case '2':
				power = Half
				i++
			case '\'':
				power = ThreeQuarter
				i++
			}
		}
		*perm = Compose(*perm, table[3*int(face)+power])
	}
	return nil
}
