package cubecoord

// Range limits for the four coordinate fields that carry real information.
// The remaining four fields (PoIdxU, PoIdxL, MoSupport, MoMask) are reserved
// and only one combination of their values is legal, per the invariants
// below.
const (
	CornerPermutationCount = 40320     // 8!
	CornerOrientationCount = 6561      // 3^8
	EdgePermutationCount   = 479001600 // 12!
	EdgeOrientationCount   = 4096      // 2^12

	// NoReorientation is the only legal value of PoIdxU: the tuple
	// describes a cube with no whole-cube reorientation applied.
	NoReorientation = 7
)

// Tuple is the in-memory coordinate representation of a cube state: corner
// and edge permutation/orientation, plus the reserved whole-cube and center
// orientation fields.
type Tuple struct {
	CpLex     int // corner permutation ordinal, 0..40319
	CoMask    int // corner orientation, base-3 digits of 8 twists, 0..6560
	EpLex     int // edge permutation ordinal, 0..479001599
	EoMask    int // edge orientation, 12 flip bits, 0..4095
	PoIdxU    int // whole-cube orientation up-face index; only 7 is legal
	PoIdxL    int // whole-cube orientation left-within-up index; must be 0
	MoSupport int // center-orientation-supported flag; must be 0
	MoMask    int // center orientation; must be 0 when MoSupport is 0
}

// Normalized reports whether t carries the only legal combination of the
// reserved fields (no reorientation, no supercube support). Every tuple this
// module produces satisfies this; it is not required of tuples read from an
// external source until they pass through the wire or view decoders, which
// enforce it explicitly.
func (t Tuple) Normalized() bool {
	return t.PoIdxU == NoReorientation && t.PoIdxL == 0 && t.MoSupport == 0 && t.MoMask == 0
}
