// Package wire implements the 11-byte packed wire format for a cube
// coordinate tuple: 88 bits, of which 82 carry meaning, laid out big-endian
// across byte boundaries.
package wire

import "github.com/cocosip/cubecoord/cubecoord"

// Size is the fixed length of the packed wire format, in bytes.
const Size = 11

// ToBytes11 packs t into an 11-byte buffer. It does not validate — a caller
// that needs the range/reserved-bit check should round-trip the result
// through FromBytes11.
func ToBytes11(t cubecoord.Tuple) [Size]byte {
	var p [Size]byte
	p[0] = byte(t.EpLex >> 21)
	p[1] = byte(t.EpLex >> 13)
	p[2] = byte(t.EpLex >> 5)
	p[3] = byte(t.EpLex<<3) | byte(t.EoMask>>9)
	p[4] = byte(t.EoMask >> 1)
	p[5] = byte(t.EoMask<<7) | byte(t.CpLex>>9)
	p[6] = byte(t.CpLex >> 1)
	p[7] = byte(t.CpLex<<7) | byte(t.CoMask>>6)
	p[8] = byte(t.CoMask<<2) | byte(t.PoIdxU>>1)
	p[9] = byte(t.PoIdxU<<7) | byte(t.PoIdxL<<5) | byte(t.MoSupport<<4) | byte(t.MoMask>>8)
	p[10] = byte(t.MoMask)
	return p
}

// FromBytes11 unpacks p into a coordinate tuple, validating each field in
// the order specified by the wire format and returning the first violation.
// PoIdxL and MoMask are read but not independently validated: the cube
// invariant they carry comes for free once PoIdxU == 7 and MoSupport == 0
// hold, since those are the only values this module's encoders ever
// produce.
func FromBytes11(p [Size]byte) (cubecoord.Tuple, error) {
	var t cubecoord.Tuple

	t.EpLex = int(p[0])<<21 | int(p[1])<<13 | int(p[2])<<5 | int(p[3])>>3
	if t.EpLex >= cubecoord.EdgePermutationCount {
		return cubecoord.Tuple{}, cubecoord.ErrEdgePermutationOutOfRange
	}

	t.EoMask = int(p[3]&0x07)<<9 | int(p[4])<<1 | int(p[5])>>7
	if t.EoMask >= cubecoord.EdgeOrientationCount {
		return cubecoord.Tuple{}, cubecoord.ErrEdgeOrientationOutOfRange
	}

	t.CpLex = int(p[5]&0x7f)<<9 | int(p[6])<<1 | int(p[7])>>7
	if t.CpLex >= cubecoord.CornerPermutationCount {
		return cubecoord.Tuple{}, cubecoord.ErrCornerPermutationOutOfRange
	}

	t.CoMask = int(p[7]&0x7f)<<6 | int(p[8])>>2
	if t.CoMask >= cubecoord.CornerOrientationCount {
		return cubecoord.Tuple{}, cubecoord.ErrCornerOrientationOutOfRange
	}

	t.PoIdxU = int(p[8]&0x03)<<1 | int(p[9])>>7
	if t.PoIdxU != cubecoord.NoReorientation {
		return cubecoord.Tuple{}, cubecoord.ErrPuzzleOrientationNotSupported
	}

	t.PoIdxL = int(p[9]>>5) & 0x03
	t.MoSupport = int(p[9]>>4) & 0x01
	if t.MoSupport != 0 {
		return cubecoord.Tuple{}, cubecoord.ErrCenterOrientationNotSupported
	}

	t.MoMask = int(p[9]&0x0f)<<8 | int(p[10])
	return t, nil
}
