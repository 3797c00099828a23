// Package tables holds the canonical facelet-position geometry shared by
// every view codec (sticker, facelet-permutation, Reid): which of the 54
// facelet slots belong to which cubie, and in what order.
//
// Facelets are numbered 0..53 as six 3x3 faces in column-major order per
// face, face order Left, Front, Right, Back, Up, Down (so face f occupies
// facelets 9*f..9*f+8, and the center of face f is always at 9*f+4).
package tables

// Face identifies one of the six faces in storage order.
type Face int

const (
	L Face = iota
	F
	R
	B
	U
	D
)

// FaceOf returns the face a facelet index belongs to.
func FaceOf(facelet int) Face {
	return Face(facelet / 9)
}

// EdgePair is the pair of facelet indices occupied by an edge cubie, in the
// letter order of its Reid name (e.g. for "UF", A is the facelet on U, B is
// the facelet on F).
type EdgePair struct {
	A, B int
}

// CornerTriple is the triple of facelet indices occupied by a corner cubie,
// in the letter order of its Reid name.
type CornerTriple struct {
	A, B, C int
}

// EdgeNames is the canonical Reid enumeration order of the 12 edge cubies.
var EdgeNames = [12]string{
	"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL",
}

// EdgePositions[i] gives the facelet pair for EdgeNames[i], derived from the
// cube's geometry: each face's column-major grid against a right-handed
// frame with x toward R, y toward U, z toward F.
var EdgePositions = [12]EdgePair{
	{41, 12}, // UF
	{43, 21}, // UR
	{39, 30}, // UB
	{37, 3},  // UL
	{48, 14}, // DF
	{52, 23}, // DR
	{50, 32}, // DB
	{46, 5},  // DL
	{16, 19}, // FR
	{10, 7},  // FL
	{28, 25}, // BR
	{34, 1},  // BL
}

// CornerNames is the canonical Reid enumeration order of the 8 corner
// cubies.
var CornerNames = [8]string{
	"UFR", "URB", "UBL", "ULF", "DRF", "DFL", "DLB", "DBR",
}

// CornerPositions[i] gives the facelet triple for CornerNames[i], in the
// same clockwise-from-outside order as the cubie's name.
var CornerPositions = [8]CornerTriple{
	{44, 15, 18}, // UFR
	{42, 24, 27}, // URB
	{36, 33, 0},  // UBL
	{38, 6, 9},   // ULF
	{51, 20, 17}, // DRF
	{45, 11, 8},  // DFL
	{47, 2, 35},  // DLB
	{53, 29, 26}, // DBR
}

// CenterStorageOrder lists the facelet index of each face's center, in
// storage face order (L, F, R, B, U, D). Centers never move on this puzzle,
// so a cube is in canonical (unreoriented) position exactly when the color
// observed at CenterStorageOrder[i] equals i itself (sticker view), or the
// facelet value observed there equals CenterStorageOrder[i] (facelet view).
var CenterStorageOrder = [6]int{4, 13, 22, 31, 40, 49}
