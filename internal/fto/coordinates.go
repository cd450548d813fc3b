package fto

import "fmt"

// Sizes of the coordinate families.
const (
	NumCornerPerms        = 360
	NumCornerOrientations = 32
	NumCornerStates       = 11_520
	NumEdgePerms          = 239_500_800
	NumFacePiecePerms     = 369_600
	NumAcrossFacePerms    = 34_650
)

const (
	numCorners = 6
	numEdges   = 12
	numCentres = 12
)

// Down-centre slots flanking each corner slot, for the triple-centre view.
var (
	cornerMainTripleCentre    = [numCorners]uint8{6, 0, 3, 11, 10, 9}
	cornerFlippedTripleCentre = [numCorners]uint8{1, 4, 7, 2, 5, 8}
)

var binomial = precomputeBinomialTable()

func precomputeBinomialTable() [13][13]uint32 {
	var table [13][13]uint32
	for n := 0; n <= 12; n++ {
		table[n][0] = 1
		for k := 1; k <= n; k++ {
			table[n][k] = table[n-1][k-1] + table[n-1][k]
		}
	}
	return table
}

// Coordinate identifies one of the integer projections of the puzzle
// state. Each family is a bijection between its reachable piece states
// and the range [0, Size).
type Coordinate int

const (
	CornerState Coordinate = iota
	EdgeInFace
	EdgeAcrossFaces
	UpCentre
	DownCentre
	TripleCentre
)

func (c Coordinate) String() string {
	return []string{
		"CornerState", "EdgeInFace", "EdgeAcrossFaces",
		"UpCentre", "DownCentre", "TripleCentre",
	}[c]
}

// StateCoordinates returns the five families that make up a CoordState.
// TripleCentre is a re-ordered view of the down centres and is not part
// of the state tuple.
func StateCoordinates() []Coordinate {
	return []Coordinate{CornerState, EdgeInFace, EdgeAcrossFaces, UpCentre, DownCentre}
}

// AllCoordinates returns every coordinate family, including TripleCentre.
func AllCoordinates() []Coordinate {
	return append(StateCoordinates(), TripleCentre)
}

// Size returns the number of distinct values in this family.
func (c Coordinate) Size() int {
	switch c {
	case CornerState:
		return NumCornerStates
	case EdgeAcrossFaces:
		return NumAcrossFacePerms
	default:
		return NumFacePiecePerms
	}
}

// TagByte returns the byte identifying this family in persisted tables.
func (c Coordinate) TagByte() byte {
	return []byte{'C', 'E', 'A', 'U', 'D', 'T'}[c]
}

// CoordinateFromTagByte is the inverse of TagByte.
func CoordinateFromTagByte(b byte) (Coordinate, error) {
	for _, c := range AllCoordinates() {
		if c.TagByte() == b {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unrecognised coordinate tag byte %#x", b)
}

// Encode converts a piece-state vector into this family's coordinate.
func (c Coordinate) Encode(state []uint8) uint32 {
	switch c {
	case CornerState:
		return cornerStateToCoord(state)
	case EdgeAcrossFaces:
		return acrossFaceToCoord(state)
	default:
		return facePositionToCoord(state)
	}
}

// Decode converts a coordinate back into a piece-state vector. It is the
// exact inverse of Encode on every value in [0, Size).
func (c Coordinate) Decode(coord uint32) []uint8 {
	switch c {
	case CornerState:
		return invertCoordToCornerState(coord)
	case EdgeAcrossFaces:
		return invertCoordToAcrossFace(coord)
	default:
		return invertCoordToFacePositions(coord)
	}
}

// applyTurn advances a decoded piece state of this family by one raw
// turn. CornerState carries orientation and uses the fused operator;
// every other family is a plain permutation.
func (c Coordinate) applyTurn(state []uint8, turn *RawTurn) {
	switch c {
	case CornerState:
		ApplyFullCorner(state, turn.CornerPerm[:], turn.CornerOrient)
	case EdgeInFace, EdgeAcrossFaces:
		ApplyPermutation(state, turn.Edges[:])
	case UpCentre:
		ApplyPermutation(state, turn.UpCentres[:])
	case DownCentre:
		ApplyPermutation(state, turn.DownCentres[:])
	case TripleCentre:
		ApplyPermutation(state, turn.TripleCentres[:])
	}
}

// permutationToCoord encodes an even permutation of up to 12 pieces.
// For each position from the right we count the elements before it that
// belong after it, then treat those counts as digits of a mixed-radix
// number. The two leftmost pieces are not encoded as they are determined
// by the even parity invariant.
func permutationToCoord(positions []uint8) uint32 {
	var coord uint32
	for i := len(positions) - 1; i >= 2; i-- {
		for j := 0; j < i; j++ {
			if positions[i] < positions[j] {
				coord++
			}
		}
		if i > 2 {
			coord *= uint32(i)
		}
	}
	return coord
}

// invertCoordToPermutation decodes a permutation coordinate into an even
// permutation of n pieces.
func invertCoordToPermutation(n int, coord uint32) []uint8 {
	perm := invertCoordToPermutationIgnoreParity(n, coord)
	if !IsEvenParity(perm) {
		perm[0], perm[1] = perm[1], perm[0]
	}
	return perm
}

func invertCoordToPermutationIgnoreParity(n int, coord uint32) []uint8 {
	perm := make([]uint8, n)
	available := make([]uint8, n)
	for i := range available {
		available[i] = uint8(n - 1 - i)
	}
	factors := permutationFactors(n)
	for i := n - 1; i >= 0; i-- {
		idx := int(coord) / factors[i]
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
		coord %= uint32(factors[i])
	}
	return perm
}

func permutationFactors(n int) []int {
	factors := make([]int, n)
	for i := range factors {
		factors[i] = 1
	}
	for i := 3; i < n; i++ {
		factors[i] = factors[i-1] * i
	}
	return factors
}

// cornerStateToCoord encodes a fused corner state (six slots of
// position*2 + orientation bit) as orientation * 360 + permutation.
// Only the orientation bits of slots 1..5 are encoded; slot 0 is
// determined by parity.
func cornerStateToCoord(state []uint8) uint32 {
	var orientation uint32
	for _, s := range state[1:] {
		orientation *= 2
		orientation += uint32(s % 2)
	}
	return permutationToCoord(state) + orientation*NumCornerPerms
}

func invertCoordToCornerState(coord uint32) []uint8 {
	state := invertCoordToPermutation(numCorners, coord%NumCornerPerms)
	orientationCoord := coord / NumCornerPerms
	var firstFlip uint8
	for i := numCorners - 1; i >= 1; i-- {
		flip := uint8(orientationCoord % 2)
		orientationCoord /= 2
		firstFlip ^= flip
		state[i] = state[i]*2 + flip
	}
	state[0] = state[0]*2 + firstFlip
	return state
}

// facePositionToCoord encodes the positions of 4 groups of 3
// interchangeable pieces (values are face labels, multiples of 3). Three
// sub-coordinates are built, one per group, each ignoring the pieces of
// groups already encoded; the fourth group is determined. Sub-coordinate
// ranges are C(12,3), C(9,3) and C(6,3), combined to a total range of
// 369 600. The same codec serves edges when edges from the same up face
// are treated as interchangeable; combined with the across-face
// coordinate this recovers the full edge permutation.
func facePositionToCoord(positions []uint8) uint32 {
	return subPermutationCoord(positions, 4, 3)
}

func invertCoordToFacePositions(coord uint32) []uint8 {
	return invertCoordToSubPermutation(coord, 3)
}

// acrossFaceToCoord is the orthogonal edge projection: edges grouped by
// index mod 3 rather than index / 3. A fixed pre-permutation maps the
// mod-3 classes onto contiguous blocks so the generic group codec
// applies, with 3 groups of 4 and a range of 34 650.
func acrossFaceToCoord(edges []uint8) uint32 {
	positions := []uint8{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11}
	ordering := []uint8{0, 3, 6, 9, 1, 4, 7, 10, 2, 5, 8, 11}
	ApplyPermutation(positions, edges)
	ApplyPermutation(positions, ordering)
	return subPermutationCoord(positions, 3, 4)
}

func invertCoordToAcrossFace(coord uint32) []uint8 {
	positions := []uint8{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}
	ordering := []uint8{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11}
	state := invertCoordToSubPermutation(coord, 4)
	ApplyPermutation(state, ordering)
	ApplyPermutation(positions, state)
	return positions
}

// subPermutationCoord encodes the positions of numGroups groups of
// numPerGroup identical pieces. For each group, scanning left to right,
// n counts positions holding a piece of this or an earlier group and k
// counts positions holding this group's piece; every earlier-group
// position contributes C(n, k) combinations that sort before this
// arrangement. Counters start at -1 and are incremented before the test.
func subPermutationCoord(positions []uint8, numGroups, numPerGroup int) uint32 {
	var coord uint32
	for i := numGroups - 1; i >= 0; i-- {
		face := numPerGroup * (i + 1)
		n, k := -1, -1
		for _, position := range positions {
			piece := int(position) / numPerGroup * numPerGroup
			if piece <= face {
				n++
			}
			if piece == face {
				k++
			}
			if n >= 0 && k >= 0 && piece <= face && piece != face {
				coord += binomial[n][k]
			}
		}
		multiplier := face
		divider := 1
		for j := 1; j < numPerGroup; j++ {
			multiplier *= face - j
			divider *= j + 1
		}
		coord *= uint32(multiplier / divider)
	}
	return coord
}

func invertCoordToSubPermutation(coord uint32, numPerGroup int) []uint8 {
	state := make([]uint8, numCentres)
	subCoords := getSubCoords(coord, numPerGroup)
	numLevels := numCentres/numPerGroup - 1

	for i := 0; i < numLevels; i++ {
		pieces := invertSingleGroupCoord(
			subCoords[numLevels-1-i],
			numPerGroup,
			numCentres-numPerGroup*i,
			uint8(numCentres-numPerGroup*(i+1)))

		for j := 0; j < numCentres; j++ {
			if state[j] == 0 {
				piece := pieces[len(pieces)-1]
				pieces = pieces[:len(pieces)-1]
				if piece != 0xFF {
					state[j] = piece
				}
			}
		}
	}
	return state
}

func getSubCoords(coord uint32, numPerGroup int) []uint32 {
	numLevels := numCentres/numPerGroup - 1
	var factors []uint32
	switch numPerGroup {
	case 4:
		factors = []uint32{70, 495}
	case 3:
		factors = []uint32{20, 84, 220}
	default:
		panic(fmt.Sprintf("unsupported group size %d", numPerGroup))
	}

	subCoords := make([]uint32, numLevels)
	for i := 0; i < numLevels; i++ {
		subCoords[i] = coord % factors[i]
		coord /= factors[i]
	}
	return subCoords
}

// invertSingleGroupCoord decodes one group's sub-coordinate into piece
// placements over the currently unoccupied positions. The result is in
// reverse order so callers can pop pieces off the end in slot order;
// 0xFF marks positions this group leaves unoccupied.
func invertSingleGroupCoord(coord uint32, numPieces, numPositions int, fillPiece uint8) []uint8 {
	pieces := make([]uint8, numPositions)
	for i := range pieces {
		pieces[i] = 0xFF
	}
	numLeft := numPieces

	for j := 0; j < numPositions; j++ {
		n := numPositions - j - 1
		nChooseK := binomial[n][numLeft-1]
		if coord >= nChooseK {
			coord -= nChooseK
		} else {
			pieces[j] = fillPiece
			numLeft--
		}
		if numLeft < 1 {
			break
		}
	}
	return pieces
}
