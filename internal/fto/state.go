package fto

import (
	"fmt"
	"math/rand"
)

// RawState is the human-meaningful piece-level representation of the
// puzzle. Corners holds a permutation of 0..5; CornerOrientation packs
// one flip bit per corner, MSB-first, with even parity; Edges holds an
// even permutation of 0..11; the centre arrays hold the face label of
// each position's occupant, three copies of each of 0, 3, 6 and 9.
type RawState struct {
	Corners           []uint8
	CornerOrientation uint8
	Edges             []uint8
	UpCentres         []uint8
	DownCentres       []uint8
}

// NewRawState builds a RawState from copies of the given piece arrays.
func NewRawState(corners []uint8, orientation uint8, edges, upCentres, downCentres []uint8) *RawState {
	return &RawState{
		Corners:           append([]uint8(nil), corners...),
		CornerOrientation: orientation,
		Edges:             append([]uint8(nil), edges...),
		UpCentres:         append([]uint8(nil), upCentres...),
		DownCentres:       append([]uint8(nil), downCentres...),
	}
}

// SolvedRawState returns the solved puzzle.
func SolvedRawState() *RawState {
	return NewRawState(
		[]uint8{0, 1, 2, 3, 4, 5},
		0b000000,
		[]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[]uint8{0, 0, 0, 3, 3, 3, 6, 6, 6, 9, 9, 9},
		[]uint8{0, 0, 0, 3, 3, 3, 6, 6, 6, 9, 9, 9},
	)
}

// Apply applies a single turn to the state using the raw turn tables. An
// inverted turn is a second forward application: turns have order three.
func (s *RawState) Apply(turn Turn) {
	m := turn.Face.Turn()

	ApplyPermutation(s.Corners, m.CornerPerm[:])
	ApplyOrientation(&s.CornerOrientation, m.CornerPerm[:], m.CornerOrient)
	ApplyPermutation(s.Edges, m.Edges[:])
	ApplyPermutation(s.UpCentres, m.UpCentres[:])
	ApplyPermutation(s.DownCentres, m.DownCentres[:])

	if turn.Invert {
		s.Apply(Turn{Face: turn.Face})
	}
}

// ApplySequence applies each turn in order.
func (s *RawState) ApplySequence(turns []Turn) {
	for _, turn := range turns {
		s.Apply(turn)
	}
}

// ToCoords projects the state onto the five coordinate families.
func (s *RawState) ToCoords() CoordState {
	return CoordState{
		Corners:          s.cornerCoord(),
		EdgesWithinFaces: EdgeInFace.Encode(s.Edges),
		EdgesAcrossFaces: EdgeAcrossFaces.Encode(s.Edges),
		UpCentres:        UpCentre.Encode(s.UpCentres),
		DownCentres:      DownCentre.Encode(s.DownCentres),
	}
}

// cornerCoord fuses the permutation and orientation into the packed
// slot form expected by the CornerState codec.
func (s *RawState) cornerCoord() uint32 {
	state := append([]uint8(nil), s.Corners...)
	orientation := s.CornerOrientation
	var firstFlip uint8
	for i := numCorners - 1; i >= 1; i-- {
		flip := orientation % 2
		orientation /= 2
		firstFlip ^= flip
		state[i] = state[i]*2 + flip
	}
	state[0] = state[0]*2 + firstFlip
	return CornerState.Encode(state)
}

func (s *RawState) String() string {
	return fmt.Sprintf("corners %v orientation %06b edges %v up centres %v down centres %v",
		s.Corners, s.CornerOrientation, s.Edges, s.UpCentres, s.DownCentres)
}

// CoordState is the compact search representation: the five coordinates
// of the state tuple. The solved state is all zeros. Values are copied;
// nothing is shared between search nodes.
type CoordState struct {
	Corners          uint32
	EdgesWithinFaces uint32
	EdgesAcrossFaces uint32
	UpCentres        uint32
	DownCentres      uint32
}

// SolvedCoordState returns the solved state.
func SolvedCoordState() CoordState {
	return CoordState{}
}

// RandomRawState returns a uniformly random piece-level state whose
// invariants all hold: even permutations, even orientation parity, and
// three centres of each label. Drawing at the piece level keeps the two
// edge coordinates consistent with one another.
func RandomRawState() *RawState {
	orientation := uint8(rand.Intn(NumCornerOrientations))
	var firstFlip uint8
	for temp := orientation; temp > 0; temp /= 2 {
		firstFlip ^= temp % 2
	}
	orientation += firstFlip << 5

	return &RawState{
		Corners:           randomEvenPermutation(numCorners),
		CornerOrientation: orientation,
		Edges:             randomEvenPermutation(numEdges),
		UpCentres:         randomCentres(),
		DownCentres:       randomCentres(),
	}
}

// RandomCoordState returns the coordinates of a random piece-level
// state.
func RandomCoordState() CoordState {
	return RandomRawState().ToCoords()
}

func randomEvenPermutation(n int) []uint8 {
	perm := make([]uint8, n)
	for i, v := range rand.Perm(n) {
		perm[i] = uint8(v)
	}
	if !IsEvenParity(perm) {
		perm[0], perm[1] = perm[1], perm[0]
	}
	return perm
}

func randomCentres() []uint8 {
	centres := []uint8{0, 0, 0, 3, 3, 3, 6, 6, 6, 9, 9, 9}
	rand.Shuffle(len(centres), func(i, j int) {
		centres[i], centres[j] = centres[j], centres[i]
	})
	return centres
}

// Apply advances the state by one turn using move-table lookups.
func (s *CoordState) Apply(tables *MoveTables, turn Turn) {
	s.Corners = tables.ApplyMove(s.Corners, CornerState, turn)
	s.EdgesWithinFaces = tables.ApplyMove(s.EdgesWithinFaces, EdgeInFace, turn)
	s.EdgesAcrossFaces = tables.ApplyMove(s.EdgesAcrossFaces, EdgeAcrossFaces, turn)
	s.UpCentres = tables.ApplyMove(s.UpCentres, UpCentre, turn)
	s.DownCentres = tables.ApplyMove(s.DownCentres, DownCentre, turn)
}

// ApplySequence applies each turn in order.
func (s *CoordState) ApplySequence(tables *MoveTables, turns []Turn) {
	for _, turn := range turns {
		s.Apply(tables, turn)
	}
}

// ToRaw reconstructs the piece-level state from the coordinates.
func (s CoordState) ToRaw() *RawState {
	return &RawState{
		Corners:           s.cornerPermutation(),
		CornerOrientation: s.cornerOrientation(),
		Edges:             s.edges(),
		UpCentres:         UpCentre.Decode(s.UpCentres),
		DownCentres:       DownCentre.Decode(s.DownCentres),
	}
}

func (s CoordState) cornerPermutation() []uint8 {
	perm := CornerState.Decode(s.Corners)
	for i := range perm {
		perm[i] /= 2
	}
	return perm
}

func (s CoordState) cornerOrientation() uint8 {
	orientation := uint8(s.Corners / NumCornerPerms)
	// The coordinate stores the flip bits of corners 1..5; corner 0 is
	// whatever restores even parity.
	temp := orientation
	var firstFlip uint8
	for i := 0; i < numCorners; i++ {
		firstFlip ^= temp % 2
		temp /= 2
	}
	return orientation + firstFlip<<5
}

// edges recombines the two edge projections: the within-face coordinate
// yields the face label of each position and the across-face coordinate
// the offset within that face's class.
func (s CoordState) edges() []uint8 {
	state := EdgeInFace.Decode(s.EdgesWithinFaces)
	across := EdgeAcrossFaces.Decode(s.EdgesAcrossFaces)
	for i := range state {
		state[i] += across[i]
	}
	return state
}
