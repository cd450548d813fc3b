package fto

import (
	"fmt"
	"strings"
)

// Face represents one of the eight faces of the octahedron. The puzzle
// sits with the D face flat on the table and the U face toward you; U, R,
// F and L are visible, with D opposite U, B opposite F, BL opposite R and
// BR opposite L.
type Face int

const (
	Up Face = iota
	Front
	BackLeft
	BackRight
	Left
	Right
	Back
	Down
)

func (f Face) String() string {
	return []string{"U", "F", "BL", "BR", "L", "R", "B", "D"}[f]
}

// TagByte returns the byte identifying this face in persisted tables.
func (f Face) TagByte() byte {
	return []byte{'U', 'F', 'P', 'S', 'L', 'R', 'B', 'D'}[f]
}

// FaceFromTagByte is the inverse of TagByte.
func FaceFromTagByte(b byte) (Face, error) {
	for _, f := range AllFaces() {
		if f.TagByte() == b {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unrecognised face tag byte %#x", b)
}

// Primary returns the axis representative for this face. U, F, BL and BR
// are their own primaries; each remaining face maps to the opposite face
// on its axis.
func (f Face) Primary() Face {
	switch f {
	case Down:
		return Up
	case Back:
		return Front
	case Right:
		return BackLeft
	case Left:
		return BackRight
	default:
		return f
	}
}

// UpFaces returns U and the three faces that meet it only at a corner.
func UpFaces() []Face {
	return []Face{Up, Front, BackLeft, BackRight}
}

// DownFaces returns D and the three faces that meet it only at a corner.
func DownFaces() []Face {
	return []Face{Left, Right, Back, Down}
}

// AllFaces returns every face in canonical order.
func AllFaces() []Face {
	return []Face{Up, Front, BackLeft, BackRight, Left, Right, Back, Down}
}

// RawTurn records the effect of a single clockwise turn of one face on
// every piece group. Permutation vectors follow the convention that the
// piece arriving in position i comes from position v[i]. CornerOrient is
// a 6-bit MSB-first mask, applied after permutation: a set bit means the
// piece arriving in that slot is flipped relative to where it came from.
type RawTurn struct {
	CornerPerm    [6]uint8
	CornerOrient  uint8
	Edges         [12]uint8
	UpCentres     [12]uint8
	DownCentres   [12]uint8
	TripleCentres [12]uint8
}

// Piece orderings, used throughout:
// Corners:      UBL UBR UF DB DR DL
// Edges:        UB UR UL BLB BLL BLD BRR BRB BRD FL FR FD
// Up centres:   UBL UBR UF BLU BLF BLBR BRU BRBL BRF FU FBR FBL
// Down centres: BR BL BD RL RB RD LB LR LD DL DR DB
var (
	turnU = RawTurn{
		CornerPerm:    [6]uint8{2, 0, 1, 3, 4, 5},
		CornerOrient:  0b000000,
		Edges:         [12]uint8{2, 0, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		UpCentres:     [12]uint8{2, 0, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		DownCentres:   [12]uint8{6, 7, 2, 0, 1, 5, 3, 4, 8, 9, 10, 11},
		TripleCentres: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	turnF = RawTurn{
		CornerPerm:    [6]uint8{0, 1, 5, 3, 2, 4},
		CornerOrient:  0b001001,
		Edges:         [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 9, 10},
		UpCentres:     [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 9, 10},
		DownCentres:   [12]uint8{0, 1, 2, 8, 4, 7, 6, 9, 10, 5, 3, 11},
		TripleCentres: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	turnBL = RawTurn{
		CornerPerm:    [6]uint8{3, 1, 2, 5, 4, 0},
		CornerOrient:  0b100100,
		Edges:         [12]uint8{0, 1, 2, 5, 3, 4, 6, 7, 8, 9, 10, 11},
		UpCentres:     [12]uint8{0, 1, 2, 5, 3, 4, 6, 7, 8, 9, 10, 11},
		DownCentres:   [12]uint8{0, 11, 9, 3, 4, 5, 2, 7, 1, 6, 10, 8},
		TripleCentres: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	turnBR = RawTurn{
		CornerPerm:    [6]uint8{0, 4, 2, 1, 3, 5},
		CornerOrient:  0b010010,
		Edges:         [12]uint8{0, 1, 2, 3, 4, 5, 8, 6, 7, 9, 10, 11},
		UpCentres:     [12]uint8{0, 1, 2, 3, 4, 5, 8, 6, 7, 9, 10, 11},
		DownCentres:   [12]uint8{5, 1, 4, 3, 10, 11, 6, 7, 8, 9, 2, 0},
		TripleCentres: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	turnL = RawTurn{
		CornerPerm:    [6]uint8{5, 1, 0, 3, 4, 2},
		CornerOrient:  0b101000,
		Edges:         [12]uint8{0, 1, 4, 3, 9, 5, 6, 7, 8, 2, 10, 11},
		UpCentres:     [12]uint8{4, 1, 3, 11, 9, 5, 6, 7, 8, 0, 10, 2},
		DownCentres:   [12]uint8{0, 1, 2, 3, 4, 5, 8, 6, 7, 9, 10, 11},
		TripleCentres: [12]uint8{0, 9, 2, 1, 4, 5, 6, 7, 8, 3, 10, 11},
	}
	turnR = RawTurn{
		CornerPerm:    [6]uint8{0, 2, 4, 3, 1, 5},
		CornerOrient:  0b011000,
		Edges:         [12]uint8{0, 10, 2, 3, 4, 5, 1, 7, 8, 9, 6, 11},
		UpCentres:     [12]uint8{0, 9, 10, 3, 4, 5, 2, 7, 1, 8, 6, 11},
		DownCentres:   [12]uint8{0, 1, 2, 5, 3, 4, 6, 7, 8, 9, 10, 11},
		TripleCentres: [12]uint8{7, 1, 2, 3, 4, 5, 6, 10, 8, 9, 0, 11},
	}
	turnB = RawTurn{
		CornerPerm:    [6]uint8{1, 3, 2, 0, 4, 5},
		CornerOrient:  0b110000,
		Edges:         [12]uint8{7, 1, 2, 0, 4, 5, 6, 3, 8, 9, 10, 11},
		UpCentres:     [12]uint8{6, 7, 2, 1, 4, 0, 5, 3, 8, 9, 10, 11},
		DownCentres:   [12]uint8{2, 0, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		TripleCentres: [12]uint8{0, 1, 2, 3, 11, 5, 4, 7, 8, 9, 10, 6},
	}
	turnD = RawTurn{
		CornerPerm:    [6]uint8{0, 1, 2, 4, 5, 3},
		CornerOrient:  0b000000,
		Edges:         [12]uint8{0, 1, 2, 3, 4, 8, 6, 7, 11, 9, 10, 5},
		UpCentres:     [12]uint8{0, 1, 2, 3, 7, 8, 6, 10, 11, 9, 4, 5},
		DownCentres:   [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 9, 10},
		TripleCentres: [12]uint8{0, 5, 2, 3, 4, 8, 6, 7, 1, 9, 10, 11},
	}
)

// Turn retrieves the raw turn record for this face.
func (f Face) Turn() *RawTurn {
	switch f {
	case Up:
		return &turnU
	case Front:
		return &turnF
	case BackLeft:
		return &turnBL
	case BackRight:
		return &turnBR
	case Left:
		return &turnL
	case Right:
		return &turnR
	case Back:
		return &turnB
	default:
		return &turnD
	}
}

// A Turn is a clockwise or inverted turn of one face. Turns have order
// three, so the inverse of a turn is the same face turned twice.
type Turn struct {
	Face   Face
	Invert bool
}

func (t Turn) String() string {
	if t.Invert {
		return t.Face.String() + "'"
	}
	return t.Face.String()
}

// Inverse returns the turn that undoes this one.
func (t Turn) Inverse() Turn {
	return Turn{Face: t.Face, Invert: !t.Invert}
}

// AllTurns returns all sixteen (face, invert) pairs in canonical order.
func AllTurns() []Turn {
	turns := make([]Turn, 0, 16)
	for _, face := range AllFaces() {
		turns = append(turns, Turn{Face: face}, Turn{Face: face, Invert: true})
	}
	return turns
}

// ParseTurn parses a single turn from notation such as "U", "BL'" or "D'".
func ParseTurn(notation string) (Turn, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Turn{}, fmt.Errorf("empty turn notation")
	}

	turn := Turn{}
	if strings.HasSuffix(notation, "'") {
		turn.Invert = true
		notation = notation[:len(notation)-1]
	}

	for _, face := range AllFaces() {
		if notation == face.String() {
			turn.Face = face
			return turn, nil
		}
	}
	return Turn{}, fmt.Errorf("unknown turn notation: %s", notation)
}

// ParseSequence parses a whitespace-separated sequence of turns.
func ParseSequence(sequence string) ([]Turn, error) {
	parts := strings.Fields(sequence)
	turns := make([]Turn, 0, len(parts))
	for _, part := range parts {
		turn, err := ParseTurn(part)
		if err != nil {
			return nil, fmt.Errorf("error parsing turn '%s': %v", part, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// FormatSequence renders a turn sequence as space-separated notation.
func FormatSequence(turns []Turn) string {
	var sb strings.Builder
	for i, turn := range turns {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(turn.String())
	}
	return sb.String()
}
