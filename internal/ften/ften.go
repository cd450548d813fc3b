// Package ften implements FTEN, a compact text notation for a raw FTO
// state. An FTEN string has five '|'-separated fields: corner positions
// as six digits, corner orientation as six binary digits (MSB first),
// edge positions as twelve base-12 digits (0-9, a, b), then the up and
// down centre face labels as twelve digits each. The solved state is
//
//	012345|000000|0123456789ab|000333666999|000333666999
package ften

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/fto/internal/fto"
)

const edgeDigits = "0123456789ab"

// GenerateFTEN returns the FTEN string for a raw state.
func GenerateFTEN(state *fto.RawState) string {
	var sb strings.Builder

	for _, c := range state.Corners {
		sb.WriteByte('0' + c)
	}
	sb.WriteByte('|')

	fmt.Fprintf(&sb, "%06b", state.CornerOrientation)
	sb.WriteByte('|')

	for _, e := range state.Edges {
		sb.WriteByte(edgeDigits[e])
	}
	sb.WriteByte('|')

	for _, c := range state.UpCentres {
		sb.WriteByte('0' + c)
	}
	sb.WriteByte('|')

	for _, c := range state.DownCentres {
		sb.WriteByte('0' + c)
	}

	return sb.String()
}

// ParseFTEN parses an FTEN string into a raw state, validating that the
// result is a reachable puzzle configuration.
func ParseFTEN(notation string) (*fto.RawState, error) {
	fields := strings.Split(strings.TrimSpace(notation), "|")
	if len(fields) != 5 {
		return nil, fmt.Errorf("FTEN needs 5 fields separated by '|', got %d", len(fields))
	}

	corners, err := parseDigits(fields[0], 6, 5)
	if err != nil {
		return nil, fmt.Errorf("corners field: %v", err)
	}

	orientation, err := parseOrientation(fields[1])
	if err != nil {
		return nil, fmt.Errorf("orientation field: %v", err)
	}

	edges, err := parseEdges(fields[2])
	if err != nil {
		return nil, fmt.Errorf("edges field: %v", err)
	}

	upCentres, err := parseDigits(fields[3], 12, 9)
	if err != nil {
		return nil, fmt.Errorf("up centres field: %v", err)
	}

	downCentres, err := parseDigits(fields[4], 12, 9)
	if err != nil {
		return nil, fmt.Errorf("down centres field: %v", err)
	}

	state := fto.NewRawState(corners, orientation, edges, upCentres, downCentres)
	if err := Validate(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Validate checks that a raw state is a reachable configuration: even
// corner and edge permutations, even orientation parity, and exactly
// three centres of each face label in each centre group.
func Validate(state *fto.RawState) error {
	if err := validatePermutation(state.Corners, 6); err != nil {
		return fmt.Errorf("corners: %v", err)
	}
	if !fto.IsEvenParity(state.Corners) {
		return fmt.Errorf("corner permutation %v has odd parity", state.Corners)
	}

	if state.CornerOrientation >= 64 {
		return fmt.Errorf("corner orientation %d does not fit in 6 bits", state.CornerOrientation)
	}
	parity := false
	for _, flipped := range fto.OrientationBits(state.CornerOrientation) {
		parity = parity != flipped
	}
	if parity {
		return fmt.Errorf("corner orientation %06b has odd parity", state.CornerOrientation)
	}

	if err := validatePermutation(state.Edges, 12); err != nil {
		return fmt.Errorf("edges: %v", err)
	}
	if !fto.IsEvenParity(state.Edges) {
		return fmt.Errorf("edge permutation %v has odd parity", state.Edges)
	}

	if err := validateCentres(state.UpCentres); err != nil {
		return fmt.Errorf("up centres: %v", err)
	}
	if err := validateCentres(state.DownCentres); err != nil {
		return fmt.Errorf("down centres: %v", err)
	}
	return nil
}

func validatePermutation(perm []uint8, n int) error {
	if len(perm) != n {
		return fmt.Errorf("expected %d pieces, got %d", n, len(perm))
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if int(p) >= n {
			return fmt.Errorf("piece %d out of range", p)
		}
		if seen[p] {
			return fmt.Errorf("piece %d appears more than once", p)
		}
		seen[p] = true
	}
	return nil
}

func validateCentres(centres []uint8) error {
	if len(centres) != 12 {
		return fmt.Errorf("expected 12 centres, got %d", len(centres))
	}
	counts := make(map[uint8]int)
	for _, c := range centres {
		counts[c]++
	}
	for _, label := range []uint8{0, 3, 6, 9} {
		if counts[label] != 3 {
			return fmt.Errorf("face label %d appears %d times, want 3", label, counts[label])
		}
	}
	return nil
}

func parseDigits(field string, length int, maxDigit uint8) ([]uint8, error) {
	if len(field) != length {
		return nil, fmt.Errorf("expected %d characters, got %d", length, len(field))
	}
	values := make([]uint8, length)
	for i := 0; i < length; i++ {
		ch := field[i]
		if ch < '0' || ch > '0'+maxDigit {
			return nil, fmt.Errorf("invalid character %q", ch)
		}
		values[i] = ch - '0'
	}
	return values, nil
}

func parseOrientation(field string) (uint8, error) {
	if len(field) != 6 {
		return 0, fmt.Errorf("expected 6 bits, got %d characters", len(field))
	}
	var orientation uint8
	for i := 0; i < 6; i++ {
		orientation *= 2
		switch field[i] {
		case '0':
		case '1':
			orientation++
		default:
			return 0, fmt.Errorf("invalid bit %q", field[i])
		}
	}
	return orientation, nil
}

func parseEdges(field string) ([]uint8, error) {
	if len(field) != 12 {
		return nil, fmt.Errorf("expected 12 characters, got %d", len(field))
	}
	values := make([]uint8, 12)
	for i := 0; i < 12; i++ {
		idx := strings.IndexByte(edgeDigits, field[i])
		if idx < 0 {
			return nil, fmt.Errorf("invalid character %q", field[i])
		}
		values[i] = uint8(idx)
	}
	return values, nil
}
