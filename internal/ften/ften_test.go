package ften

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/fto/internal/fto"
)

const solvedFTEN = "012345|000000|0123456789ab|000333666999|000333666999"

func TestGenerateFTENSolved(t *testing.T) {
	assert.Equal(t, solvedFTEN, GenerateFTEN(fto.SolvedRawState()))
}

func TestParseFTENSolved(t *testing.T) {
	state, err := ParseFTEN(solvedFTEN)
	require.NoError(t, err)
	assert.Equal(t, fto.SolvedRawState(), state)
}

func TestFTENRoundTripAfterScramble(t *testing.T) {
	turns, err := fto.ParseSequence("R L' U BR' B U' D' R BL'")
	require.NoError(t, err)

	state := fto.SolvedRawState()
	state.ApplySequence(turns)

	parsed, err := ParseFTEN(GenerateFTEN(state))
	require.NoError(t, err)
	assert.Equal(t, state, parsed)
}

func TestParseFTENErrors(t *testing.T) {
	tests := []struct {
		name     string
		notation string
	}{
		{"empty", ""},
		{"too few fields", "012345|000000|0123456789ab|000333666999"},
		{"corners too short", "01234|000000|0123456789ab|000333666999|000333666999"},
		{"corner digit out of range", "012346|000000|0123456789ab|000333666999|000333666999"},
		{"repeated corner", "012344|000000|0123456789ab|000333666999|000333666999"},
		{"odd corner permutation", "102345|000000|0123456789ab|000333666999|000333666999"},
		{"odd orientation parity", "012345|000001|0123456789ab|000333666999|000333666999"},
		{"orientation not binary", "012345|000002|0123456789ab|000333666999|000333666999"},
		{"bad edge character", "012345|000000|0123456789ax|000333666999|000333666999"},
		{"odd edge permutation", "012345|000000|1023456789ab|000333666999|000333666999"},
		{"centre label count wrong", "012345|000000|0123456789ab|000033666999|000333666999"},
		{"centre label invalid", "012345|000000|0123456789ab|000333666995|000333666999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFTEN(tt.notation)
			assert.Error(t, err)
		})
	}
}

func TestParseFTENAcceptsEvenSwaps(t *testing.T) {
	// Two corner swaps keep the permutation even.
	state, err := ParseFTEN("103245|000000|0123456789ab|000333666999|000333666999")
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 3, 2, 4, 5}, state.Corners)
}

func TestValidateRejectsBadOrientation(t *testing.T) {
	state := fto.SolvedRawState()
	state.CornerOrientation = 0b100000
	assert.Error(t, Validate(state))

	state.CornerOrientation = 0b100001
	assert.NoError(t, Validate(state))
}
