package fto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruningTableSolvedIsZero(t *testing.T) {
	pruning := sharedPruningTable()

	for _, family := range StateCoordinates() {
		bound := pruning.DistanceLowerBound([]uint32{0}, []Coordinate{family})
		assert.Equal(t, uint8(0), bound, "%v", family)
	}
}

func TestPruningTableFullyFilled(t *testing.T) {
	pruning := sharedPruningTable()

	for _, family := range StateCoordinates() {
		table := pruning.tables[family]
		require.Len(t, table, family.Size())
		for coord, distance := range table {
			require.NotEqual(t, pruningSentinel, distance, "%v coord %d unfilled", family, coord)
		}
	}
}

// Each pruning entry must be consistent with its neighbours: a single
// turn changes the distance by at most one, and every non-zero entry has
// a neighbour one closer to solved.
func TestPruningTableNeighbourConsistency(t *testing.T) {
	tables := sharedMoveTables()
	pruning := sharedPruningTable()

	for _, family := range StateCoordinates() {
		table := pruning.tables[family]
		moveTable := tables.Table(family)
		size := uint32(family.Size())
		step := size / 1009
		if step == 0 {
			step = 1
		}

		for coord := uint32(0); coord < size; coord += step {
			distance := table[coord]
			hasCloser := false
			for _, turn := range AllTurns() {
				next := moveTable.ApplyMove(coord, turn)
				diff := int(table[next]) - int(distance)
				require.LessOrEqual(t, diff, 1, "%v: %d -> %d jumps", family, coord, next)
				require.GreaterOrEqual(t, diff, -1, "%v: %d -> %d jumps", family, coord, next)
				if diff == -1 {
					hasCloser = true
				}
			}
			if distance > 0 {
				assert.True(t, hasCloser, "%v: coord %d at distance %d has no closer neighbour", family, coord, distance)
			}
		}
	}
}

// Restricting the face set must never shrink a distance: turns of the
// four up faces alone solve the corner family more slowly than the full
// set.
func TestPruningTableRestrictedFaces(t *testing.T) {
	tables := sharedMoveTables()

	restricted := NewPruningTable(UpFaces())
	restricted.PopulateCoordinate(tables.Table(CornerState), CornerState)

	full := sharedPruningTable()

	for coord := uint32(0); coord < NumCornerStates; coord += 7 {
		coords := []uint32{coord}
		families := []Coordinate{CornerState}
		assert.GreaterOrEqual(t,
			restricted.DistanceLowerBound(coords, families),
			full.DistanceLowerBound(coords, families),
			"coord %d", coord)
	}
}

func TestDistanceLowerBoundTakesMax(t *testing.T) {
	pruning := sharedPruningTable()
	tables := sharedMoveTables()

	state := SolvedCoordState()
	turns, err := ParseSequence("R L' U BR'")
	require.NoError(t, err)
	state.ApplySequence(tables, turns)

	coords := []uint32{state.EdgesWithinFaces, state.DownCentres}
	families := []Coordinate{EdgeInFace, DownCentre}

	bound := pruning.DistanceLowerBound(coords, families)
	edgeOnly := pruning.DistanceLowerBound(coords[:1], families[:1])
	centreOnly := pruning.DistanceLowerBound(coords[1:], families[1:])

	assert.Equal(t, max(edgeOnly, centreOnly), bound)
	assert.LessOrEqual(t, bound, uint8(4), "four turns from solved cannot be further than four")
}
