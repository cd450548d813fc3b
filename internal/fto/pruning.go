package fto

const pruningSentinel = ^uint8(0)

// PruningTable stores, for each coordinate family, the minimum number of
// turns of an allowed face set needed to bring each coordinate to zero.
// Each per-family table is an admissible lower bound on the full solve
// distance, so the maximum over families is too.
type PruningTable struct {
	tables map[Coordinate][]uint8
	faces  []Face
}

// NewPruningTable creates an empty pruning table restricted to turns of
// the given faces.
func NewPruningTable(faces []Face) *PruningTable {
	return &PruningTable{
		tables: make(map[Coordinate][]uint8),
		faces:  append([]Face(nil), faces...),
	}
}

func (p *PruningTable) allowedTurns() []Turn {
	turns := make([]Turn, 0, len(p.faces)*2)
	for _, face := range p.faces {
		turns = append(turns, Turn{Face: face, Invert: true}, Turn{Face: face})
	}
	return turns
}

// Populate fills the distance tables for every state coordinate family.
func (p *PruningTable) Populate(moveTables *MoveTables) {
	for _, coord := range StateCoordinates() {
		p.PopulateCoordinate(moveTables.Table(coord), coord)
	}
}

// PopulateCoordinate fills one family's table by breadth-first search
// from the solved coordinate. The fill runs forward while the frontier
// is small, then switches to backward scanning once the frontier would
// exceed a third of the table; the crossover point is a tuning choice,
// not a correctness one.
func (p *PruningTable) PopulateCoordinate(moveTable *MoveTable, coord Coordinate) {
	numCoords := coord.Size()

	table := make([]uint8, numCoords)
	for i := range table {
		table[i] = pruningSentinel
	}

	distance := uint8(1)
	table[0] = 0

	remaining := numCoords - 1
	forwardStopPoint := numCoords / 3

	p.forwardFill(table, moveTable, &distance, &remaining, forwardStopPoint)
	p.backwardFill(table, moveTable, &distance, &remaining)

	p.tables[coord] = table
}

func (p *PruningTable) forwardFill(table []uint8, moveTable *MoveTable, distance *uint8, remaining *int, forwardStopPoint int) {
	previousFillList := []uint32{0}
	allowedTurns := p.allowedTurns()
	for *remaining > 0 && len(previousFillList) < forwardStopPoint {
		var nextFillList []uint32
		for _, coord := range previousFillList {
			for _, turn := range allowedTurns {
				nextCoord := moveTable.ApplyMove(coord, turn)
				if table[nextCoord] == pruningSentinel {
					table[nextCoord] = *distance
					nextFillList = append(nextFillList, nextCoord)
					*remaining--
				}
			}
		}
		previousFillList = nextFillList
		*distance++
	}
}

func (p *PruningTable) backwardFill(table []uint8, moveTable *MoveTable, distance *uint8, remaining *int) {
	allowedTurns := p.allowedTurns()
	numCoords := uint32(len(table))
	for *remaining > 0 {
		for coord := uint32(0); coord < numCoords; coord++ {
			if table[coord] != pruningSentinel {
				continue
			}
			for _, turn := range allowedTurns {
				nextCoord := moveTable.ApplyMove(coord, turn)
				if table[nextCoord] == *distance-1 {
					table[coord] = *distance
					*remaining--
					break
				}
			}
			if *remaining == 0 {
				break
			}
		}
		*distance++
	}
}

// DistanceLowerBound returns the best admissible bound available for the
// given coordinates: the maximum of their per-family distances.
func (p *PruningTable) DistanceLowerBound(coords []uint32, coordTypes []Coordinate) uint8 {
	var distance uint8
	for i, coord := range coords {
		if d := p.tables[coordTypes[i]][coord]; d > distance {
			distance = d
		}
	}
	return distance
}
