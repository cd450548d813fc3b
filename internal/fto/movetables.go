package fto

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const moveTableSentinel = ^uint32(0)

// MoveTables holds the precomputed transition tables for every
// coordinate family. Immutable once built; search reads them only.
type MoveTables struct {
	tables map[Coordinate]*MoveTable
}

// MoveTable maps a coordinate to its value after a single clockwise turn
// of each face, with the inverse direction precomputed alongside.
type MoveTable struct {
	coord   Coordinate
	forward map[Face][]uint32
	inverse map[Face][]uint32
}

// GenerateMoveTables builds the tables for every coordinate family from
// scratch.
func GenerateMoveTables() *MoveTables {
	tables := make(map[Coordinate]*MoveTable, len(AllCoordinates()))
	for _, coord := range AllCoordinates() {
		tables[coord] = NewMoveTable(coord)
	}
	return &MoveTables{tables: tables}
}

// TryLoadOrGenerate loads persisted move tables from path, regenerating
// and saving them if the file is missing or unreadable. A failure to
// save is reported but the generated tables are still returned.
func TryLoadOrGenerate(path string) (*MoveTables, error) {
	if tables, err := LoadMoveTables(path); err == nil {
		return tables, nil
	}
	tables := GenerateMoveTables()
	if err := tables.Save(path); err != nil {
		return tables, fmt.Errorf("saving move tables: %v", err)
	}
	return tables, nil
}

// ApplyMove advances a coordinate by one turn: a single lookup in the
// forward or inverse table depending on the turn direction.
func (m *MoveTables) ApplyMove(coord uint32, coordType Coordinate, turn Turn) uint32 {
	return m.tables[coordType].ApplyMove(coord, turn)
}

// Table returns the per-family table.
func (m *MoveTables) Table(coordType Coordinate) *MoveTable {
	return m.tables[coordType]
}

// NewMoveTable builds the table for a single coordinate family. Each
// unvisited coordinate is decoded once and walked around its three-turn
// orbit per face, filling three forward and three inverse entries at a
// time; the third application restores the decoded state for the next
// face.
func NewMoveTable(coord Coordinate) *MoveTable {
	table := &MoveTable{
		coord:   coord,
		forward: make(map[Face][]uint32, 8),
		inverse: make(map[Face][]uint32, 8),
	}
	table.init()
	table.populate()
	return table
}

func emptyMoveTable(coord Coordinate) *MoveTable {
	table := &MoveTable{
		coord:   coord,
		forward: make(map[Face][]uint32, 8),
		inverse: make(map[Face][]uint32, 8),
	}
	table.init()
	return table
}

func (t *MoveTable) init() {
	size := t.coord.Size()
	for _, face := range AllFaces() {
		forward := make([]uint32, size)
		inverse := make([]uint32, size)
		for i := range forward {
			forward[i] = moveTableSentinel
			inverse[i] = moveTableSentinel
		}
		t.forward[face] = forward
		t.inverse[face] = inverse
	}
}

func (t *MoveTable) populate() {
	size := uint32(t.coord.Size())
	for startCoord := uint32(0); startCoord < size; startCoord++ {
		state := t.coord.Decode(startCoord)
		for _, face := range AllFaces() {
			if t.forward[face][startCoord] != moveTableSentinel {
				continue
			}
			turn := face.Turn()

			cycle := [3]uint32{startCoord, 0, 0}
			t.coord.applyTurn(state, turn)
			cycle[1] = t.coord.Encode(state)
			t.coord.applyTurn(state, turn)
			cycle[2] = t.coord.Encode(state)
			t.coord.applyTurn(state, turn)

			addCycleToTable(t.forward[face], t.inverse[face], cycle)
		}
	}
}

// ApplyMove advances a coordinate by one turn of this family.
func (t *MoveTable) ApplyMove(coord uint32, turn Turn) uint32 {
	if turn.Invert {
		return t.inverse[turn.Face][coord]
	}
	return t.forward[turn.Face][coord]
}

func addCycleToTable(forward, inverse []uint32, cycle [3]uint32) {
	forward[cycle[0]] = cycle[1]
	forward[cycle[1]] = cycle[2]
	forward[cycle[2]] = cycle[0]
	inverse[cycle[0]] = cycle[2]
	inverse[cycle[2]] = cycle[1]
	inverse[cycle[1]] = cycle[0]
}

// Save writes every table to path. The format is a sequence of tagged
// sections: a family tag word, then for each face a face tag word
// followed by the forward table as big-endian 32-bit values, then a zero
// terminator word; a final zero word ends the file. Tag words carry the
// tag byte in the low position with zero bytes above it.
func (m *MoveTables) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating move table file: %v", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, coord := range AllCoordinates() {
		if err := m.tables[coord].save(writer); err != nil {
			return err
		}
	}
	if err := writeTagWord(writer, 0); err != nil {
		return err
	}
	return writer.Flush()
}

func (t *MoveTable) save(writer io.Writer) error {
	if err := writeTagWord(writer, t.coord.TagByte()); err != nil {
		return err
	}
	for _, face := range AllFaces() {
		if err := writeTagWord(writer, face.TagByte()); err != nil {
			return err
		}
		for _, value := range t.forward[face] {
			if err := binary.Write(writer, binary.BigEndian, value); err != nil {
				return err
			}
		}
	}
	return writeTagWord(writer, 0)
}

// LoadMoveTables reads tables persisted by Save. Inverse tables are
// rebuilt from the forward entries as they stream in.
func LoadMoveTables(path string) (*MoveTables, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	result := &MoveTables{tables: make(map[Coordinate]*MoveTable)}

	for {
		tag, err := readWord(reader)
		if err != nil {
			return nil, fmt.Errorf("reading family tag: %v", err)
		}
		if tag == 0 {
			break
		}
		coord, err := CoordinateFromTagByte(byte(tag))
		if err != nil {
			return nil, err
		}

		table, err := readMoveTable(reader, coord)
		if err != nil {
			return nil, err
		}
		result.tables[coord] = table
	}

	for _, coord := range AllCoordinates() {
		if result.tables[coord] == nil {
			return nil, fmt.Errorf("move table file is missing the %v family", coord)
		}
	}
	return result, nil
}

func readMoveTable(reader io.Reader, coord Coordinate) (*MoveTable, error) {
	table := emptyMoveTable(coord)
	size := coord.Size()

	for {
		tag, err := readWord(reader)
		if err != nil {
			return nil, fmt.Errorf("reading face tag: %v", err)
		}
		if tag == 0 {
			break
		}
		face, err := FaceFromTagByte(byte(tag))
		if err != nil {
			return nil, err
		}

		forward := table.forward[face]
		inverse := table.inverse[face]
		for i := 0; i < size; i++ {
			value, err := readWord(reader)
			if err != nil {
				return nil, fmt.Errorf("reading %v table for face %v: %v", coord, face, err)
			}
			if value >= uint32(size) {
				return nil, fmt.Errorf("coordinate %d out of range in %v table for face %v", value, coord, face)
			}
			forward[i] = value
			inverse[value] = uint32(i)
		}
	}
	return table, nil
}

func writeTagWord(writer io.Writer, tag byte) error {
	_, err := writer.Write([]byte{0, 0, 0, tag})
	return err
}

func readWord(reader io.Reader) (uint32, error) {
	var data [4]byte
	if _, err := io.ReadFull(reader, data[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data[:]), nil
}
