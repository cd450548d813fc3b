package fto

import "sync"

// Generating the full move tables takes a few seconds, so tests that
// need them share one instance; the same goes for the eight-face pruning
// tables built on top of them.
var (
	testTablesOnce sync.Once
	testTables     *MoveTables

	testPruningOnce sync.Once
	testPruning     *PruningTable
)

func sharedMoveTables() *MoveTables {
	testTablesOnce.Do(func() {
		testTables = GenerateMoveTables()
	})
	return testTables
}

func sharedPruningTable() *PruningTable {
	testPruningOnce.Do(func() {
		testPruning = NewPruningTable(AllFaces())
		testPruning.Populate(sharedMoveTables())
	})
	return testPruning
}
