package fto

import "testing"

func BenchmarkCornerStateEncode(b *testing.B) {
	state := []uint8{0, 2, 11, 6, 4, 9}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CornerState.Encode(state)
	}
}

func BenchmarkFaceClassDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EdgeInFace.Decode(uint32(i % NumFacePiecePerms))
	}
}

func BenchmarkCoordStateApply(b *testing.B) {
	tables := sharedMoveTables()
	turns := AllTurns()
	state := SolvedCoordState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state.Apply(tables, turns[i%len(turns)])
	}
}

func BenchmarkSearchPhase1(b *testing.B) {
	tables := sharedMoveTables()
	pruning := sharedPruningTable()

	turns, err := ParseSequence("R L' D B' R D'")
	if err != nil {
		b.Fatal(err)
	}
	scrambled := SolvedCoordState()
	scrambled.ApplySequence(tables, turns)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for limit := uint8(1); limit <= 6; limit++ {
			if solution := SearchPhase1(scrambled, tables, pruning, limit, nil); len(solution) > 0 {
				break
			}
		}
	}
}
