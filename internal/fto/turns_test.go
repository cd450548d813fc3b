package fto

import "testing"

func TestParseTurn(t *testing.T) {
	tests := []struct {
		notation string
		want     Turn
		wantErr  bool
	}{
		{"U", Turn{Face: Up}, false},
		{"U'", Turn{Face: Up, Invert: true}, false},
		{"F", Turn{Face: Front}, false},
		{"BL", Turn{Face: BackLeft}, false},
		{"BL'", Turn{Face: BackLeft, Invert: true}, false},
		{"BR", Turn{Face: BackRight}, false},
		{"L", Turn{Face: Left}, false},
		{"R'", Turn{Face: Right, Invert: true}, false},
		{"B", Turn{Face: Back}, false},
		{"D'", Turn{Face: Down, Invert: true}, false},
		{"", Turn{}, true},
		{"X", Turn{}, true},
		{"U2", Turn{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseTurn(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTurn(%q) error = %v, wantErr %v", tt.notation, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTurn(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		sequence string
		wantLen  int
		wantErr  bool
	}{
		{"", 0, false},
		{"U", 1, false},
		{"U F' BL BR'", 4, false},
		{"R L' U BR' B U' D' R BL'", 9, false},
		{"U X", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSequence(tt.sequence)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSequence(%q) error = %v, wantErr %v", tt.sequence, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && len(got) != tt.wantLen {
			t.Errorf("ParseSequence(%q) returned %d turns, want %d", tt.sequence, len(got), tt.wantLen)
		}
	}
}

func TestFormatSequenceRoundTrip(t *testing.T) {
	sequence := "R L' U BR' B U' D' R BL'"
	turns, err := ParseSequence(sequence)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", sequence, err)
	}
	if got := FormatSequence(turns); got != sequence {
		t.Errorf("FormatSequence = %q, want %q", got, sequence)
	}
}

func TestTurnInverse(t *testing.T) {
	turn := Turn{Face: BackLeft}
	if got := turn.Inverse(); got != (Turn{Face: BackLeft, Invert: true}) {
		t.Errorf("Inverse() = %v", got)
	}
	if got := turn.Inverse().Inverse(); got != turn {
		t.Errorf("double Inverse() = %v, want %v", got, turn)
	}
}

func TestPrimaryFaces(t *testing.T) {
	tests := []struct {
		face Face
		want Face
	}{
		{Up, Up}, {Front, Front}, {BackLeft, BackLeft}, {BackRight, BackRight},
		{Down, Up}, {Back, Front}, {Right, BackLeft}, {Left, BackRight},
	}

	for _, tt := range tests {
		if got := tt.face.Primary(); got != tt.want {
			t.Errorf("%v.Primary() = %v, want %v", tt.face, got, tt.want)
		}
	}
}

func TestFaceTagBytes(t *testing.T) {
	seen := make(map[byte]bool)
	for _, face := range AllFaces() {
		tag := face.TagByte()
		if seen[tag] {
			t.Errorf("duplicate tag byte %c", tag)
		}
		seen[tag] = true

		back, err := FaceFromTagByte(tag)
		if err != nil {
			t.Fatalf("FaceFromTagByte(%c): %v", tag, err)
		}
		if back != face {
			t.Errorf("FaceFromTagByte(%c) = %v, want %v", tag, back, face)
		}
	}

	if _, err := FaceFromTagByte(0); err == nil {
		t.Error("FaceFromTagByte(0) should error")
	}
}

func TestAllTurns(t *testing.T) {
	turns := AllTurns()
	if len(turns) != 16 {
		t.Fatalf("AllTurns() returned %d turns, want 16", len(turns))
	}
	seen := make(map[Turn]bool)
	for _, turn := range turns {
		if seen[turn] {
			t.Errorf("duplicate turn %v", turn)
		}
		seen[turn] = true
	}
}

// Every permutation vector in the catalog must itself be a valid even
// permutation, and each orientation delta must have even parity.
func TestRawTurnTablesAreValid(t *testing.T) {
	for _, face := range AllFaces() {
		t.Run(face.String(), func(t *testing.T) {
			turn := face.Turn()

			perms := [][]uint8{
				turn.CornerPerm[:], turn.Edges[:], turn.UpCentres[:],
				turn.DownCentres[:], turn.TripleCentres[:],
			}
			for _, perm := range perms {
				counts := make(map[uint8]int)
				for _, v := range perm {
					counts[v]++
				}
				for v := range perm {
					if counts[uint8(v)] != 1 {
						t.Fatalf("face %v: %v is not a permutation", face, perm)
					}
				}
				if !IsEvenParity(perm) {
					t.Errorf("face %v: %v has odd parity", face, perm)
				}
			}

			flips := OrientationBits(turn.CornerOrient)
			parity := false
			for _, f := range flips {
				parity = parity != f
			}
			if parity {
				t.Errorf("face %v: orientation delta %06b has odd parity", face, turn.CornerOrient)
			}
		})
	}
}
