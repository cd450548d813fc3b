package fto

import "sync"

var (
	matchedTripleOnce   sync.Once
	matchedTripleCoords []uint32
)

// MatchedTripleCoord returns the unique down-centre coordinate for which
// every triple (a corner and its two flanking down centres) is
// consistent with the given corner state. Starting from the solved
// triple-centre arrangement, each corner slot pulls the main and flipped
// centre labels from the corner that occupies it, swapping the pair when
// the corner is flipped.
func MatchedTripleCoord(cornerCoord uint32) uint32 {
	tripleCentres := TripleCentre.Decode(0)
	cornerState := CornerState.Decode(cornerCoord)

	downCentres := append([]uint8(nil), tripleCentres...)

	for i, corner := range cornerState {
		index := corner / 2
		flipped := corner%2 == 1
		main, flip := cornerMainTripleCentre[i], cornerFlippedTripleCentre[i]
		downCentres[main] = tripleCentres[cornerMainTripleCentre[index]]
		downCentres[flip] = tripleCentres[cornerFlippedTripleCentre[index]]
		if flipped {
			downCentres[main], downCentres[flip] = downCentres[flip], downCentres[main]
		}
	}
	return DownCentre.Encode(downCentres)
}

// TriplesMatchCorners reports whether the down-centre coordinate is the
// one consistent with the corner coordinate. The full corner-to-centre
// mapping is built once on first use.
func TriplesMatchCorners(corners, downCentres uint32) bool {
	matchedTripleOnce.Do(func() {
		matchedTripleCoords = make([]uint32, NumCornerStates)
		for coord := range matchedTripleCoords {
			matchedTripleCoords[coord] = MatchedTripleCoord(uint32(coord))
		}
	})
	return matchedTripleCoords[corners] == downCentres
}
