package fto

// ApplyPermutation applies a permutation effect to a state vector in
// place: state[i] becomes the prior state[effect[i]]. The effect vector
// uses the convention that the piece arriving in position i comes from
// position effect[i].
func ApplyPermutation[T any](state []T, effect []uint8) {
	orig := make([]T, len(state))
	copy(orig, state)
	for i := range effect {
		state[i] = orig[effect[i]]
	}
}

// IsEvenParity reports whether a permutation has an even number of
// inversions.
func IsEvenParity(perm []uint8) bool {
	n := len(perm)
	result := true
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if perm[i] > perm[j] {
				result = !result
			}
		}
	}
	return result
}

// ApplyOrientation transports a packed corner orientation mask through a
// permutation, then applies the turn's orientation delta. Bit masks are
// MSB-first: bit 5 of the mask belongs to corner slot 0.
func ApplyOrientation(state *uint8, permEffect []uint8, orientEffect uint8) {
	flips := OrientationBits(*state)
	ApplyPermutation(flips[:], permEffect)
	*state = orientationMask(flips[:]) ^ orientEffect
}

// ApplyFullCorner applies a turn to a fused corner state, where each of
// the six slots holds position*2 + orientation bit. The delta's bits for
// slots 1..5 are applied directly; slot 0 absorbs their running parity so
// the orientation parity invariant is preserved.
func ApplyFullCorner(state []uint8, permEffect []uint8, orientEffect uint8) {
	ApplyPermutation(state, permEffect)
	orientation := orientEffect
	var firstFlip uint8
	for i := len(state) - 1; i >= 1; i-- {
		flip := orientation % 2
		orientation /= 2
		firstFlip ^= flip
		state[i] ^= flip
	}
	state[0] ^= firstFlip
}

// OrientationBits unpacks a 6-bit orientation mask into one boolean per
// corner slot, slot 0 first.
func OrientationBits(mask uint8) [6]bool {
	var flips [6]bool
	remaining := mask
	for i := 5; i >= 0; i-- {
		flips[i] = remaining%2 == 1
		remaining /= 2
	}
	return flips
}

func orientationMask(flips []bool) uint8 {
	var mask uint8
	for _, flipped := range flips {
		mask *= 2
		if flipped {
			mask++
		}
	}
	return mask
}
