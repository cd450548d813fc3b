// Package render draws a raw FTO state as a standalone SVG of the
// unfolded puzzle. Every sticker is a classed polygon; the colours are
// emitted as a style block so a given state only changes the styles.
package render

import "github.com/ehrlich-b/fto/internal/fto"

// Face colour indices for sticker values.
const (
	faceU = iota
	faceF
	faceBL
	faceBR
	faceD
	faceB
	faceL
	faceR
)

var colours = []string{
	"#fff", // U
	"#f00", // F
	"#f80", // BL
	"#888", // BR
	"#ff0", // D
	"#00f", // B
	"#808", // L
	"#080", // R
}

// Sticker class names, indexed by piece slot. Corners carry four
// stickers each, all of them drawn: a "good" pair and a "flipped" pair.
// A flipped corner swaps the colours of its good and flipped stickers.
var (
	cornerNamesUpGood = []string{
		"corn-UBL-U", "corn-UBR-U", "corn-UF-U",
		"corn-DB-BL", "corn-DR-BR", "corn-DL-F",
	}
	cornerNamesUpFlipped = []string{
		"corn-UBL-BL", "corn-UBR-BR", "corn-UF-F",
		"corn-DB-BR", "corn-DR-F", "corn-DL-BL",
	}
	cornerNamesDownGood = []string{
		"corn-UBL-L", "corn-UBR-B", "corn-UF-R",
		"corn-DB-D", "corn-DR-D", "corn-DL-D",
	}
	cornerNamesDownFlipped = []string{
		"corn-UBL-B", "corn-UBR-R", "corn-UF-L",
		"corn-DB-B", "corn-DR-R", "corn-DL-L",
	}
	edgeUpNames = []string{
		"edge-UB-U", "edge-UR-U", "edge-UL-U",
		"edge-BLB-BL", "edge-BLL-BL", "edge-BLD-BL",
		"edge-BRR-BR", "edge-BRB-BR", "edge-BRD-BR",
		"edge-FL-F", "edge-FR-F", "edge-FD-F",
	}
	edgeDownNames = []string{
		"edge-UB-B", "edge-UR-R", "edge-UL-L",
		"edge-BLB-B", "edge-BLL-L", "edge-BLD-D",
		"edge-BRR-R", "edge-BRB-B", "edge-BRD-D",
		"edge-FL-L", "edge-FR-R", "edge-FD-D",
	}
	upCentreNames = []string{
		"cent-UBL", "cent-UBR", "cent-UF",
		"cent-BLU", "cent-BLF", "cent-BLBR",
		"cent-BRU", "cent-BRBL", "cent-BRF",
		"cent-FU", "cent-FBR", "cent-FBL",
	}
	downCentreNames = []string{
		"cent-BR", "cent-BL", "cent-BD",
		"cent-RL", "cent-RB", "cent-RD",
		"cent-LB", "cent-LR", "cent-LD",
		"cent-DL", "cent-DR", "cent-DB",
	}
)

// stickerState holds the face colour shown at every sticker position.
type stickerState struct {
	cornerUpGood      []uint8
	cornerUpFlipped   []uint8
	cornerDownGood    []uint8
	cornerDownFlipped []uint8
	edgeUp            []uint8
	edgeDown          []uint8
	upCentres         []uint8
	downCentres       []uint8
}

func initialStickers() *stickerState {
	return &stickerState{
		cornerUpGood:      []uint8{faceU, faceU, faceU, faceBL, faceBR, faceF},
		cornerUpFlipped:   []uint8{faceBL, faceBR, faceF, faceBR, faceF, faceBL},
		cornerDownGood:    []uint8{faceL, faceB, faceR, faceD, faceD, faceD},
		cornerDownFlipped: []uint8{faceB, faceR, faceL, faceB, faceR, faceL},
		edgeUp:            []uint8{faceU, faceU, faceU, faceBL, faceBL, faceBL, faceBR, faceBR, faceBR, faceF, faceF, faceF},
		edgeDown:          []uint8{faceB, faceR, faceL, faceB, faceL, faceD, faceR, faceB, faceD, faceL, faceR, faceD},
		upCentres:         []uint8{faceU, faceU, faceU, faceBL, faceBL, faceBL, faceBR, faceBR, faceBR, faceF, faceF, faceF},
		downCentres:       []uint8{faceB, faceB, faceB, faceR, faceR, faceR, faceL, faceL, faceL, faceD, faceD, faceD},
	}
}

// stickersFromRawState permutes the solved sticker colours by the piece
// state, then swaps good and flipped corner stickers where the corner
// orientation says so.
func stickersFromRawState(state *fto.RawState) *stickerState {
	stickers := initialStickers()

	fto.ApplyPermutation(stickers.cornerUpGood, state.Corners)
	fto.ApplyPermutation(stickers.cornerUpFlipped, state.Corners)
	fto.ApplyPermutation(stickers.cornerDownGood, state.Corners)
	fto.ApplyPermutation(stickers.cornerDownFlipped, state.Corners)
	applyStickerOrientation(stickers.cornerUpGood, stickers.cornerUpFlipped, state.CornerOrientation)
	applyStickerOrientation(stickers.cornerDownGood, stickers.cornerDownFlipped, state.CornerOrientation)

	fto.ApplyPermutation(stickers.edgeUp, state.Edges)
	fto.ApplyPermutation(stickers.edgeDown, state.Edges)

	fto.ApplyPermutation(stickers.upCentres, state.UpCentres)
	fto.ApplyPermutation(stickers.downCentres, state.DownCentres)

	return stickers
}

func applyStickerOrientation(goodStickers, flippedStickers []uint8, orientation uint8) {
	for i, flipped := range fto.OrientationBits(orientation) {
		if flipped {
			goodStickers[i], flippedStickers[i] = flippedStickers[i], goodStickers[i]
		}
	}
}
