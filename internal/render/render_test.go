package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/fto/internal/fto"
)

func TestStickerStylesSolved(t *testing.T) {
	styles := stickerStyles(initialStickers())

	assert.Contains(t, styles, ".corn-UBL-L{fill:#808}")
	assert.Contains(t, styles, ".edge-FR-R{fill:#080}")
	assert.Contains(t, styles, ".cent-UF{fill:#fff}")
	assert.Contains(t, styles, ".cent-DB{fill:#ff0}")
}

func TestSVGSolved(t *testing.T) {
	svg := SVG(fto.SolvedRawState())

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "</svg>")
	assert.Contains(t, svg, "<style>")
	assert.Contains(t, svg, ".corn-UBL-L{fill:#808}")
	assert.Contains(t, svg, ".edge-FR-R{fill:#080}")
	assert.Contains(t, svg, ".cent-UF{fill:#fff}")

	// One polygon per sticker: 24 corner stickers, 24 edge stickers and
	// 24 centres.
	assert.Equal(t, 72, strings.Count(svg, "<polygon"))
}

func TestSVGEveryClassIsUnique(t *testing.T) {
	svg := SVG(fto.SolvedRawState())

	for _, names := range [][]string{
		cornerNamesUpGood, cornerNamesUpFlipped,
		cornerNamesDownGood, cornerNamesDownFlipped,
		edgeUpNames, edgeDownNames,
		upCentreNames, downCentreNames,
	} {
		for _, name := range names {
			assert.Equal(t, 1, strings.Count(svg, `class="`+name+`"`), "class %s", name)
		}
	}
}

func TestStickersFollowPermutation(t *testing.T) {
	state := fto.SolvedRawState()
	state.Apply(fto.Turn{Face: fto.Up})

	stickers := stickersFromRawState(state)
	// U cycles the three up corners UBL <- UF <- UBR <- UBL without
	// flipping them, so each up-good sticker still shows the U colour.
	require.Equal(t, []uint8{faceU, faceU, faceU}, stickers.cornerUpGood[:3])
	// The down-good stickers travel with the corners: slot UBL now holds
	// the corner from UF, whose down sticker is R-coloured.
	assert.Equal(t, uint8(faceR), stickers.cornerDownGood[0])
}

func TestStickersFollowOrientation(t *testing.T) {
	state := fto.SolvedRawState()
	state.CornerOrientation = 0b100001

	stickers := stickersFromRawState(state)
	assert.Equal(t, uint8(faceBL), stickers.cornerUpGood[0], "flipped UBL shows its BL sticker up")
	assert.Equal(t, uint8(faceU), stickers.cornerUpFlipped[0])
	assert.Equal(t, uint8(faceBL), stickers.cornerUpGood[5], "flipped DL shows its BL sticker up")
}
