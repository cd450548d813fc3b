package render

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/fto/internal/fto"
)

// Net geometry. The eight faces are drawn as a strip of alternating
// upward and downward triangles, each subdivided into nine stickers:
// the three tips are corner stickers, the three mid-side triangles are
// edge stickers and the three inner inverted triangles are centres.
const (
	faceSide   = 120.0
	faceHeight = 103.92 // side * sqrt(3)/2
	padding    = 10.0
)

// faceLayout lists a face's sticker classes in slot order: corners
// (tip, left tip, right tip), edges (left side, right side, far side),
// centres (inner next to the tip, inner left, inner right). Tips are
// read from the apex of the drawn triangle.
type faceLayout struct {
	name     string
	inverted bool
	corners  [3]string
	edges    [3]string
	centres  [3]string
}

var net = []faceLayout{
	{
		name:    "U",
		corners: [3]string{"corn-UBL-U", "corn-UBR-U", "corn-UF-U"},
		edges:   [3]string{"edge-UB-U", "edge-UR-U", "edge-UL-U"},
		centres: [3]string{"cent-UBL", "cent-UBR", "cent-UF"},
	},
	{
		name: "B", inverted: true,
		corners: [3]string{"corn-DB-B", "corn-UBR-B", "corn-UBL-B"},
		edges:   [3]string{"edge-UB-B", "edge-BRB-B", "edge-BLB-B"},
		centres: [3]string{"cent-BD", "cent-BR", "cent-BL"},
	},
	{
		name:    "BL",
		corners: [3]string{"corn-UBL-BL", "corn-DB-BL", "corn-DL-BL"},
		edges:   [3]string{"edge-BLB-BL", "edge-BLL-BL", "edge-BLD-BL"},
		centres: [3]string{"cent-BLU", "cent-BLBR", "cent-BLF"},
	},
	{
		name: "L", inverted: true,
		corners: [3]string{"corn-DL-L", "corn-UBL-L", "corn-UF-L"},
		edges:   [3]string{"edge-UL-L", "edge-BLL-L", "edge-FL-L"},
		centres: [3]string{"cent-LD", "cent-LB", "cent-LR"},
	},
	{
		name:    "F",
		corners: [3]string{"corn-UF-F", "corn-DL-F", "corn-DR-F"},
		edges:   [3]string{"edge-FL-F", "edge-FR-F", "edge-FD-F"},
		centres: [3]string{"cent-FU", "cent-FBL", "cent-FBR"},
	},
	{
		name: "D", inverted: true,
		corners: [3]string{"corn-DB-D", "corn-DL-D", "corn-DR-D"},
		edges:   [3]string{"edge-FD-D", "edge-BLD-D", "edge-BRD-D"},
		centres: [3]string{"cent-DB", "cent-DL", "cent-DR"},
	},
	{
		name:    "BR",
		corners: [3]string{"corn-UBR-BR", "corn-DR-BR", "corn-DB-BR"},
		edges:   [3]string{"edge-BRR-BR", "edge-BRB-BR", "edge-BRD-BR"},
		centres: [3]string{"cent-BRU", "cent-BRF", "cent-BRBL"},
	},
	{
		name: "R", inverted: true,
		corners: [3]string{"corn-DR-R", "corn-UF-R", "corn-UBR-R"},
		edges:   [3]string{"edge-UR-R", "edge-FR-R", "edge-BRR-R"},
		centres: [3]string{"cent-RD", "cent-RL", "cent-RB"},
	},
}

// SVG renders the state as a standalone SVG document.
func SVG(state *fto.RawState) string {
	width := padding*2 + faceSide/2*float64(len(net)+1)
	height := padding*2 + faceHeight

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f">`, width, height)
	sb.WriteString("\n")
	sb.WriteString(styleSection(state))
	sb.WriteString("\n")
	sb.WriteString(`<g stroke="#000" stroke-width="1.5" stroke-linejoin="round">`)
	sb.WriteString("\n")
	for i, face := range net {
		writeFacePolygons(&sb, face, padding+faceSide/2*float64(i))
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func styleSection(state *fto.RawState) string {
	stickers := stickersFromRawState(state)
	var sb strings.Builder
	sb.WriteString("<style>")
	sb.WriteString(stickerStyles(stickers))
	sb.WriteString("</style>")
	return sb.String()
}

func stickerStyles(stickers *stickerState) string {
	var sb strings.Builder
	stickerSets := [][]uint8{
		stickers.cornerUpGood, stickers.cornerUpFlipped,
		stickers.cornerDownGood, stickers.cornerDownFlipped,
		stickers.edgeUp, stickers.edgeDown,
		stickers.upCentres, stickers.downCentres,
	}
	names := [][]string{
		cornerNamesUpGood, cornerNamesUpFlipped,
		cornerNamesDownGood, cornerNamesDownFlipped,
		edgeUpNames, edgeDownNames,
		upCentreNames, downCentreNames,
	}

	for i := range stickerSets {
		for j, colour := range stickerSets[i] {
			fmt.Fprintf(&sb, ".%s{fill:%s} ", names[i][j], colours[colour])
		}
	}
	return sb.String()
}

type point struct {
	x, y float64
}

// writeFacePolygons emits the nine sticker polygons of one face. The
// face triangle sits at horizontal offset x0, subdivided into a 3-row
// grid of small triangles; an inverted face is mirrored about the strip
// midline.
func writeFacePolygons(sb *strings.Builder, face faceLayout, x0 float64) {
	// Small upward triangle j of row r (row 0 at the apex).
	small := func(r, j int, down bool) []point {
		s := faceSide / 3
		h := faceHeight / 3
		centerX := x0 + faceSide/2
		topY := padding + float64(r)*h
		bottomY := padding + float64(r+1)*h
		if down {
			// Inner inverted triangle between up triangles j and j+1.
			return []point{
				{centerX - float64(r)*s/2 + float64(j)*s, topY},
				{centerX - float64(r)*s/2 + float64(j+1)*s, topY},
				{centerX - float64(r+1)*s/2 + float64(j+1)*s, bottomY},
			}
		}
		return []point{
			{centerX - float64(r)*s/2 + float64(j)*s, topY},
			{centerX - float64(r+1)*s/2 + float64(j)*s, bottomY},
			{centerX - float64(r+1)*s/2 + float64(j+1)*s, bottomY},
		}
	}

	classes := []string{
		face.corners[0], face.corners[1], face.corners[2],
		face.edges[0], face.edges[1], face.edges[2],
		face.centres[0], face.centres[1], face.centres[2],
	}
	slots := [][]point{
		small(0, 0, false), // apex tip
		small(2, 0, false), // far left tip
		small(2, 2, false), // far right tip
		small(1, 0, false), // left side middle
		small(1, 1, false), // right side middle
		small(2, 1, false), // far side middle
		small(1, 0, true),  // inner, next to the apex
		small(2, 0, true),  // inner left
		small(2, 1, true),  // inner right
	}

	for i, class := range classes {
		points := slots[i]
		if face.inverted {
			for j := range points {
				points[j].y = 2*padding + faceHeight - points[j].y
			}
		}
		writePolygon(sb, class, points)
	}
}

func writePolygon(sb *strings.Builder, class string, points []point) {
	fmt.Fprintf(sb, `<polygon class="%s" points="`, class)
	for i, p := range points {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(sb, "%.2f,%.2f", p.x, p.y)
	}
	sb.WriteString(`"/>` + "\n")
}
