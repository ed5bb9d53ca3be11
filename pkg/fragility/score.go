package fragility

import (
	"strings"

	"github.com/notnil/chess"
)

// AttackedPiece identifies the highest-centrality attacked piece of a
// position.
type AttackedPiece struct {
	Square chess.Square `json:"square" bson:"square"`
	Piece  chess.Piece  `json:"piece" bson:"piece"`
}

// Label renders the piece as e.g. "Q@d1" or "n@f6" (uppercase for white,
// lowercase for black).
func (a AttackedPiece) Label() string {
	sym := a.Piece.Type().String()
	if a.Piece.Color() == chess.White {
		sym = strings.ToUpper(sym)
	}
	return sym + "@" + a.Square.String()
}

// Score sums the centrality of every attacked piece and picks the attacked
// piece with the largest centrality. Ties break toward the lowest square
// index (attacked nodes are visited in ascending square order and only a
// strictly larger value displaces the current best). An empty attacked set
// yields 0 and a nil top piece.
func Score(g *Graph, bc []float64) (float64, *AttackedPiece) {
	attacked := g.AttackedNodes()
	if len(attacked) == 0 {
		return 0, nil
	}
	total := 0.0
	best := attacked[0]
	for _, i := range attacked {
		total += bc[i]
		if bc[i] > bc[best] {
			best = i
		}
	}
	return total, &AttackedPiece{Square: g.Square(best), Piece: g.Piece(best)}
}

// ScorePosition computes the fragility score of a single position: the
// interaction graph is built, betweenness centrality is computed per piece,
// and the centralities of all attacked pieces are summed.
func ScorePosition(pos *chess.Position) (float64, *AttackedPiece) {
	g := BuildGraph(pos)
	return Score(g, g.Betweenness())
}
