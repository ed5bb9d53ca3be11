package fragility

import (
	"github.com/notnil/chess"
)

// Graph is the piece interaction graph for a single position: one node per
// occupied square, one directed edge per raw attack/defense relation. Node
// indices are assigned in ascending square order (A1..H8), which keeps every
// downstream computation deterministic.
type Graph struct {
	squares []chess.Square
	pieces  []chess.Piece
	index   [64]int
	adj     [][]int
}

func newGraph() *Graph {
	g := &Graph{}
	for i := range g.index {
		g.index[i] = -1
	}
	return g
}

func (g *Graph) addNode(sq chess.Square, p chess.Piece) int {
	g.index[sq] = len(g.squares)
	g.squares = append(g.squares, sq)
	g.pieces = append(g.pieces, p)
	g.adj = append(g.adj, nil)
	return g.index[sq]
}

// addEdge records a directed edge between node indices. Attack geometry
// visits every target square at most once per source piece, so no ordered
// pair is ever inserted twice.
func (g *Graph) addEdge(from, to int) {
	g.adj[from] = append(g.adj[from], to)
}

// NodeCount reports the number of pieces on the board.
func (g *Graph) NodeCount() int {
	return len(g.squares)
}

// Square returns the board square of node i.
func (g *Graph) Square(i int) chess.Square {
	return g.squares[i]
}

// Piece returns the piece occupying node i.
func (g *Graph) Piece(i int) chess.Piece {
	return g.pieces[i]
}

// AttackedNodes returns the indices of every node that has an incoming edge
// from a piece of the opposite color, in ascending square order.
func (g *Graph) AttackedNodes() []int {
	attacked := make([]bool, len(g.squares))
	for from, targets := range g.adj {
		for _, to := range targets {
			if g.pieces[from].Color() != g.pieces[to].Color() {
				attacked[to] = true
			}
		}
	}
	res := make([]int, 0, len(g.squares))
	for i, a := range attacked {
		if a {
			res = append(res, i)
		}
	}
	return res
}

// BuildGraph constructs the interaction graph for a position. An edge S->T
// exists when the piece on S can move to or capture on T under raw attack
// geometry, ignoring pins and checks. Same-color edges are defenses,
// opposite-color edges are attacks; the graph itself does not label them.
func BuildGraph(pos *chess.Position) *Graph {
	squareMap := pos.Board().SquareMap()
	g := newGraph()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if p, ok := squareMap[sq]; ok {
			g.addNode(sq, p)
		}
	}
	for i, sq := range g.squares {
		for _, target := range attackSquares(sq, g.pieces[i], squareMap) {
			if j := g.index[target]; j >= 0 {
				g.addEdge(i, j)
			}
		}
	}
	return g
}

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// attackSquares returns every square the piece on sq attacks or defends.
// Pawns attack their two capture diagonals only, never the push squares.
// Sliding pieces stop at, and include, the first occupied square per ray.
func attackSquares(sq chess.Square, p chess.Piece, occ map[chess.Square]chess.Piece) []chess.Square {
	file := int(sq.File())
	rank := int(sq.Rank())
	var res []chess.Square

	step := func(df, dr int) (chess.Square, bool) {
		f, r := file+df, rank+dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			return 0, false
		}
		return chess.Square(r*8 + f), true
	}
	slide := func(dirs [4][2]int) {
		for _, d := range dirs {
			for n := 1; ; n++ {
				t, ok := step(d[0]*n, d[1]*n)
				if !ok {
					break
				}
				res = append(res, t)
				if _, blocked := occ[t]; blocked {
					break
				}
			}
		}
	}

	switch p.Type() {
	case chess.Pawn:
		dr := 1
		if p.Color() == chess.Black {
			dr = -1
		}
		for _, df := range [2]int{-1, 1} {
			if t, ok := step(df, dr); ok {
				res = append(res, t)
			}
		}
	case chess.Knight:
		for _, o := range knightOffsets {
			if t, ok := step(o[0], o[1]); ok {
				res = append(res, t)
			}
		}
	case chess.King:
		for _, o := range kingOffsets {
			if t, ok := step(o[0], o[1]); ok {
				res = append(res, t)
			}
		}
	case chess.Bishop:
		slide(bishopDirs)
	case chess.Rook:
		slide(rookDirs)
	case chess.Queen:
		slide(bishopDirs)
		slide(rookDirs)
	}
	return res
}
