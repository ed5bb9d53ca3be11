package fragility

import (
	"testing"

	"github.com/notnil/chess"
)

// testGraph wires nodes on the given squares (ascending) with the given
// edges by node index. Piece identity does not matter for centrality.
func testGraph(squares []chess.Square, pieces []chess.Piece, edges [][2]int) *Graph {
	g := newGraph()
	for i, sq := range squares {
		g.addNode(sq, pieces[i])
	}
	for _, e := range edges {
		g.addEdge(e[0], e[1])
	}
	return g
}

func pathSquares(n int) ([]chess.Square, []chess.Piece) {
	squares := make([]chess.Square, n)
	pieces := make([]chess.Piece, n)
	for i := 0; i < n; i++ {
		squares[i] = chess.Square(i)
		pieces[i] = chess.WhiteRook
	}
	return squares, pieces
}

func TestBetweennessPath(t *testing.T) {
	// a -> b -> c: b lies on the single shortest a->c path.
	squares, pieces := pathSquares(3)
	g := testGraph(squares, pieces, [][2]int{{0, 1}, {1, 2}})

	bc := g.Betweenness()
	want := []float64{0, 1, 0}
	for i := range want {
		if bc[i] != want[i] {
			t.Fatalf("path graph centrality of node %d expected %f but got %f", i, want[i], bc[i])
		}
	}
}

func TestBetweennessEqualPathsSplitCredit(t *testing.T) {
	// Diamond s -> {a, b} -> t: both middle nodes carry half the s->t credit.
	squares, pieces := pathSquares(4)
	g := testGraph(squares, pieces, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})

	bc := g.Betweenness()
	want := []float64{0, 0.5, 0.5, 0}
	for i := range want {
		if bc[i] != want[i] {
			t.Fatalf("diamond centrality of node %d expected %f but got %f", i, want[i], bc[i])
		}
	}
}

func TestBetweennessRespectsDirection(t *testing.T) {
	// a -> b <- c: b has only incoming edges, no path runs through it.
	squares, pieces := pathSquares(3)
	g := testGraph(squares, pieces, [][2]int{{0, 1}, {2, 1}})

	bc := g.Betweenness()
	for i, v := range bc {
		if v != 0 {
			t.Fatalf("sink-middle graph centrality of node %d expected 0 but got %f", i, v)
		}
	}
}

func TestBetweennessCycle(t *testing.T) {
	// 3-cycle: every node bridges exactly one ordered pair.
	squares, pieces := pathSquares(3)
	g := testGraph(squares, pieces, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	bc := g.Betweenness()
	for i, v := range bc {
		if v != 1 {
			t.Fatalf("cycle centrality of node %d expected 1 but got %f", i, v)
		}
	}
}

func TestBetweennessDisconnectedComponents(t *testing.T) {
	// Two disjoint arcs: unreachable pairs contribute nothing.
	squares, pieces := pathSquares(4)
	g := testGraph(squares, pieces, [][2]int{{0, 1}, {2, 3}})

	bc := g.Betweenness()
	for i, v := range bc {
		if v != 0 {
			t.Fatalf("disconnected graph centrality of node %d expected 0 but got %f", i, v)
		}
	}
}

func TestBetweennessIsomorphismInvariance(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}}

	squaresA, piecesA := pathSquares(5)
	squaresB := []chess.Square{chess.C3, chess.D4, chess.E5, chess.F6, chess.H8}
	piecesB := []chess.Piece{chess.BlackQueen, chess.WhiteKnight, chess.BlackPawn, chess.WhiteBishop, chess.BlackKing}

	bcA := testGraph(squaresA, piecesA, edges).Betweenness()
	bcB := testGraph(squaresB, piecesB, edges).Betweenness()

	for i := range bcA {
		if bcA[i] != bcB[i] {
			t.Fatalf("relabeled graph centrality of node %d expected %f but got %f", i, bcA[i], bcB[i])
		}
	}
}
