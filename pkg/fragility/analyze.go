package fragility

import (
	"fmt"
	"strings"
	"time"

	"github.com/notnil/chess"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// Layout matches the Date/UTCDate tag format of PGN headers.
	Layout = "2006.01.02"
	// TimeLayout matches the UTCTime tag format of PGN headers.
	TimeLayout = "15:04:05"
)

// InvalidMoveError reports a move from the supplied move list that cannot be
// applied to the position it was played from. No record is emitted for the
// failing ply.
type InvalidMoveError struct {
	Ply  int
	Move string
	Err  error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q at ply %d: %v", e.Move, e.Ply, e.Err)
}

func (e *InvalidMoveError) Unwrap() error {
	return e.Err
}

// AnalyzeGame replays the game's move list onto a fresh board and emits one
// fragility record per position, including the initial position at ply 0.
// Engine evaluations embedded in move comments ([%eval ...]) are attached to
// the corresponding records.
func AnalyzeGame(g *chess.Game) (*GameReport, error) {
	report := &GameReport{
		White: tagValue(g, "White"),
		Black: tagValue(g, "Black"),
	}
	if t, err := time.Parse(Layout, tagValue(g, "Date")); err == nil {
		report.Date = primitive.NewDateTimeFromTime(t)
	}

	moves := g.Moves()
	comments := g.Comments()
	replay := chess.NewGame()
	records := make([]Record, 0, len(moves)+1)

	score, top := ScorePosition(replay.Position())
	records = append(records, Record{Ply: 0, MoveUCI: StartPosLabel, Fragility: score, TopPiece: top})

	for i, move := range moves {
		if err := replay.Move(move); err != nil {
			return nil, &InvalidMoveError{Ply: i + 1, Move: move.String(), Err: err}
		}
		score, top := ScorePosition(replay.Position())
		rec := Record{Ply: i + 1, MoveUCI: move.String(), Fragility: score, TopPiece: top}
		if i < len(comments) {
			rec.Eval = ExtractEval(strings.Join(comments[i], " "))
		}
		records = append(records, rec)
	}
	report.Records = records
	return report, nil
}

// AnalyzeMoves scores a game supplied as a list of UCI moves from the
// standard initial position.
func AnalyzeMoves(moves []string) (*GameReport, error) {
	replay := chess.NewGame()
	records := make([]Record, 0, len(moves)+1)

	score, top := ScorePosition(replay.Position())
	records = append(records, Record{Ply: 0, MoveUCI: StartPosLabel, Fragility: score, TopPiece: top})

	for i, moveStr := range moves {
		move, err := chess.UCINotation{}.Decode(replay.Position(), moveStr)
		if err != nil {
			return nil, &InvalidMoveError{Ply: i + 1, Move: moveStr, Err: err}
		}
		if err := replay.Move(move); err != nil {
			return nil, &InvalidMoveError{Ply: i + 1, Move: moveStr, Err: err}
		}
		score, top := ScorePosition(replay.Position())
		records = append(records, Record{Ply: i + 1, MoveUCI: moveStr, Fragility: score, TopPiece: top})
	}
	return &GameReport{Records: records}, nil
}

// AnalyzeAllGames scores every game in the slice.
func AnalyzeAllGames(games []*chess.Game) ([]GameReport, error) {
	res := make([]GameReport, 0, len(games))
	for _, g := range games {
		report, err := AnalyzeGame(g)
		if err != nil {
			return nil, err
		}
		res = append(res, *report)
	}
	return res, nil
}

func tagValue(g *chess.Game, key string) string {
	if tp := g.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}
