package fragility

import (
	"github.com/freeeve/uci"
	"github.com/notnil/chess"
)

// SetupEngine starts a UCI engine (e.g. stockfish) used to fill evaluations
// for games whose PGN carries no [%eval ...] annotations.
func SetupEngine(path string, arg ...string) (*uci.Engine, error) {
	e, err := uci.NewEngine(path, arg...)
	if err != nil {
		return nil, err
	}

	err = e.SetOptions(uci.Options{
		MultiPV: 1,
		Hash:    128,
		Ponder:  false,
		OwnBook: true,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// AnnotateReport fills the evaluation of every post-move record that does
// not already carry one, scoring each position to the given depth. Records
// keep engine scores in White's perspective, matching PGN annotations.
func AnnotateReport(report *GameReport, g *chess.Game, e *uci.Engine, depth int) error {
	positions := g.Positions()
	for i := range report.Records {
		rec := &report.Records[i]
		if rec.Ply == 0 || rec.Eval != nil || rec.Ply >= len(positions) {
			continue
		}
		pos := positions[rec.Ply]
		if err := e.SetFEN(pos.String()); err != nil {
			return err
		}
		result, err := e.GoDepth(depth)
		if err != nil {
			return err
		}
		if len(result.Results) == 0 {
			continue
		}
		rec.Eval = evalFromResult(result.Results[0], pos.Turn())
	}
	return nil
}

// evalFromResult converts a side-to-move engine score into White's
// perspective.
func evalFromResult(res uci.ScoreResult, turn chess.Color) *EvalScore {
	sign := 1
	if turn == chess.Black {
		sign = -1
	}
	if res.Mate {
		mate := sign * res.Score
		return &EvalScore{Mate: &mate}
	}
	pawns := float64(sign*res.Score) / 100
	return &EvalScore{Pawns: &pawns}
}
