package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
)

var (
	enginePath  = flag.String("engine", "", "path to a UCI engine used to fill missing evaluations")
	engineDepth = flag.Int("depth", 10, "engine search depth")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <game.pgn>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	pgnFunc, err := chess.PGN(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	game := chess.NewGame(pgnFunc)

	report, err := fragility.AnalyzeGame(game)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *enginePath != "" {
		e, err := fragility.SetupEngine(*enginePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer e.Close()
		if err := fragility.AnnotateReport(report, game, e, *engineDepth); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	printTable(report)
}

func printTable(report *fragility.GameReport) {
	cumulativeEval := 0.0

	fmt.Println("Ply | Move    | Fragility | Eval  | TopAttackedPiece     | CumulativeEval")
	fmt.Println("--------------------------------------------------------------------------")
	for _, rec := range report.Records {
		evalDisplay := "-"
		if rec.Eval != nil {
			evalDisplay = rec.Eval.Score()
			if rec.Eval.Pawns != nil {
				cumulativeEval += *rec.Eval.Pawns
			}
		}

		topDisplay := "-"
		if rec.TopPiece != nil {
			topDisplay = rec.TopPiece.Label()
		}

		fmt.Printf("%3d | %-8s | %9.3f | %-5s | %-20s | %+.2f\n",
			rec.Ply/2, rec.MoveUCI, rec.Fragility, evalDisplay, topDisplay, cumulativeEval)
	}
}
