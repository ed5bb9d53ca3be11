package scraper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/notnil/chess"
	"github.com/rschererstm/fragility-chess/internal/config"
	"github.com/rschererstm/fragility-chess/internal/dao"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LiveLichessScraper follows the lichess TV feed and scores every broadcast
// position, storing one fragility report per featured game.
type LiveLichessScraper struct {
	reportRepo  dao.ReportRepository
	curAnalyzer *LiveGameAnalyzer
	feedURL     string
	logger      *zap.SugaredLogger
}

func NewLiveLichessScraper(repository dao.ReportRepository, configuration config.ScraperConfiguration, logger *zap.SugaredLogger) *LiveLichessScraper {
	return &LiveLichessScraper{
		reportRepo:  repository,
		curAnalyzer: nil,
		feedURL:     configuration.Lichess.FeedURL,
		logger:      logger,
	}
}

func (l *LiveLichessScraper) Main() error {
	resp, err := http.Get(l.feedURL)
	if err != nil {
		l.logger.Errorw("feed request failed", "error", err)
		return err
	}
	defer resp.Body.Close()
	d := json.NewDecoder(resp.Body)

	for {
		var cur LiveMessage
		if !d.More() {
			return l.Main()
		}
		err := d.Decode(&cur)
		if err != nil {
			l.logger.Errorw("feed decode failed", "error", err)
			return err
		}
		switch cur.Action {
		case "featured":
			var gameStart GameStart
			err = json.Unmarshal(cur.Data, &gameStart)
			if err != nil {
				l.logger.Errorw("unmarshal failed", "error", err)
				return err
			}
			var whiteInd int
			if gameStart.Players[0].Color == "white" {
				whiteInd = 0
			} else {
				whiteInd = 1
			}
			blackInd := 1 - whiteInd
			if l.curAnalyzer != nil {
				close(l.curAnalyzer.TurnChan)
			}
			l.logger.Infow("new featured game",
				"white", gameStart.Players[whiteInd].User.Name,
				"black", gameStart.Players[blackInd].User.Name,
				"fen", gameStart.Fen,
			)
			report := fragility.GameReport{
				White: gameStart.Players[whiteInd].User.Name,
				Black: gameStart.Players[blackInd].User.Name,
				Date:  primitive.NewDateTimeFromTime(time.Now()),
			}
			l.curAnalyzer = l.NewLiveGameAnalyzer(report)
			l.curAnalyzer.StartAnalyze()

		case "fen":
			if l.curAnalyzer == nil {
				continue
			}
			var gameTurn GameTurn
			err = json.Unmarshal(cur.Data, &gameTurn)
			if err != nil {
				l.logger.Errorw("unmarshal failed", "error", err)
				return err
			}
			// Feed FENs omit castling and en-passant fields.
			gameTurn.Fen += " - - 0 1"

			fenFunc, err := chess.FEN(gameTurn.Fen)
			if err != nil {
				l.logger.Errorw("bad fen from feed", "fen", gameTurn.Fen, "error", err)
				return err
			}
			game := chess.NewGame(fenFunc)

			l.curAnalyzer.TurnChan <- liveTurn{
				pos:     game.Position(),
				moveUCI: gameTurn.TurnUciNotation,
			}
		default:
			return fmt.Errorf("unknown action type from lichess: %s", cur.Action)
		}
	}
}

func (l *LiveLichessScraper) NewLiveGameAnalyzer(report fragility.GameReport) *LiveGameAnalyzer {
	return &LiveGameAnalyzer{
		report:     report,
		reportRepo: l.reportRepo,
		logger:     l.logger,
		// euristic size of chan (we assume we don't receive 100 moves while scoring 1)
		TurnChan: make(chan liveTurn, 100),
	}
}

type liveTurn struct {
	pos     *chess.Position
	moveUCI string
}

type LiveGameAnalyzer struct {
	report     fragility.GameReport
	reportRepo dao.ReportRepository
	logger     *zap.SugaredLogger
	TurnChan   chan liveTurn
}

func (l *LiveGameAnalyzer) StartAnalyze() {
	go l.Analyze()
}

// Analyze scores positions as they arrive and flushes the accumulated report
// when the feed moves on to the next game. Ply counting starts at the first
// broadcast position of the game.
func (l *LiveGameAnalyzer) Analyze() {
	for turn := range l.TurnChan {
		score, top := fragility.ScorePosition(turn.pos)
		label := turn.moveUCI
		if label == "" {
			label = fragility.StartPosLabel
		}
		rec := fragility.Record{
			Ply:       len(l.report.Records),
			MoveUCI:   label,
			Fragility: score,
			TopPiece:  top,
		}
		l.report.Records = append(l.report.Records, rec)

		fields := []interface{}{"ply", rec.Ply, "move", rec.MoveUCI, "fragility", rec.Fragility}
		if top != nil {
			fields = append(fields, "top", top.Label())
		}
		l.logger.Infow("scored position", fields...)
	}
	if len(l.report.Records) == 0 {
		return
	}
	if err := l.reportRepo.InsertReport(l.report); err != nil {
		l.logger.Errorw("saving live report failed", "error", err)
	}
}
