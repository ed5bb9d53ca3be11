package scraper

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/freeeve/uci"
	"github.com/notnil/chess"
	"github.com/rschererstm/fragility-chess/internal/config"
	"github.com/rschererstm/fragility-chess/internal/dao"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
	"go.uber.org/zap"
)

const annotateDepth = 10

type LichessGameScraperFactory struct {
	StockfishPath string
	StockfishArgs []string
	ReportRepo    dao.ReportRepository
	Logger        *zap.SugaredLogger
}

func NewLichessGameScraperFactory(cfg *config.Configuration, reportRepo dao.ReportRepository, logger *zap.SugaredLogger) *LichessGameScraperFactory {
	return &LichessGameScraperFactory{
		StockfishPath: cfg.Stockfish.Path,
		StockfishArgs: cfg.Stockfish.Args,
		ReportRepo:    reportRepo,
		Logger:        logger,
	}
}

func (f LichessGameScraperFactory) CreateLichessScraper(nickname string, last int) LichessGameScraper {
	return LichessGameScraper{
		nickname:      nickname,
		last:          last,
		stockfishPath: f.StockfishPath,
		stockfishArgs: f.StockfishArgs,
		reportRepo:    f.ReportRepo,
		logger:        f.Logger,
		baseURL:       "https://lichess.org",
		done:          false,
	}
}

// LichessGameScraper fetches a user's recent lichess games, scores every ply
// of every game and stores the resulting fragility reports. Games exported
// without [%eval] annotations get their evaluations filled by the configured
// engine, when there is one.
type LichessGameScraper struct {
	mu      sync.Mutex
	reports []fragility.GameReport
	err     error
	done    bool

	reportRepo    dao.ReportRepository
	logger        *zap.SugaredLogger
	nickname      string
	last          int
	stockfishPath string
	stockfishArgs []string
	baseURL       string
}

func (l *LichessGameScraper) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *LichessGameScraper) StartWork() {
	go l.Scrap()
}

func (l *LichessGameScraper) Result() interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports
}

func (l *LichessGameScraper) Error() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *LichessGameScraper) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
	l.done = true
}

func (l *LichessGameScraper) Scrap() {
	url := fmt.Sprintf("%s/api/games/user/%s?max=%d&evals=true", l.baseURL, l.nickname, l.last)
	resp, err := http.Get(url)
	if err != nil {
		l.fail(fmt.Errorf("error fetching %s games", l.nickname))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		l.fail(fmt.Errorf("user %s doesn't exist on lichess", l.nickname))
		return
	}
	if resp.StatusCode != http.StatusOK {
		l.fail(fmt.Errorf("lichess returned status %d fetching %s games", resp.StatusCode, l.nickname))
		return
	}

	scanner := chess.NewScanner(resp.Body)
	games := make([]*chess.Game, 0)
	for scanner.Scan() {
		games = append(games, scanner.Next())
	}
	l.logger.Infof("fetched %d games for %s", len(games), l.nickname)

	var engine *uci.Engine
	if l.stockfishPath != "" {
		engine, err = fragility.SetupEngine(l.stockfishPath, l.stockfishArgs...)
		if err != nil {
			l.logger.Errorw("engine startup failed", "path", l.stockfishPath, "error", err)
			l.fail(fmt.Errorf("error starting engine"))
			return
		}
		defer engine.Close()
	}

	reports := make([]fragility.GameReport, 0, len(games))
	for _, game := range games {
		report, err := fragility.AnalyzeGame(game)
		if err != nil {
			l.logger.Errorw("analysis failed", "user", l.nickname, "error", err)
			l.fail(fmt.Errorf("error computing fragility reports"))
			return
		}
		if engine != nil && !report.HasEvals() {
			if err := fragility.AnnotateReport(report, game, engine, annotateDepth); err != nil {
				l.logger.Errorw("engine annotation failed", "user", l.nickname, "error", err)
				l.fail(fmt.Errorf("error annotating reports"))
				return
			}
		}
		reports = append(reports, *report)
	}

	if len(reports) > 0 {
		if err = l.reportRepo.InsertAllReports(reports); err != nil {
			l.fail(fmt.Errorf("error saving reports to db"))
			return
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reports = reports
	l.done = true
}
