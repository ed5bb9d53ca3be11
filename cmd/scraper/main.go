package main

import (
	"github.com/rschererstm/fragility-chess/internal/config"
	"github.com/rschererstm/fragility-chess/internal/dao"
	"github.com/rschererstm/fragility-chess/internal/db"
	"github.com/rschererstm/fragility-chess/internal/scraper"
	"go.uber.org/zap"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.InitScraperConfig()
	if err != nil {
		logger.Fatalw("failed to read configuration", "error", err)
	}

	dbClient, err := db.NewDbClientScraper(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to db", "error", err)
	}
	defer dbClient.Close()

	reportRepo := dao.NewReportRepository(dbClient)
	watcher := scraper.NewLiveLichessScraper(reportRepo, *cfg, logger)

	if err := watcher.Main(); err != nil {
		logger.Fatalw("live scraper stopped", "error", err)
	}
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
