package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rschererstm/fragility-chess/internal/api"
	"github.com/rschererstm/fragility-chess/internal/config"
	"github.com/rschererstm/fragility-chess/internal/dao"
	"github.com/rschererstm/fragility-chess/internal/db"
	"github.com/rschererstm/fragility-chess/internal/scraper"
	"go.uber.org/zap"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatalw("failed to read configuration", "error", err)
	}

	dbClient, err := db.NewDbClient(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to db", "error", err)
	}
	defer dbClient.Close()

	reportRepo := dao.NewReportRepository(dbClient)
	scraperFactory := scraper.NewLichessGameScraperFactory(cfg, reportRepo, logger)
	reportApi := api.NewReportApi(reportRepo, scraperFactory)

	r := gin.Default()
	r.POST("/api/analyze", reportApi.Analyze)
	r.GET("/api/report/:username", reportApi.Report)
	r.GET("/api/reports", reportApi.ReportsBetween)
	r.POST("/api/scrape/:username", reportApi.StartScrape)
	r.GET("/api/job/:job_id", reportApi.GetJobStatus)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
