package api

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"
	"github.com/rschererstm/fragility-chess/internal/dao"
	"github.com/rschererstm/fragility-chess/internal/scraper"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportApi struct {
	ReportRepository dao.ReportRepository
	ScraperFactory   *scraper.LichessGameScraperFactory
	activeJobs       map[string]scraper.Worker
	totalJobs        int
	mu               sync.RWMutex
}

func NewReportApi(reportRepo dao.ReportRepository, scraperFactory *scraper.LichessGameScraperFactory) *ReportApi {
	return &ReportApi{
		reportRepo,
		scraperFactory,
		make(map[string]scraper.Worker, 0),
		0,
		sync.RWMutex{},
	}
}

// Analyze scores a single game posted as PGN in the request body and returns
// the per-ply fragility report without storing it.
func (r *ReportApi) Analyze(ctx *gin.Context) {
	pgnFunc, err := chess.PGN(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	game := chess.NewGame(pgnFunc)

	report, err := fragility.AnalyzeGame(game)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// Report returns the most recent stored report for a player.
func (r *ReportApi) Report(ctx *gin.Context) {
	name := ctx.Param("username")

	report, err := r.ReportRepository.GetLastPlayerReport(name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ReportsBetween returns the stored reports of games played inside a date
// range; bounds use the PGN date format (2006.01.02).
func (r *ReportApi) ReportsBetween(ctx *gin.Context) {
	from, errFrom := time.Parse(fragility.Layout, ctx.Query("from"))
	to, errTo := time.Parse(fragility.Layout, ctx.Query("to"))
	if errFrom != nil || errTo != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to should be dates formatted as 2006.01.02",
		})
		return
	}

	reports, err := r.ReportRepository.GetReportsBetweenDates(
		primitive.NewDateTimeFromTime(from),
		primitive.NewDateTimeFromTime(to),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, reports)
}

// StartScrape launches a background job that fetches a user's recent lichess
// games, scores them and stores the reports.
func (r *ReportApi) StartScrape(ctx *gin.Context) {
	name := ctx.Param("username")
	lastStr := ctx.DefaultQuery("last", "20")
	last, err := strconv.Atoi(lastStr)
	if err != nil || last <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "last should be positive integer",
		})
		return
	}

	worker := r.ScraperFactory.CreateLichessScraper(name, last)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalJobs++
	byteValue := []byte(strconv.Itoa(r.totalJobs))
	id := fmt.Sprintf("%x", md5.Sum(byteValue))

	r.activeJobs[id] = &worker
	worker.StartWork()
	ctx.JSON(http.StatusOK, gin.H{
		"job_id": id,
	})
}

func (r *ReportApi) GetJobStatus(ctx *gin.Context) {
	id := ctx.Param("job_id")
	r.mu.Lock()
	defer r.mu.Unlock()
	worker, ok := r.activeJobs[id]
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	done := worker.Done()
	if done {
		delete(r.activeJobs, id)
		if worker.Error() != nil {
			ctx.JSON(http.StatusOK, gin.H{
				"done":  done,
				"error": worker.Error().Error(),
			})
		} else {
			ctx.JSON(http.StatusOK, gin.H{
				"done":   done,
				"result": worker.Result(),
			})
		}
	} else {
		ctx.JSON(http.StatusOK, gin.H{
			"done": done,
		})
	}
}
