package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rschererstm/fragility-chess/internal/config"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubReportRepo struct {
	inserted []fragility.GameReport
}

func (s *stubReportRepo) InsertReport(report fragility.GameReport) error {
	s.inserted = append(s.inserted, report)
	return nil
}

func (s *stubReportRepo) InsertAllReports(reports []fragility.GameReport) error {
	s.inserted = append(s.inserted, reports...)
	return nil
}

func (s *stubReportRepo) GetLastPlayerReport(username string) (fragility.GameReport, error) {
	return fragility.GameReport{}, nil
}

func (s *stubReportRepo) GetReportsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fragility.GameReport, error) {
	return nil, nil
}

func newTestScraper(repo *stubReportRepo, url string) *LichessGameScraper {
	factory := NewLichessGameScraperFactory(&config.Configuration{}, repo, zap.NewNop().Sugar())
	s := factory.CreateLichessScraper("someone", 5)
	s.baseURL = url
	return &s
}

func TestFactoryCarriesEngineConfig(t *testing.T) {
	cfg := &config.Configuration{}
	cfg.Stockfish.Path = "/usr/bin/stockfish"
	cfg.Stockfish.Args = []string{"-threads", "2"}

	factory := NewLichessGameScraperFactory(cfg, &stubReportRepo{}, zap.NewNop().Sugar())
	s := factory.CreateLichessScraper("someone", 5)

	if s.stockfishPath != cfg.Stockfish.Path {
		t.Fatalf("scraper stockfish path expected %q but got %q", cfg.Stockfish.Path, s.stockfishPath)
	}
	if len(s.stockfishArgs) != 2 {
		t.Fatalf("scraper stockfish args expected 2 values but got %d", len(s.stockfishArgs))
	}
}

func TestScrapStoresReports(t *testing.T) {
	pgn := `[White "w"]
[Black "b"]

1. e4 e5 *
`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pgn)
	}))
	defer srv.Close()

	repo := &stubReportRepo{}
	s := newTestScraper(repo, srv.URL)
	s.Scrap()

	if err := s.Error(); err != nil {
		t.Fatal(err)
	}
	if !s.Done() {
		t.Fatalf("scraper expected done after Scrap")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 stored report but got %d", len(repo.inserted))
	}
	if got := len(repo.inserted[0].Records); got != 3 {
		t.Fatalf("expected 3 records (ply 0..2) but got %d", got)
	}
}

func TestScrapRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	repo := &stubReportRepo{}
	s := newTestScraper(repo, srv.URL)
	s.Scrap()

	err := s.Error()
	if err == nil {
		t.Fatalf("expected an error for a 429 response")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("error expected to carry the http status, got %q", err.Error())
	}
	if !s.Done() {
		t.Fatalf("scraper expected done after a failed fetch")
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("no reports must be stored from an error body, got %d", len(repo.inserted))
	}
}
