package dao

import (
	"context"
	"time"

	"github.com/rschererstm/fragility-chess/internal/db"
	"github.com/rschererstm/fragility-chess/pkg/fragility"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository interface {
	InsertReport(report fragility.GameReport) error

	InsertAllReports(reports []fragility.GameReport) error

	GetLastPlayerReport(username string) (fragility.GameReport, error)

	GetReportsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fragility.GameReport, error)
}

type reportRepository struct {
	dbClient *db.ReportDbClient
}

func NewReportRepository(dbClient *db.ReportDbClient) ReportRepository {
	return &reportRepository{dbClient}
}

func (r *reportRepository) InsertReport(report fragility.GameReport) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	_, err := r.dbClient.ReportCollection.InsertOne(ctx, report)
	return err
}

func (r *reportRepository) InsertAllReports(reports []fragility.GameReport) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(reports))
	for _, report := range reports {
		docs = append(docs, report)
	}
	_, err := r.dbClient.ReportCollection.InsertMany(ctx, docs)
	return err
}

func (r *reportRepository) GetLastPlayerReport(username string) (fragility.GameReport, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	opts := options.FindOne()
	opts.SetSort(bson.D{{Key: "date", Value: -1}})

	filter := bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "white", Value: username}},
			bson.D{{Key: "black", Value: username}},
		}},
	}
	cur := r.dbClient.ReportCollection.FindOne(ctx, filter, opts)
	var report fragility.GameReport
	if err := cur.Decode(&report); err != nil {
		return fragility.GameReport{}, err
	}
	return report, nil
}

func (r *reportRepository) GetReportsBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]fragility.GameReport, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	filter := bson.D{
		{
			Key: "date", Value: bson.D{
				{Key: "$gte", Value: startTime},
				{Key: "$lte", Value: endTime},
			},
		},
	}

	cur, err := r.dbClient.ReportCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var reports []fragility.GameReport
	if err = cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
