package db

import (
	"context"
	"fmt"

	"github.com/rschererstm/fragility-chess/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportDbClient struct {
	client           *mongo.Client
	ReportCollection *mongo.Collection
}

func (r *ReportDbClient) Close() error {
	return r.client.Disconnect(context.TODO())
}

func connect(address, database, collection string) (*ReportDbClient, error) {
	clientOpts := options.Client().ApplyURI(address)

	dbClient := &ReportDbClient{}

	client, err := mongo.Connect(context.TODO(), clientOpts)
	if err != nil {
		return nil, err
	}
	dbClient.client = client

	err = client.Ping(context.TODO(), nil)
	if err != nil {
		return nil, err
	}

	dbClient.ReportCollection = client.Database(database).Collection(collection)
	if dbClient.ReportCollection == nil {
		return nil, fmt.Errorf("can't resolve collection %s", database+"."+collection)
	}
	return dbClient, nil
}

func NewDbClient(cfg *config.Configuration) (*ReportDbClient, error) {
	return connect(cfg.Database.Address, cfg.Database.DatabaseName, cfg.Database.Collection)
}

func NewDbClientScraper(cfg *config.ScraperConfiguration) (*ReportDbClient, error) {
	return connect(cfg.Database.Address, cfg.Database.DatabaseName, cfg.Database.Collection)
}
