package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE"`
		Collection   string `envconfig:"MONGO_COLLECTION"`
	}
	Stockfish struct {
		Path string   `envconfig:"STOCKFISH_PATH"`
		Args []string `envconfig:"STOCKFISH_ARGS"`
	}
}

type ScraperConfiguration struct {
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE"`
		Collection   string `envconfig:"MONGO_COLLECTION"`
	}
	Lichess struct {
		FeedURL string `envconfig:"LICHESS_FEED_URL" default:"https://lichess.org/api/tv/feed"`
	}
}

func InitConfig() (*Configuration, error) {
	var cfg Configuration
	err := envconfig.Process("", &cfg)
	return &cfg, err
}

func InitScraperConfig() (*ScraperConfiguration, error) {
	var cfg ScraperConfiguration
	err := envconfig.Process("", &cfg)
	return &cfg, err
}
