package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/andikahilmy/marketplace-service/config"
	"github.com/andikahilmy/marketplace-service/internal/app"
	fileStore "github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	postgresDriver "github.com/andikahilmy/marketplace-service/internal/infrastructure/database/postgres"
	kafkaDriver "github.com/andikahilmy/marketplace-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	conf := config.CreateNewConfig()

	server := app.App{
		Config: conf,
	}

	switch conf.StorageDriver {
	case config.StorageDriverFile:
		store, err := fileStore.Open(conf.FileStorePath)
		if err != nil {
			log.Fatalf("Failed to open the file store: %v", err)
		}
		server.FileStore = store
	default:
		db, err := postgresDriver.GetDBInstance(conf.PostgreSQLConfig.DBUsername, conf.PostgreSQLConfig.DBPassword, conf.PostgreSQLConfig.DBHost, conf.PostgreSQLConfig.DBPort, conf.PostgreSQLConfig.DBName)
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}
		server.DB = db
	}

	if conf.KafkaConfig.BrokerAddress != "" {
		producer, err := kafkaDriver.CreateKafkaProducer(conf)
		if err != nil {
			log.Fatalf("Failed to connect to the broker: %v", err)
		}
		server.KafkaProducer = producer
	}

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server stopped: %v", err)
	}
}
