package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverFile     = "file"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type JWTConfig struct {
	JWTSecret string
}

type SMTPConfig struct {
	Sender   string
	Password string
	Host     string
	Port     int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	Environment      string
	ServicePort      string
	MetricsPort      string
	StorageDriver    string
	FileStorePath    string
	PostgreSQLConfig PostgreSQLConfig
	KafkaConfig      KafkaConfig
	JWTConfig        JWTConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment:   os.Getenv("ENVIRONMENT"),
		ServicePort:   os.Getenv("SERVICE_PORT"),
		MetricsPort:   os.Getenv("METRICS_PORT"),
		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		FileStorePath: os.Getenv("FILE_STORE_PATH"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		JWTConfig: JWTConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		SMTPConfig: SMTPConfig{
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Host:     os.Getenv("SMTP_HOST"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.StorageDriver == "" {
		conf.StorageDriver = StorageDriverPostgres
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}
