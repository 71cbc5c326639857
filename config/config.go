package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// StoreBackend selects the blob store backend: file (default), redis,
// postgres or memory.
func StoreBackend() string {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		return "file"
	}
	return backend
}

// StoreFilePath is where the file backend keeps the snapshot.
func StoreFilePath() string {
	path := os.Getenv("STORE_FILE")
	if path == "" {
		return "kfc-app-data.json"
	}
	return path
}

func ListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		return ":8080"
	}
	return addr
}

func BaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		return "http://localhost:8080"
	}
	return base
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// KafkaBroker returns the broker address, or "" when event publishing is
// disabled.
func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(KafkaBroker()),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
