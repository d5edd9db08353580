package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	SnapshotDSN string
	LogFile     string
}

func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("SNAPSHOT_DSN")
	if dsn == "" {
		dsn = "shophood.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shophood.log"
	}

	cfg := Config{Port: port, SnapshotDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s SNAPSHOT_DSN=%s LOG_FILE=%s", cfg.Port, cfg.SnapshotDSN, cfg.LogFile)
	return cfg
}
