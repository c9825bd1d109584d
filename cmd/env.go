package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables that seed flag defaults. A .env file in the working
// directory is loaded first; real environment variables win over it.
const (
	envLogLevel = "CROSSING_LOG_LEVEL"
	envScenario = "CROSSING_SCENARIO"
)

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
