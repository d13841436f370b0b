package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadConfig reads the .env file from the given path into the process
// environment. A missing file is fine: production deployments configure
// everything through real environment variables.
func LoadConfig(path string) {
	envPath := filepath.Join(path, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logrus.Debugf("[CONFIG] No .env file loaded from %s: %v", envPath, err)
	}
}
