package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"legislators_dashboard/logger"
)

// LoadEnv loads variables from the first .env file found. Variables already
// present in the environment win. A missing file is not an error.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("DASHBOARD_ENV"),
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			break
		}
	}
	if loadedFile == "" {
		return nil
	}
	return loadEnvFile(loadedFile)
}

func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	logger.Logger.Infof("Loading environment variables from %s", path)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
		if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "url") {
			logger.Logger.Debugf("Set environment variable: %s", key)
		}
	}
	return scanner.Err()
}
