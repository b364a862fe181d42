package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FOLLOWSCRAPER_"

// ApplyEnv overrides config values from the environment. A .env file in dir
// is read as a fallback for variables not set in the process environment.
func ApplyEnv(config *Config, dir string) error {
	dotenv := map[string]string{}
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		dotenv = values
	}

	overrides := map[string]*string{
		"LOG_LEVEL":        &config.Log.Level,
		"LOG_FILE":         &config.Log.File,
		"LOG_STDOUT":       &config.Log.Stdout,
		"CONSUMER_KEY":     &config.Twitter.ConsumerKey,
		"CONSUMER_SEC_KEY": &config.Twitter.ConsumerSecret,
		"ACCESS_TOKEN":     &config.Twitter.AccessToken,
		"ACCESS_SEC_TOKEN": &config.Twitter.AccessSecret,
		"BEARER_TOKEN":     &config.Twitter.BearerToken,
		"ID":               &config.Twitter.ID,
	}

	for key, dst := range overrides {
		*dst = getString(dotenv, EnvPrefix+key, *dst)
	}
	return nil
}

// getString returns the process value of key, then the .env value, then fallback.
func getString(dotenv map[string]string, key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	if val, exists := dotenv[key]; exists {
		return val
	}
	return fallback
}
