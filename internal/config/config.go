// Package config reads the kiosk settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting of the kiosk binary.
type Config struct {
	// DBPath is the query log database. Empty disables the query log.
	DBPath string
	// PlantsCSV is the plant catalog export. Empty starts with no plants.
	PlantsCSV string
	// KnowledgeFile and DocumentFile override the embedded knowledge
	// definition and workshop document.
	KnowledgeFile string
	DocumentFile  string
	QueryLog      bool
	MatchSynonyms bool
	LogLevel      string
	LogFormat     string
	HTTPAddr      string
}

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DBPath:    defaultDBPath(),
		PlantsCSV: "plantas_aucca.csv",
		QueryLog:  true,
		LogLevel:  "warn",
		LogFormat: LogFormatConsole,
		HTTPAddr:  ":8080",
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aucca", "aucca.db")
	}
	return filepath.Join(home, ".aucca", "aucca.db")
}

// Load reads envFile (when it exists) into the process environment without
// overriding variables already set, then applies the AUCCA_* variables.
func Load(envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	return FromEnv()
}

// FromEnv applies the AUCCA_* variables over Default. Invalid values are
// ignored.
func FromEnv() Config {
	cfg := Default()

	if v, ok := os.LookupEnv("AUCCA_DB"); ok {
		cfg.DBPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("AUCCA_PLANTS_CSV"); ok {
		cfg.PlantsCSV = strings.TrimSpace(v)
	}
	if v := os.Getenv("AUCCA_KNOWLEDGE_FILE"); v != "" {
		cfg.KnowledgeFile = v
	}
	if v := os.Getenv("AUCCA_DOCUMENT_FILE"); v != "" {
		cfg.DocumentFile = v
	}
	if v := os.Getenv("AUCCA_QUERY_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.QueryLog = b
		}
	}
	if v := os.Getenv("AUCCA_MATCH_SYNONYMS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MatchSynonyms = b
		}
	}
	if v := strings.ToLower(os.Getenv("AUCCA_LOG_LEVEL")); logLevels[v] {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(os.Getenv("AUCCA_LOG_FORMAT")); v == LogFormatConsole || v == LogFormatJSON {
		cfg.LogFormat = v
	}
	if v := os.Getenv("AUCCA_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	return cfg
}

// QueryLogEnabled reports whether questions should be recorded.
func (c Config) QueryLogEnabled() bool {
	return c.QueryLog && c.DBPath != ""
}
