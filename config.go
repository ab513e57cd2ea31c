package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Root       string
	Python     string
	Module     string
	Record     bool
	LocalDb    string
	TursoOrg   string
	TursoName  string
	TursoToken string
}

func LoadConfig() Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			Logger.Warnf("failed to load .env file: %v", err)
		}
	}
	return Config{
		Root:       StringEnv("SPEC_BENCH_ROOT", ""),
		Python:     StringEnv("SPEC_BENCH_PYTHON", "python3"),
		Module:     StringEnv("SPEC_BENCH_MODULE", "evaluation.speed"),
		Record:     BoolEnv("SPEC_BENCH_RECORD", true),
		LocalDb:    StringEnv("SPEC_BENCH_DB", "speed-bench.db"),
		TursoOrg:   StringEnv("TURSO_ORG_NAME", ""),
		TursoName:  StringEnv("TURSO_DB_NAME", ""),
		TursoToken: StringEnv("TURSO_AUTH_TOKEN", ""),
	}
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func BoolEnv(key string, def bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
