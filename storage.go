package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage persists launch records. It writes to a Turso database when the
// TURSO_* settings are present and to a local SQLite file otherwise. Every
// operation here is best effort observability: callers log failures and move
// on, the launcher exit code is decided by the evaluation process alone.
type Storage struct {
	LocalPath  string
	TursoOrg   string
	TursoName  string
	TursoToken string
}

func (s *Storage) Connect() (*sql.DB, error) {
	if s.TursoName != "" {
		url := fmt.Sprintf("libsql://%v-%v.turso.io?authToken=%v", s.TursoName, s.TursoOrg, s.TursoToken)
		return sql.Open("libsql", url)
	}
	return sql.Open("sqlite", s.LocalPath)
}

func (s *Storage) InitDb(db *sql.DB, info SysInfo) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	parameters := make([]any, 0)
	parameters = append(parameters, "time", time.Now().Format("2006-01-02 15:04:05"))
	for key, value := range info.Parameters() {
		parameters = append(parameters, key, fmt.Sprintf("%v", value))
	}
	placeholders := strings.Join(slices.Repeat([]string{"(?, ?)"}, len(parameters)/2), ", ")
	_, err = db.Exec(
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		variant TEXT,
		dataset TEXT,
		model TEXT,
		method TEXT,
		version TEXT,
		exit_code INTEGER,
		seconds REAL,
		started TEXT
	)`)
	if err != nil {
		return err
	}
	Logger.Infof("initialized launch database")
	return nil
}

func (s *Storage) RecordRuns(db *sql.DB, results []RunResult) error {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	for _, result := range results {
		answer := ParseAnswerFile(result.Variant.FilePath)
		_, err = tx.Exec(
			"INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			result.Variant.Name,
			result.Variant.FilePath,
			answer.Model,
			answer.Method,
			answer.Version,
			result.ExitCode,
			result.Seconds,
			result.Started.Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
