// Package store persists analysis runs and their reports in sqlite for the
// API surface. CLI runs do not touch it.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-log-analyzer/internal/model"
)

var db *sql.DB

// InitDB opens (or creates) the sqlite database and its tables.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		request TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	reportTable := `
	CREATE TABLE IF NOT EXISTS reports (
		run_id TEXT PRIMARY KEY,
		report TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, errorTable, reportTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a new analysis run in the pending state.
func SaveRun(runID string, req model.AnalysisRequest) error {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, request, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, reqJSON, model.RunPending, now, now)
	return err
}

// UpdateRunStatus moves a run through pending → running → completed/failed.
func UpdateRunStatus(runID, status string) error {
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), runID)
	return err
}

// SaveRunError records an error for a run.
func SaveRunError(runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), time.Now().UTC())
	return err
}

// GetRunErrors returns the recorded error messages for a run.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, map[string]interface{}{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return out, rows.Err()
}

// ListRuns returns all runs with basic info, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches the full request and status for one run.
func GetRun(runID string) (map[string]interface{}, error) {
	var reqJSON, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT request, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&reqJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var req model.AnalysisRequest
	if err := json.Unmarshal([]byte(reqJSON), &req); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"request":   req,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// SaveReport stores the serialized report for a completed run.
func SaveReport(runID string, reportJSON []byte) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO reports (run_id, report, created_at) VALUES (?, ?, ?)`,
		runID, string(reportJSON), time.Now().UTC())
	return err
}

// GetReport returns the stored report for a run, decoded into a generic map.
func GetReport(runID string) (map[string]interface{}, error) {
	var reportJSON string
	if err := db.QueryRow(`SELECT report FROM reports WHERE run_id = ?`, runID).Scan(&reportJSON); err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(reportJSON), &out); err != nil {
		return nil, err
	}
	return out, nil
}
