package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anjiri1684/college_erp/database"
)

// Dump order follows foreign key dependencies so a restore replays cleanly.
var backupTables = []string{
	"departments",
	"subjects",
	"students",
	"staff_members",
	"timetable_slots",
	"fees",
	"fee_transactions",
	"attendances",
	"exams",
	"marks",
	"leave_requests",
	"events",
	"audit_logs",
}

// WriteSQLDump streams a plain-SQL snapshot of every application table as
// INSERT statements.
func WriteSQLDump(w io.Writer) error {
	fmt.Fprintf(w, "-- College ERP backup generated at %s\n", time.Now().Format("2006-01-02 15:04:05"))

	for _, table := range backupTables {
		if err := dumpTable(w, table); err != nil {
			return fmt.Errorf("dump %s: %w", table, err)
		}
	}
	return nil
}

func dumpTable(w io.Writer, table string) error {
	rows, err := database.DB.Raw("SELECT * FROM " + table).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n-- Table: %s\n", table)

	values := make([]interface{}, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return err
		}

		literals := make([]string, len(values))
		for i, v := range values {
			literals[i] = sqlLiteral(v)
		}

		fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n",
			table, strings.Join(columns, ", "), strings.Join(literals, ", "))
	}
	return rows.Err()
}

// sqlLiteral renders a scanned value as a SQL literal, doubling single
// quotes inside strings.
func sqlLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	case time.Time:
		return "'" + val.Format("2006-01-02 15:04:05.999999-07") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(val), "'", "''") + "'"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", val), "'", "''") + "'"
	}
}

// DumpToFile writes a timestamped dump under dir and returns its path. The
// nightly backup job calls this.
func DumpToFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("backup_%s.sql", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteSQLDump(f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
