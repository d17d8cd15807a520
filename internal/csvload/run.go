package csvload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/civiclab/county-health-api/internal/db"
	"gorm.io/gorm"
)

type Config struct {
	// DBPath is the sqlite file to load into; created if absent.
	DBPath string
	// CSVPath is the input file. Its stem becomes the table name.
	CSVPath string
}

// Run loads cfg.CSVPath into a table of all-TEXT columns in cfg.DBPath,
// replacing any existing table of the same name. The whole load runs in
// one transaction, so a failed import leaves no partial table behind.
func Run(cfg Config) error {
	stem := strings.TrimSuffix(filepath.Base(cfg.CSVPath), filepath.Ext(cfg.CSVPath))
	table, err := ValidateIdentifier(stem, "Table name")
	if err != nil {
		return err
	}

	columns, rows, err := ParseCSV(cfg.CSVPath)
	if err != nil {
		return err
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := createTable(tx, table, columns); err != nil {
			return err
		}
		return insertRows(tx, table, columns, rows)
	})
}

func createTable(tx *gorm.DB, table string, columns []string) error {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col + " TEXT"
	}

	if err := tx.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
		return fmt.Errorf("drop table %s: %w", table, err)
	}
	if err := tx.Exec("CREATE TABLE " + table + " (" + strings.Join(defs, ", ") + ")").Error; err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

func insertRows(tx *gorm.DB, table string, columns []string, rows [][]string) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insert := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"

	for rowIdx, row := range rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if err := tx.Exec(insert, args...).Error; err != nil {
			return fmt.Errorf("row %d: insert: %w", rowIdx+2, err)
		}
	}
	return nil
}
