package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/MacGruber91/ML/dataset/sqldataset"
)

const samplesTableName = "samples"

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a limit for the
connections to open at a time (0 for no limit) and returns an
sqldataset.Adapter that reads the file's samples table, or an error if
the file fails to open as an SQLite3 database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(name string) (string, error) {
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`column name '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf("%q", name), nil
}

func (a *adapter) QuerySamples(ctx context.Context, columns []string) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), samplesTableName))
}

func (a *adapter) Close() error {
	return a.db.Close()
}
