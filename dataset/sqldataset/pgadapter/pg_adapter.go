package pgadapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/MacGruber91/ML/dataset/sqldataset"
)

const samplesTableName = "samples"

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns an
sqldataset.Adapter that reads the database's samples table, or an
error if the connection cannot be set up.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
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
